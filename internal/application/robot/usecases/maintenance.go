package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/robot/dto"
	timelineuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/timeline/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/mapper"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/query"
)

type AddMaintenanceLogCommand struct {
	RobotID       uint
	TicketID      *uint
	ServiceType   string
	Description   string
	Technician    string
	PerformedAt   time.Time
	NextServiceAt *time.Time
	Principal     *authorization.Principal
}

type AddMaintenanceLogUseCase struct {
	robotRepo       robot.Repository
	maintenanceRepo robot.MaintenanceRepository
	recorder        EventRecorder
	authorizer      Authorizer
	txManager       db.Transactor
	logger          logger.Interface
}

func NewAddMaintenanceLogUseCase(
	robotRepo robot.Repository,
	maintenanceRepo robot.MaintenanceRepository,
	recorder EventRecorder,
	authorizer Authorizer,
	txManager db.Transactor,
	logger logger.Interface,
) *AddMaintenanceLogUseCase {
	return &AddMaintenanceLogUseCase{
		robotRepo:       robotRepo,
		maintenanceRepo: maintenanceRepo,
		recorder:        recorder,
		authorizer:      authorizer,
		txManager:       txManager,
		logger:          logger,
	}
}

func (uc *AddMaintenanceLogUseCase) Execute(ctx context.Context, cmd AddMaintenanceLogCommand) (*dto.MaintenanceLogDTO, error) {
	r, err := uc.robotRepo.GetByID(ctx, cmd.RobotID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorizer.AuthorizeRobot(ctx, cmd.Principal, r, permission.ResourceMaintenance, permission.ActionCreate); err != nil {
		return nil, err
	}

	log, err := robot.NewMaintenanceLog(r.ID(), cmd.TicketID, cmd.ServiceType, cmd.Description, cmd.Technician, cmd.PerformedAt, cmd.NextServiceAt, cmd.Principal.UserID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.maintenanceRepo.Create(txCtx, log); err != nil {
			return err
		}
		_, err := uc.recorder.Record(txCtx, timelineuc.RecordEventCommand{
			RobotID:     r.ID(),
			TicketID:    log.TicketID,
			EntityID:    &log.ID,
			Type:        timeline.EventMaintenance,
			Title:       fmt.Sprintf("Maintenance: %s", log.ServiceType),
			Description: log.Description,
			Metadata:    map[string]interface{}{"technician": log.Technician},
			ActorID:     cmd.Principal.UserID,
		})
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to add maintenance log", "robot_id", r.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("maintenance log added", "robot_id", r.ID(), "log_id", log.ID)

	result := dto.ToMaintenanceLogDTO(log)
	return &result, nil
}

type ListMaintenanceLogsQuery struct {
	RobotID   uint
	Page      int
	PageSize  int
	Principal *authorization.Principal
}

type ListMaintenanceLogsResult struct {
	Logs  []dto.MaintenanceLogDTO
	Total int64
}

type ListMaintenanceLogsUseCase struct {
	robotRepo       robot.Repository
	maintenanceRepo robot.MaintenanceRepository
	authorizer      Authorizer
	logger          logger.Interface
}

func NewListMaintenanceLogsUseCase(
	robotRepo robot.Repository,
	maintenanceRepo robot.MaintenanceRepository,
	authorizer Authorizer,
	logger logger.Interface,
) *ListMaintenanceLogsUseCase {
	return &ListMaintenanceLogsUseCase{
		robotRepo:       robotRepo,
		maintenanceRepo: maintenanceRepo,
		authorizer:      authorizer,
		logger:          logger,
	}
}

func (uc *ListMaintenanceLogsUseCase) Execute(ctx context.Context, q ListMaintenanceLogsQuery) (*ListMaintenanceLogsResult, error) {
	r, err := uc.robotRepo.GetByID(ctx, q.RobotID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorizer.AuthorizeRobot(ctx, q.Principal, r, permission.ResourceMaintenance, permission.ActionRead); err != nil {
		return nil, err
	}

	logs, total, err := uc.maintenanceRepo.ListByRobot(ctx, r.ID(), query.PageFilter{Page: q.Page, PageSize: q.PageSize})
	if err != nil {
		uc.logger.Errorw("failed to list maintenance logs", "robot_id", r.ID(), "error", err)
		return nil, fmt.Errorf("failed to list maintenance logs: %w", err)
	}

	return &ListMaintenanceLogsResult{
		Logs:  mapper.MapSlice(logs, dto.ToMaintenanceLogDTO),
		Total: total,
	}, nil
}
