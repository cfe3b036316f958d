package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/robot/dto"
	timelineuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/timeline/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type UpdateRobotCommand struct {
	RobotID   uint
	Name      *string
	Model     *string
	Location  *string
	Status    *string
	Principal *authorization.Principal
}

type UpdateRobotUseCase struct {
	robotRepo  robot.Repository
	recorder   EventRecorder
	authorizer Authorizer
	txManager  db.Transactor
	logger     logger.Interface
}

func NewUpdateRobotUseCase(
	robotRepo robot.Repository,
	recorder EventRecorder,
	authorizer Authorizer,
	txManager db.Transactor,
	logger logger.Interface,
) *UpdateRobotUseCase {
	return &UpdateRobotUseCase{
		robotRepo:  robotRepo,
		recorder:   recorder,
		authorizer: authorizer,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *UpdateRobotUseCase) Execute(ctx context.Context, cmd UpdateRobotCommand) (*dto.RobotDTO, error) {
	if cmd.Name == nil && cmd.Model == nil && cmd.Location == nil && cmd.Status == nil {
		return nil, errors.NewValidationError("no fields to update")
	}

	r, err := uc.robotRepo.GetByID(ctx, cmd.RobotID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorizer.AuthorizeRobot(ctx, cmd.Principal, r, permission.ResourceRobot, permission.ActionUpdate); err != nil {
		return nil, err
	}

	if err := r.UpdateDetails(cmd.Name, cmd.Model, cmd.Location); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	changes := map[string]interface{}{}
	if cmd.Name != nil {
		changes["name"] = r.Name()
	}
	if cmd.Model != nil {
		changes["model"] = r.Model()
	}
	if cmd.Location != nil {
		changes["location"] = r.Location()
	}
	if cmd.Status != nil {
		status, err := robot.NewStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := r.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		changes["status"] = status.String()
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.robotRepo.Update(txCtx, r); err != nil {
			return err
		}
		_, err := uc.recorder.Record(txCtx, timelineuc.RecordEventCommand{
			RobotID:  r.ID(),
			Type:     timeline.EventRobotUpdated,
			Title:    fmt.Sprintf("Robot %s updated", r.SN()),
			Metadata: changes,
			ActorID:  cmd.Principal.UserID,
		})
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to update robot", "robot_id", r.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("robot updated", "robot_id", r.ID(), "user_id", cmd.Principal.UserID)

	result := dto.ToRobotDTO(r)
	return &result, nil
}
