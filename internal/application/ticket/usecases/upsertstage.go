package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/ticket/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type UpsertStageCommand struct {
	TicketID     uint
	StageType    string
	Content      string
	Attachments  []string
	ExpectedDate *time.Time
	Principal    *authorization.Principal
}

// UpsertStageUseCase writes one stage of a ticket. Repeating the same write
// leaves one stage row and one interval row.
type UpsertStageUseCase struct {
	ticketRepo ticket.TicketRepository
	writer     *stageWriter
	authorizer Authorizer
	txManager  db.Transactor
	logger     logger.Interface
}

func NewUpsertStageUseCase(
	ticketRepo ticket.TicketRepository,
	stageRepo ticket.StageRepository,
	intervalRepo ticket.IntervalRepository,
	recorder EventRecorder,
	authorizer Authorizer,
	txManager db.Transactor,
	logger logger.Interface,
) *UpsertStageUseCase {
	return &UpsertStageUseCase{
		ticketRepo: ticketRepo,
		writer:     &stageWriter{stageRepo: stageRepo, intervalRepo: intervalRepo, recorder: recorder},
		authorizer: authorizer,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *UpsertStageUseCase) Execute(ctx context.Context, cmd UpsertStageCommand) (*dto.StageDTO, error) {
	stageType, err := vo.NewStageType(cmd.StageType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorizer.AuthorizeTicket(ctx, cmd.Principal, t, permission.ResourceTicketStage, permission.ActionUpdate); err != nil {
		return nil, err
	}

	var saved *ticket.Stage
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		stage, exists, err := uc.writer.load(txCtx, t.ID(), stageType, cmd.Principal.UserID)
		if err != nil {
			return err
		}

		if exists {
			stage.Apply(cmd.Content, cmd.Attachments, cmd.ExpectedDate, cmd.Principal.UserID)
		} else {
			stage, err = ticket.NewStage(t.ID(), stageType, cmd.Content, cmd.Attachments, cmd.ExpectedDate, cmd.Principal.UserID)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		title := fmt.Sprintf("%s updated", stageType.Title())
		if err := uc.writer.write(txCtx, t, stage, timeline.EventStageUpdated, title, nil, cmd.Principal.UserID); err != nil {
			return err
		}
		saved = stage
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to upsert stage", "ticket_id", t.ID(), "stage_type", stageType, "error", err)
		return nil, err
	}

	uc.logger.Infow("stage upserted",
		"ticket_id", t.ID(),
		"stage_type", stageType,
		"status", saved.Status(),
		"user_id", cmd.Principal.UserID,
	)

	result := dto.ToStageDTO(saved)
	return &result, nil
}
