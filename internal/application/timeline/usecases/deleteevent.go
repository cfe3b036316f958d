package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type DeleteEventCommand struct {
	EventID   uint
	Principal *authorization.Principal
}

// DeleteEventUseCase removes an event its author created. An event that is the
// creation record of a ticket, comment or maintenance log takes that entity
// with it, in the same transaction.
type DeleteEventUseCase struct {
	repo            timeline.Repository
	ticketRepo      ticket.TicketRepository
	commentRepo     ticket.CommentRepository
	maintenanceRepo robot.MaintenanceRepository
	txManager       db.Transactor
	logger          logger.Interface
}

func NewDeleteEventUseCase(
	repo timeline.Repository,
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	maintenanceRepo robot.MaintenanceRepository,
	txManager db.Transactor,
	logger logger.Interface,
) *DeleteEventUseCase {
	return &DeleteEventUseCase{
		repo:            repo,
		ticketRepo:      ticketRepo,
		commentRepo:     commentRepo,
		maintenanceRepo: maintenanceRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

func (uc *DeleteEventUseCase) Execute(ctx context.Context, cmd DeleteEventCommand) error {
	if cmd.Principal == nil {
		return errors.NewUnauthorizedError("authentication required")
	}

	event, err := uc.repo.GetByID(ctx, cmd.EventID)
	if err != nil {
		return err
	}

	if !event.CanBeDeletedBy(cmd.Principal.UserID) {
		uc.logger.Warnw("timeline event delete denied",
			"event_id", event.ID(),
			"user_id", cmd.Principal.UserID,
			"created_by", event.CreatedBy(),
		)
		return errors.NewForbiddenError("only the author can delete this event")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.repo.Delete(txCtx, event.ID()); err != nil {
			return fmt.Errorf("failed to delete event: %w", err)
		}
		return uc.cascade(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete timeline event", "event_id", event.ID(), "error", err)
		return err
	}

	uc.logger.Infow("timeline event deleted",
		"event_id", event.ID(),
		"type", event.Type(),
		"cascade", event.Type().Owns(),
	)
	return nil
}

func (uc *DeleteEventUseCase) cascade(ctx context.Context, event *timeline.Event) error {
	owned := event.Type().Owns()
	if owned == timeline.OwnsNothing || event.EntityID() == nil {
		return nil
	}
	entityID := *event.EntityID()

	var err error
	switch owned {
	case timeline.OwnsTicket:
		err = uc.ticketRepo.Delete(ctx, entityID)
	case timeline.OwnsComment:
		err = uc.commentRepo.Delete(ctx, entityID)
	case timeline.OwnsMaintenanceLog:
		err = uc.maintenanceRepo.Delete(ctx, entityID)
	}

	// The owned entity may already be gone; the event still goes.
	if err != nil && !errors.IsNotFoundError(err) {
		return fmt.Errorf("failed to delete %s %d: %w", owned, entityID, err)
	}
	return nil
}
