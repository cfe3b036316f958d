package usecases

import (
	"context"
	"fmt"

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

// UpdateTicketCommand carries the whitelisted fields. Nil fields are left alone.
type UpdateTicketCommand struct {
	TicketID    uint
	Title       *string
	Description *string
	Priority    *string
	Status      *string
	Principal   *authorization.Principal
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	recorder   EventRecorder
	authorizer Authorizer
	txManager  db.Transactor
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	recorder EventRecorder,
	authorizer Authorizer,
	txManager db.Transactor,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		recorder:   recorder,
		authorizer: authorizer,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	if cmd.Title == nil && cmd.Description == nil && cmd.Priority == nil && cmd.Status == nil {
		return nil, errors.NewValidationError("no fields to update")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorizer.AuthorizeTicket(ctx, cmd.Principal, t, permission.ResourceTicket, permission.ActionUpdate); err != nil {
		return nil, err
	}

	changed := map[string]interface{}{}
	if cmd.Title != nil && *cmd.Title != t.Title() {
		if err := t.UpdateTitle(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		changed["title"] = *cmd.Title
	}
	if cmd.Description != nil && *cmd.Description != t.Description() {
		if err := t.UpdateDescription(*cmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		changed["description"] = true
	}
	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if priority != t.Priority() {
			if err := t.ChangePriority(priority); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
			changed["priority"] = priority.String()
		}
	}

	oldStatus := t.Status()
	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := t.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	statusChanged := t.Status() != oldStatus

	if len(changed) == 0 && !statusChanged {
		result := dto.ToTicketDTO(t)
		return &result, nil
	}

	actorID := cmd.Principal.UserID
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		if len(changed) > 0 {
			if err := recordTicketEvent(txCtx, uc.recorder, t, timeline.EventTicketUpdated,
				fmt.Sprintf("Ticket %s updated", t.Number()), "", changed, nil, actorID); err != nil {
				return err
			}
		}

		if statusChanged {
			metadata := map[string]interface{}{"from": oldStatus.String(), "to": t.Status().String()}
			if err := recordTicketEvent(txCtx, uc.recorder, t, timeline.EventStatusChanged,
				fmt.Sprintf("Status changed to %s", t.Status()), "", metadata, nil, actorID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "user_id", actorID, "status", t.Status())

	result := dto.ToTicketDTO(t)
	return &result, nil
}
