package usecases

import (
	"context"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID  uint
	Principal *authorization.Principal
}

// DeleteTicketUseCase removes a ticket with its stages, intervals, comments and
// rating. Timeline events stay as the robot's history.
type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	authorizer Authorizer
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	authorizer Authorizer,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		authorizer: authorizer,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if err := uc.authorizer.AuthorizeTicket(ctx, cmd.Principal, t, permission.ResourceTicket, permission.ActionDelete); err != nil {
		return err
	}

	if err := uc.ticketRepo.Delete(ctx, t.ID()); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", t.ID(), "error", err)
		return err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", t.ID(), "number", t.Number(), "user_id", cmd.Principal.UserID)
	return nil
}
