package usecases

import (
	"context"
	"fmt"

	notificationuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/notification/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/application/ticket/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/notification"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID   uint
	AssigneeID uint
	Principal  *authorization.Principal
}

type AssignTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	recorder   EventRecorder
	authorizer Authorizer
	notifier   Notifier
	txManager  db.Transactor
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	recorder EventRecorder,
	authorizer Authorizer,
	notifier Notifier,
	txManager db.Transactor,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		recorder:   recorder,
		authorizer: authorizer,
		notifier:   notifier,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing assign ticket use case", "ticket_id", cmd.TicketID, "assignee_id", cmd.AssigneeID)

	if cmd.AssigneeID == 0 {
		return nil, errors.NewValidationError("assignee ID is required")
	}
	if cmd.Principal == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if !cmd.Principal.IsServiceSide() {
		return nil, errors.NewForbiddenError("only the service provider can assign tickets")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorizer.AuthorizeTicket(ctx, cmd.Principal, t, permission.ResourceTicket, permission.ActionAssign); err != nil {
		return nil, err
	}

	assignee, err := uc.userRepo.GetByID(ctx, cmd.AssigneeID)
	if err != nil {
		return nil, err
	}
	if assignee.OrgID() != t.ServiceProviderID() || assignee.Role() != authorization.RoleServiceEngineer || !assignee.CanLogin() {
		return nil, errors.NewValidationError("assignee must be an active engineer of the service provider")
	}

	if err := t.AssignTo(assignee.ID()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		return recordTicketEvent(txCtx, uc.recorder, t, timeline.EventTicketAssigned,
			fmt.Sprintf("Assigned to %s", assignee.Name()), "",
			map[string]interface{}{"assignee_id": assignee.ID()},
			nil, cmd.Principal.UserID)
	})
	if err != nil {
		uc.logger.Errorw("failed to assign ticket", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket assigned successfully", "ticket_id", t.ID(), "assignee_id", assignee.ID())

	notifyQuietly(ctx, uc.notifier, uc.logger, notificationuc.NotifyCommand{
		Recipients: toRecipients([]*user.User{assignee}),
		Type:       notification.TypeTicketAssigned,
		Title:      fmt.Sprintf("Ticket %s assigned to you", t.Number()),
		Content:    t.Title(),
		TicketID:   uintPtr(t.ID()),
	})

	result := dto.ToTicketDTO(t)
	return &result, nil
}
