package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/ticket/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type CreateTicketCommand struct {
	RobotID     uint
	Title       string
	Description string
	Priority    string
	Principal   *authorization.Principal
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	robotRepo  robot.Repository
	numbers    ticket.NumberGenerator
	recorder   EventRecorder
	authorizer Authorizer
	txManager  db.Transactor
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	robotRepo robot.Repository,
	numbers ticket.NumberGenerator,
	recorder EventRecorder,
	authorizer Authorizer,
	txManager db.Transactor,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		robotRepo:  robotRepo,
		numbers:    numbers,
		recorder:   recorder,
		authorizer: authorizer,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "robot_id", cmd.RobotID, "title", cmd.Title)

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	r, err := uc.robotRepo.GetByID(ctx, cmd.RobotID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorizer.AuthorizeRobot(ctx, cmd.Principal, r, permission.ResourceTicket, permission.ActionCreate); err != nil {
		return nil, err
	}

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		r.ID(),
		r.OrgID(),
		r.ServiceProviderID(),
		priority,
		cmd.Principal.UserID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numbers.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket number", "error", err)
		return nil, fmt.Errorf("failed to generate ticket number: %w", err)
	}
	if err := newTicket.SetNumber(number); err != nil {
		return nil, errors.NewInternalError("failed to set ticket number", err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Create(txCtx, newTicket); err != nil {
			return err
		}

		r.MarkUnderMaintenance()
		if err := uc.robotRepo.Update(txCtx, r); err != nil {
			return fmt.Errorf("failed to update robot status: %w", err)
		}

		return recordTicketEvent(txCtx, uc.recorder, newTicket,
			timeline.EventTicketCreated,
			fmt.Sprintf("Ticket %s created", newTicket.Number()),
			newTicket.Title(),
			map[string]interface{}{"priority": newTicket.Priority().String()},
			uintPtr(newTicket.ID()),
			cmd.Principal.UserID,
		)
	})
	if err != nil {
		uc.logger.Errorw("failed to save ticket", "robot_id", r.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "number", newTicket.Number())

	result := dto.ToTicketDTO(newTicket)
	return &result, nil
}
