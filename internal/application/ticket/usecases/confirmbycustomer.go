package usecases

import (
	"context"
	"fmt"

	notificationuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/notification/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/application/ticket/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/notification"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/biztime"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type ConfirmByCustomerCommand struct {
	TicketID  uint
	Rating    int
	Comment   string
	Principal *authorization.Principal
}

// ConfirmByCustomerUseCase records the customer's sign-off: rating, confirmation
// stage, resolved ticket and robot back in service.
type ConfirmByCustomerUseCase struct {
	ticketRepo ticket.TicketRepository
	ratingRepo ticket.RatingRepository
	robotRepo  robot.Repository
	userRepo   user.Repository
	writer     *stageWriter
	authorizer Authorizer
	notifier   Notifier
	txManager  db.Transactor
	logger     logger.Interface
}

func NewConfirmByCustomerUseCase(
	ticketRepo ticket.TicketRepository,
	stageRepo ticket.StageRepository,
	intervalRepo ticket.IntervalRepository,
	ratingRepo ticket.RatingRepository,
	robotRepo robot.Repository,
	userRepo user.Repository,
	recorder EventRecorder,
	authorizer Authorizer,
	notifier Notifier,
	txManager db.Transactor,
	logger logger.Interface,
) *ConfirmByCustomerUseCase {
	return &ConfirmByCustomerUseCase{
		ticketRepo: ticketRepo,
		ratingRepo: ratingRepo,
		robotRepo:  robotRepo,
		userRepo:   userRepo,
		writer:     &stageWriter{stageRepo: stageRepo, intervalRepo: intervalRepo, recorder: recorder},
		authorizer: authorizer,
		notifier:   notifier,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *ConfirmByCustomerUseCase) Execute(ctx context.Context, cmd ConfirmByCustomerCommand) (*dto.TicketDTO, error) {
	if cmd.Rating < ticket.MinRatingScore || cmd.Rating > ticket.MaxRatingScore {
		return nil, errors.NewValidationError(fmt.Sprintf("rating must be between %d and %d", ticket.MinRatingScore, ticket.MaxRatingScore))
	}
	if cmd.Principal == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	p := cmd.Principal
	if !p.IsEndSide() || p.OrgID != t.CustomerID() {
		uc.logger.Warnw("customer confirmation denied", "ticket_id", t.ID(), "user_id", p.UserID, "org_id", p.OrgID)
		return nil, errors.NewForbiddenError("only the customer can confirm this ticket")
	}
	if err := uc.authorizer.AuthorizeTicket(ctx, p, t, permission.ResourceTicket, permission.ActionConfirm); err != nil {
		return nil, err
	}

	if !t.Status().CanTransitionTo(vo.StatusResolved) {
		return nil, errors.NewValidationError(fmt.Sprintf("ticket in status %s cannot be confirmed", t.Status()))
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		rating, err := ticket.NewRating(t.ID(), cmd.Rating, cmd.Comment, p.UserID, p.OrgID)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.ratingRepo.Create(txCtx, rating); err != nil {
			return err
		}

		stage, _, err := uc.writer.load(txCtx, t.ID(), vo.StageCustomerConfirmation, p.UserID)
		if err != nil {
			return err
		}
		stage.SetContentIfEmpty(cmd.Comment)
		stage.Complete(biztime.NowUTC(), p.UserID)

		title := fmt.Sprintf("%s received", vo.StageCustomerConfirmation.Title())
		extra := map[string]interface{}{"rating": cmd.Rating}
		if err := uc.writer.write(txCtx, t, stage, timeline.EventCustomerConfirmed, title, extra, p.UserID); err != nil {
			return err
		}

		if err := t.Resolve(cmd.Comment); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}

		return uc.releaseRobot(txCtx, t.RobotID())
	})
	if err != nil {
		uc.logger.Errorw("failed to confirm ticket", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket confirmed by customer", "ticket_id", t.ID(), "user_id", p.UserID, "rating", cmd.Rating)

	notifyQuietly(ctx, uc.notifier, uc.logger, notificationuc.NotifyCommand{
		Recipients: uc.providerRecipients(ctx, t),
		Type:       notification.TypeCustomerConfirmed,
		Title:      fmt.Sprintf("Ticket %s confirmed by customer", t.Number()),
		Content:    fmt.Sprintf("The customer confirmed \"%s\" with a rating of %d/5.", t.Title(), cmd.Rating),
		TicketID:   uintPtr(t.ID()),
	})

	result := dto.ToTicketDTO(t)
	return &result, nil
}

// releaseRobot puts the robot back in service. A robot deleted meanwhile is skipped.
func (uc *ConfirmByCustomerUseCase) releaseRobot(ctx context.Context, robotID uint) error {
	r, err := uc.robotRepo.GetByID(ctx, robotID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil
		}
		return err
	}
	r.MarkActive()
	if err := uc.robotRepo.Update(ctx, r); err != nil {
		return fmt.Errorf("failed to update robot status: %w", err)
	}
	return nil
}

func (uc *ConfirmByCustomerUseCase) providerRecipients(ctx context.Context, t *ticket.Ticket) []notificationuc.Recipient {
	recipients := orgAdmins(ctx, uc.userRepo, uc.logger, t.ServiceProviderID())
	if t.AssignedTo() == nil {
		return recipients
	}

	assignee, err := uc.userRepo.GetByID(ctx, *t.AssignedTo())
	if err != nil {
		uc.logger.Warnw("failed to load assignee for notification", "user_id", *t.AssignedTo(), "error", err)
		return recipients
	}
	return append(recipients, toRecipients([]*user.User{assignee})...)
}
