package usecases

import (
	"context"
	"fmt"
	"time"

	notificationuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/notification/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/application/ticket/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/notification"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
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

type CompleteSummaryCommand struct {
	TicketID uint
	// CompletedAt defaults to now.
	CompletedAt *time.Time
	// Content fills the summary when it has none yet.
	Content   string
	Principal *authorization.Principal
}

// CompleteSummaryUseCase closes the service side's work on a ticket and hands
// it to the customer for confirmation.
type CompleteSummaryUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	writer     *stageWriter
	authorizer Authorizer
	notifier   Notifier
	txManager  db.Transactor
	logger     logger.Interface
}

func NewCompleteSummaryUseCase(
	ticketRepo ticket.TicketRepository,
	stageRepo ticket.StageRepository,
	intervalRepo ticket.IntervalRepository,
	userRepo user.Repository,
	recorder EventRecorder,
	authorizer Authorizer,
	notifier Notifier,
	txManager db.Transactor,
	logger logger.Interface,
) *CompleteSummaryUseCase {
	return &CompleteSummaryUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		writer:     &stageWriter{stageRepo: stageRepo, intervalRepo: intervalRepo, recorder: recorder},
		authorizer: authorizer,
		notifier:   notifier,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *CompleteSummaryUseCase) Execute(ctx context.Context, cmd CompleteSummaryCommand) (*dto.StageDTO, error) {
	if cmd.Principal == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if !cmd.Principal.IsServiceSide() {
		return nil, errors.NewForbiddenError("only the service provider can complete the summary")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorizer.AuthorizeTicket(ctx, cmd.Principal, t, permission.ResourceTicketStage, permission.ActionComplete); err != nil {
		return nil, err
	}

	completedAt := biztime.NowUTC()
	if cmd.CompletedAt != nil {
		completedAt = cmd.CompletedAt.UTC()
	}
	actorID := cmd.Principal.UserID

	var saved *ticket.Stage
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := t.AwaitConfirmation(); err != nil {
			return errors.NewValidationError(err.Error())
		}

		stage, _, err := uc.writer.load(txCtx, t.ID(), vo.StageSummary, actorID)
		if err != nil {
			return err
		}
		stage.SetContentIfEmpty(cmd.Content)
		stage.Complete(completedAt, actorID)

		title := fmt.Sprintf("%s completed", vo.StageSummary.Title())
		if err := uc.writer.write(txCtx, t, stage, timeline.EventSummaryCompleted, title, nil, actorID); err != nil {
			return err
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}
		saved = stage
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to complete summary", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("summary completed", "ticket_id", t.ID(), "user_id", actorID, "status", t.Status())

	notifyQuietly(ctx, uc.notifier, uc.logger, notificationuc.NotifyCommand{
		Recipients: orgAdmins(ctx, uc.userRepo, uc.logger, t.CustomerID()),
		Type:       notification.TypeSummaryCompleted,
		Title:      fmt.Sprintf("Ticket %s is ready for confirmation", t.Number()),
		Content:    fmt.Sprintf("The service summary for \"%s\" has been completed. Please review and confirm.", t.Title()),
		TicketID:   uintPtr(t.ID()),
	})

	result := dto.ToStageDTO(saved)
	return &result, nil
}
