package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/timeline/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/mapper"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/query"
)

// ListEventsQuery lists a robot's or a ticket's timeline. Exactly one of
// RobotID and TicketID is set.
type ListEventsQuery struct {
	Principal  *authorization.Principal
	RobotID    *uint
	TicketID   *uint
	EventTypes []string
	From       *time.Time
	To         *time.Time
	Page       int
	PageSize   int
}

type ListEventsResult struct {
	Events []dto.EventDTO
	Total  int64
}

type ListEventsUseCase struct {
	repo       timeline.Repository
	robotRepo  robot.Repository
	ticketRepo ticket.TicketRepository
	authorizer Authorizer
	logger     logger.Interface
}

func NewListEventsUseCase(
	repo timeline.Repository,
	robotRepo robot.Repository,
	ticketRepo ticket.TicketRepository,
	authorizer Authorizer,
	logger logger.Interface,
) *ListEventsUseCase {
	return &ListEventsUseCase{
		repo:       repo,
		robotRepo:  robotRepo,
		ticketRepo: ticketRepo,
		authorizer: authorizer,
		logger:     logger,
	}
}

func (uc *ListEventsUseCase) Execute(ctx context.Context, q ListEventsQuery) (*ListEventsResult, error) {
	if (q.RobotID == nil) == (q.TicketID == nil) {
		return nil, errors.NewValidationError("exactly one of robot_id and ticket_id is required")
	}
	if q.From != nil && q.To != nil && q.To.Before(*q.From) {
		return nil, errors.NewValidationError("'to' cannot be before 'from'")
	}

	types := make([]timeline.EventType, 0, len(q.EventTypes))
	for _, raw := range q.EventTypes {
		et, err := timeline.NewEventType(raw)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		types = append(types, et)
	}

	if err := uc.authorizeScope(ctx, q); err != nil {
		return nil, err
	}

	events, total, err := uc.repo.List(ctx, timeline.Filter{
		PageFilter: query.PageFilter{Page: q.Page, PageSize: q.PageSize},
		RobotID:    q.RobotID,
		TicketID:   q.TicketID,
		EventTypes: types,
		From:       q.From,
		To:         q.To,
	})
	if err != nil {
		uc.logger.Errorw("failed to list timeline events", "error", err)
		return nil, fmt.Errorf("failed to list timeline events: %w", err)
	}

	return &ListEventsResult{
		Events: mapper.MapSlice(events, dto.ToEventDTO),
		Total:  total,
	}, nil
}

func (uc *ListEventsUseCase) authorizeScope(ctx context.Context, q ListEventsQuery) error {
	if q.TicketID != nil {
		t, err := uc.ticketRepo.GetByID(ctx, *q.TicketID)
		if err != nil {
			return err
		}
		return uc.authorizer.AuthorizeTicket(ctx, q.Principal, t, permission.ResourceTimeline, permission.ActionRead)
	}

	r, err := uc.robotRepo.GetByID(ctx, *q.RobotID)
	if err != nil {
		return err
	}
	return uc.authorizer.AuthorizeRobot(ctx, q.Principal, r, permission.ResourceTimeline, permission.ActionRead)
}
