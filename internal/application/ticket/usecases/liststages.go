package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/ticket/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type ListStagesQuery struct {
	TicketID  uint
	Principal *authorization.Principal
}

// ListStagesUseCase returns all six stage slots in workflow order. A stale or
// missing interval mirror is rewritten from its stage while listing.
type ListStagesUseCase struct {
	ticketRepo   ticket.TicketRepository
	stageRepo    ticket.StageRepository
	intervalRepo ticket.IntervalRepository
	authorizer   Authorizer
	logger       logger.Interface
}

func NewListStagesUseCase(
	ticketRepo ticket.TicketRepository,
	stageRepo ticket.StageRepository,
	intervalRepo ticket.IntervalRepository,
	authorizer Authorizer,
	logger logger.Interface,
) *ListStagesUseCase {
	return &ListStagesUseCase{
		ticketRepo:   ticketRepo,
		stageRepo:    stageRepo,
		intervalRepo: intervalRepo,
		authorizer:   authorizer,
		logger:       logger,
	}
}

func (uc *ListStagesUseCase) Execute(ctx context.Context, q ListStagesQuery) ([]dto.StageDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, q.TicketID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorizer.AuthorizeTicket(ctx, q.Principal, t, permission.ResourceTicketStage, permission.ActionRead); err != nil {
		return nil, err
	}

	stages, err := uc.stageRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list stages", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}

	uc.repairIntervals(ctx, t.ID(), stages)

	byType := make(map[vo.StageType]*ticket.Stage, len(stages))
	for _, s := range stages {
		byType[s.StageType()] = s
	}

	result := make([]dto.StageDTO, 0, len(vo.StageTypes()))
	for _, st := range vo.StageTypes() {
		if s, ok := byType[st]; ok {
			result = append(result, dto.ToStageDTO(s))
			continue
		}
		result = append(result, dto.EmptyStageDTO(t.ID(), st))
	}
	return result, nil
}

// repairIntervals treats each stage as the source of truth for its mirror.
// Failures are logged; the stage list is still returned.
func (uc *ListStagesUseCase) repairIntervals(ctx context.Context, ticketID uint, stages []*ticket.Stage) {
	if len(stages) == 0 {
		return
	}

	intervals, err := uc.intervalRepo.ListByTicket(ctx, ticketID)
	if err != nil {
		uc.logger.Warnw("failed to load stage intervals", "ticket_id", ticketID, "error", err)
		return
	}

	byType := make(map[vo.StageType]*ticket.TimelineInterval, len(intervals))
	for _, i := range intervals {
		byType[i.StageType] = i
	}

	for _, s := range stages {
		if existing, ok := byType[s.StageType()]; ok && existing.Matches(s) {
			continue
		}
		if err := uc.intervalRepo.Upsert(ctx, ticket.IntervalFromStage(s)); err != nil {
			uc.logger.Warnw("failed to repair stage interval", "ticket_id", ticketID, "stage_type", s.StageType(), "error", err)
			continue
		}
		uc.logger.Infow("stage interval repaired", "ticket_id", ticketID, "stage_type", s.StageType())
	}
}
