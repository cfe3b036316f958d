package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
)

// stageWriter persists a stage together with its interval mirror and the
// timeline event describing the change. Callers run it inside a transaction.
type stageWriter struct {
	stageRepo    ticket.StageRepository
	intervalRepo ticket.IntervalRepository
	recorder     EventRecorder
}

// load returns the stored stage, or a fresh not-started one when the slot is empty.
func (w *stageWriter) load(ctx context.Context, ticketID uint, stageType vo.StageType, actorID uint) (*ticket.Stage, bool, error) {
	stage, err := w.stageRepo.Get(ctx, ticketID, stageType)
	if err == nil {
		return stage, true, nil
	}
	if !errors.IsNotFoundError(err) {
		return nil, false, err
	}

	stage, err = ticket.NewStage(ticketID, stageType, "", nil, nil, actorID)
	if err != nil {
		return nil, false, errors.NewValidationError(err.Error())
	}
	return stage, false, nil
}

func (w *stageWriter) write(
	ctx context.Context,
	t *ticket.Ticket,
	stage *ticket.Stage,
	eventType timeline.EventType,
	title string,
	extra map[string]interface{},
	actorID uint,
) error {
	if err := w.stageRepo.Upsert(ctx, stage); err != nil {
		return fmt.Errorf("failed to save stage: %w", err)
	}
	if err := w.intervalRepo.Upsert(ctx, ticket.IntervalFromStage(stage)); err != nil {
		return fmt.Errorf("failed to save stage interval: %w", err)
	}

	metadata := map[string]interface{}{
		"stage_type": stage.StageType().String(),
		"status":     stage.Status().String(),
	}
	for k, v := range extra {
		metadata[k] = v
	}

	if err := recordTicketEvent(ctx, w.recorder, t, eventType, title, "", metadata, nil, actorID); err != nil {
		return fmt.Errorf("failed to record stage event: %w", err)
	}
	return nil
}
