package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type RecordEventCommand struct {
	RobotID     uint
	TicketID    *uint
	EntityID    *uint
	Type        timeline.EventType
	Title       string
	Description string
	Metadata    map[string]interface{}
	ActorID     uint
}

// RecordEventUseCase appends one event. Events are never updated.
type RecordEventUseCase struct {
	repo   timeline.Repository
	logger logger.Interface
}

func NewRecordEventUseCase(repo timeline.Repository, logger logger.Interface) *RecordEventUseCase {
	return &RecordEventUseCase{repo: repo, logger: logger}
}

func (uc *RecordEventUseCase) Record(ctx context.Context, cmd RecordEventCommand) (uint, error) {
	event, err := timeline.NewEvent(cmd.RobotID, cmd.TicketID, cmd.EntityID, cmd.Type, cmd.Title, cmd.Description, cmd.Metadata, cmd.ActorID)
	if err != nil {
		return 0, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Append(ctx, event); err != nil {
		uc.logger.Errorw("failed to append timeline event", "type", cmd.Type, "robot_id", cmd.RobotID, "error", err)
		return 0, fmt.Errorf("failed to append timeline event: %w", err)
	}

	uc.logger.Debugw("timeline event appended", "event_id", event.ID(), "type", cmd.Type)
	return event.ID(), nil
}
