package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/models"
)

func TimelineEventToModel(e *timeline.Event) (*models.TimelineEventModel, error) {
	var metadata datatypes.JSON
	if md := e.Metadata(); len(md) > 0 {
		data, err := json.Marshal(md)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal event metadata: %w", err)
		}
		metadata = data
	}
	return &models.TimelineEventModel{
		ID:          e.ID(),
		RobotID:     e.RobotID(),
		TicketID:    e.TicketID(),
		EntityID:    e.EntityID(),
		EventType:   e.Type().String(),
		Title:       e.Title(),
		Description: e.Description(),
		Metadata:    metadata,
		CreatedBy:   e.CreatedBy(),
		CreatedAt:   e.CreatedAt(),
	}, nil
}

func TimelineEventToDomain(model *models.TimelineEventModel) (*timeline.Event, error) {
	var metadata map[string]interface{}
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event metadata: %w", err)
		}
	}
	return timeline.ReconstructEvent(
		model.ID,
		model.RobotID,
		model.TicketID,
		model.EntityID,
		timeline.EventType(model.EventType),
		model.Title,
		model.Description,
		metadata,
		model.CreatedBy,
		model.CreatedAt,
	), nil
}
