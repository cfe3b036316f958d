package dto

import (
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/timeline"
)

type EventDTO struct {
	ID          uint                   `json:"id"`
	RobotID     uint                   `json:"robot_id"`
	TicketID    *uint                  `json:"ticket_id,omitempty"`
	EntityID    *uint                  `json:"entity_id,omitempty"`
	EventType   string                 `json:"event_type"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedBy   uint                   `json:"created_by"`
	CreatedAt   time.Time              `json:"created_at"`
}

func ToEventDTO(e *timeline.Event) EventDTO {
	return EventDTO{
		ID:          e.ID(),
		RobotID:     e.RobotID(),
		TicketID:    e.TicketID(),
		EntityID:    e.EntityID(),
		EventType:   e.Type().String(),
		Title:       e.Title(),
		Description: e.Description(),
		Metadata:    e.Metadata(),
		CreatedBy:   e.CreatedBy(),
		CreatedAt:   e.CreatedAt(),
	}
}
