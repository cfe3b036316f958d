package timeline

import (
	"fmt"
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/biztime"
)

// Event is an immutable audit entry attached to a robot and, optionally, a ticket.
// EntityID points at the entity the event created, when it created one.
type Event struct {
	id          uint
	robotID     uint
	ticketID    *uint
	entityID    *uint
	eventType   EventType
	title       string
	description string
	metadata    map[string]interface{}
	createdBy   uint
	createdAt   time.Time
}

func NewEvent(
	robotID uint,
	ticketID *uint,
	entityID *uint,
	eventType EventType,
	title string,
	description string,
	metadata map[string]interface{},
	createdBy uint,
) (*Event, error) {
	if robotID == 0 {
		return nil, fmt.Errorf("robot ID is required")
	}
	if !eventType.IsValid() {
		return nil, fmt.Errorf("invalid event type: %s", eventType)
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if eventType.Owns() != OwnsNothing && entityID == nil {
		return nil, fmt.Errorf("%s events must reference the entity they created", eventType)
	}

	return &Event{
		robotID:     robotID,
		ticketID:    ticketID,
		entityID:    entityID,
		eventType:   eventType,
		title:       title,
		description: description,
		metadata:    copyMetadata(metadata),
		createdBy:   createdBy,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructEvent(
	id, robotID uint,
	ticketID, entityID *uint,
	eventType EventType,
	title, description string,
	metadata map[string]interface{},
	createdBy uint,
	createdAt time.Time,
) *Event {
	return &Event{
		id:          id,
		robotID:     robotID,
		ticketID:    ticketID,
		entityID:    entityID,
		eventType:   eventType,
		title:       title,
		description: description,
		metadata:    copyMetadata(metadata),
		createdBy:   createdBy,
		createdAt:   createdAt,
	}
}

func (e *Event) ID() uint                         { return e.id }
func (e *Event) RobotID() uint                    { return e.robotID }
func (e *Event) TicketID() *uint                  { return e.ticketID }
func (e *Event) EntityID() *uint                  { return e.entityID }
func (e *Event) Type() EventType                  { return e.eventType }
func (e *Event) Title() string                    { return e.title }
func (e *Event) Description() string              { return e.description }
func (e *Event) Metadata() map[string]interface{} { return copyMetadata(e.metadata) }
func (e *Event) CreatedBy() uint                  { return e.createdBy }
func (e *Event) CreatedAt() time.Time             { return e.createdAt }

func (e *Event) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("event ID cannot be zero")
	}
	e.id = id
	return nil
}

// CanBeDeletedBy reports whether userID authored the event.
func (e *Event) CanBeDeletedBy(userID uint) bool {
	return userID != 0 && e.createdBy == userID
}

func copyMetadata(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
