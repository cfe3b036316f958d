package timeline

import "fmt"

type EventType string

const (
	EventTicketCreated     EventType = "ticket_created"
	EventTicketUpdated     EventType = "ticket_updated"
	EventTicketAssigned    EventType = "ticket_assigned"
	EventStatusChanged     EventType = "status_changed"
	EventStageUpdated      EventType = "stage_updated"
	EventSummaryCompleted  EventType = "summary_completed"
	EventCustomerConfirmed EventType = "customer_confirmed"
	EventCommentAdded      EventType = "comment_added"
	EventMaintenance       EventType = "maintenance"
	EventRobotCreated      EventType = "robot_created"
	EventRobotUpdated      EventType = "robot_updated"
)

var validEventTypes = map[EventType]bool{
	EventTicketCreated:     true,
	EventTicketUpdated:     true,
	EventTicketAssigned:    true,
	EventStatusChanged:     true,
	EventStageUpdated:      true,
	EventSummaryCompleted:  true,
	EventCustomerConfirmed: true,
	EventCommentAdded:      true,
	EventMaintenance:       true,
	EventRobotCreated:      true,
	EventRobotUpdated:      true,
}

func (t EventType) String() string {
	return string(t)
}

func (t EventType) IsValid() bool {
	return validEventTypes[t]
}

func NewEventType(s string) (EventType, error) {
	t := EventType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid event type: %s", s)
	}
	return t, nil
}

// OwnedEntity names what deleting an event of this type also deletes.
type OwnedEntity string

const (
	OwnsNothing        OwnedEntity = ""
	OwnsTicket         OwnedEntity = "ticket"
	OwnsComment        OwnedEntity = "comment"
	OwnsMaintenanceLog OwnedEntity = "maintenance_log"
)

// Owns returns the entity an event of this type is the creation record for.
func (t EventType) Owns() OwnedEntity {
	switch t {
	case EventTicketCreated:
		return OwnsTicket
	case EventCommentAdded:
		return OwnsComment
	case EventMaintenance:
		return OwnsMaintenanceLog
	default:
		return OwnsNothing
	}
}
