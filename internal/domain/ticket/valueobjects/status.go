package valueobjects

import (
	"fmt"
	"slices"
)

// TicketStatus is the lifecycle state of a service ticket. A ticket opens when
// the customer reports a fault, waits in pending while the customer confirms
// the service summary and is resolved once confirmed.
type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusPending    TicketStatus = "pending"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

// Resolved and closed tickets may only be reopened.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusOpen:       {StatusInProgress, StatusPending, StatusClosed},
	StatusInProgress: {StatusPending, StatusResolved, StatusClosed},
	StatusPending:    {StatusInProgress, StatusResolved, StatusClosed},
	StatusResolved:   {StatusClosed, StatusOpen},
	StatusClosed:     {StatusOpen},
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	_, ok := ticketStatusTransitions[ts]
	return ok
}

// Next lists the statuses reachable from ts in one step.
func (ts TicketStatus) Next() []TicketStatus {
	return slices.Clone(ticketStatusTransitions[ts])
}

func (ts TicketStatus) CanTransitionTo(next TicketStatus) bool {
	return slices.Contains(ticketStatusTransitions[ts], next)
}

// IsFinished reports whether work on the ticket has ended.
func (ts TicketStatus) IsFinished() bool {
	return ts == StatusResolved || ts == StatusClosed
}
