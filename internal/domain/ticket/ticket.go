package ticket

import (
	"fmt"
	"time"

	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/biztime"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

// Ticket is a maintenance request raised against a robot. The customer and
// provider are copied from the robot at creation and never change.
type Ticket struct {
	id                uint
	number            string
	title             string
	description       string
	robotID           uint
	customerID        uint
	serviceProviderID uint
	status            vo.TicketStatus
	priority          vo.Priority
	assignedTo        *uint
	createdBy         uint
	resolvedAt        *time.Time
	resolutionNotes   string
	createdAt         time.Time
	updatedAt         time.Time
}

func NewTicket(
	title string,
	description string,
	robotID uint,
	customerID uint,
	serviceProviderID uint,
	priority vo.Priority,
	createdBy uint,
) (*Ticket, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if robotID == 0 {
		return nil, fmt.Errorf("robot ID is required")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		title:             title,
		description:       description,
		robotID:           robotID,
		customerID:        customerID,
		serviceProviderID: serviceProviderID,
		status:            vo.StatusOpen,
		priority:          priority,
		createdBy:         createdBy,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func ReconstructTicket(
	id uint,
	number string,
	title string,
	description string,
	robotID uint,
	customerID uint,
	serviceProviderID uint,
	status vo.TicketStatus,
	priority vo.Priority,
	assignedTo *uint,
	createdBy uint,
	resolvedAt *time.Time,
	resolutionNotes string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &Ticket{
		id:                id,
		number:            number,
		title:             title,
		description:       description,
		robotID:           robotID,
		customerID:        customerID,
		serviceProviderID: serviceProviderID,
		status:            status,
		priority:          priority,
		assignedTo:        assignedTo,
		createdBy:         createdBy,
		resolvedAt:        resolvedAt,
		resolutionNotes:   resolutionNotes,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func validateTitle(title string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	return nil
}

func (t *Ticket) ID() uint                { return t.id }
func (t *Ticket) Number() string          { return t.number }
func (t *Ticket) Title() string           { return t.title }
func (t *Ticket) Description() string     { return t.description }
func (t *Ticket) RobotID() uint           { return t.robotID }
func (t *Ticket) CustomerID() uint        { return t.customerID }
func (t *Ticket) ServiceProviderID() uint { return t.serviceProviderID }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) Priority() vo.Priority   { return t.priority }
func (t *Ticket) AssignedTo() *uint       { return t.assignedTo }
func (t *Ticket) CreatedBy() uint         { return t.createdBy }
func (t *Ticket) ResolvedAt() *time.Time  { return t.resolvedAt }
func (t *Ticket) ResolutionNotes() string { return t.resolutionNotes }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }

// IsAssignedTo reports whether userID is the current assignee.
func (t *Ticket) IsAssignedTo(userID uint) bool {
	return t.assignedTo != nil && *t.assignedTo == userID
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

func (t *Ticket) UpdateTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	t.title = title
	t.touch()
	return nil
}

func (t *Ticket) UpdateDescription(description string) error {
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	t.description = description
	t.touch()
	return nil
}

func (t *Ticket) ChangePriority(priority vo.Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}
	t.priority = priority
	t.touch()
	return nil
}

// ChangeStatus moves the ticket along the transition table. Setting the current
// status again is a no-op. Reopening clears the resolution timestamp.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}
	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s (allowed: %v)", t.status, newStatus, t.status.Next())
	}

	t.status = newStatus
	t.touch()

	switch newStatus {
	case vo.StatusResolved:
		if t.resolvedAt == nil {
			now := t.updatedAt
			t.resolvedAt = &now
		}
	case vo.StatusOpen:
		t.resolvedAt = nil
	}
	return nil
}

// AwaitConfirmation moves the ticket to pending once the summary is complete.
func (t *Ticket) AwaitConfirmation() error {
	return t.ChangeStatus(vo.StatusPending)
}

// Resolve records customer confirmation. Unlike ChangeStatus it rejects a
// ticket that is already resolved, so a second confirmation fails.
func (t *Ticket) Resolve(notes string) error {
	if !t.status.CanTransitionTo(vo.StatusResolved) {
		return fmt.Errorf("ticket with status %s cannot be resolved", t.status)
	}
	if err := t.ChangeStatus(vo.StatusResolved); err != nil {
		return err
	}
	if t.resolutionNotes == "" {
		t.resolutionNotes = notes
	}
	return nil
}

func (t *Ticket) AssignTo(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	t.assignedTo = &userID
	t.touch()
	return nil
}

func (t *Ticket) touch() {
	t.updatedAt = biztime.NowUTC()
}
