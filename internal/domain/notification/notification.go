package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/biztime"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/query"
)

type Type string

const (
	TypeTicketAssigned    Type = "ticket_assigned"
	TypeSummaryCompleted  Type = "summary_completed"
	TypeCustomerConfirmed Type = "customer_confirmed"
	TypeContractInvited   Type = "contract_invited"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeTicketAssigned, TypeSummaryCompleted, TypeCustomerConfirmed, TypeContractInvited:
		return true
	}
	return false
}

// Notification is an in-app message for one user.
type Notification struct {
	ID        uint
	UserID    uint
	OrgID     uint
	Type      Type
	Title     string
	Content   string
	TicketID  *uint
	ReadAt    *time.Time
	CreatedAt time.Time
}

func NewNotification(userID, orgID uint, t Type, title, content string, ticketID *uint) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", t)
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	return &Notification{
		UserID:    userID,
		OrgID:     orgID,
		Type:      t,
		Title:     title,
		Content:   content,
		TicketID:  ticketID,
		CreatedAt: biztime.NowUTC(),
	}, nil
}

func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

// MarkRead is idempotent; the first read time is kept.
func (n *Notification) MarkRead() {
	if n.ReadAt != nil {
		return
	}
	now := biztime.NowUTC()
	n.ReadAt = &now
}

type Repository interface {
	CreateBatch(ctx context.Context, notifications []*Notification) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	ListByUser(ctx context.Context, userID uint, unreadOnly bool, page query.PageFilter) ([]*Notification, int64, error)
	MarkRead(ctx context.Context, n *Notification) error
}
