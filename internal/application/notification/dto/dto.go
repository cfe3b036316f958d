package dto

import (
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/notification"
)

type NotificationDTO struct {
	ID        uint       `json:"id"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	TicketID  *uint      `json:"ticket_id,omitempty"`
	ReadAt    *time.Time `json:"read_at"`
	CreatedAt time.Time  `json:"created_at"`
}

func ToNotificationDTO(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Content:   n.Content,
		TicketID:  n.TicketID,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

// BrokerMessage is the payload fanned out to the message broker per record.
type BrokerMessage struct {
	NotificationID uint      `json:"notification_id"`
	UserID         uint      `json:"user_id"`
	OrgID          uint      `json:"org_id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	TicketID       *uint     `json:"ticket_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
