package usecases

import (
	"context"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/notification/dto"
)

// EmailSender delivers one message. Implementations are SMTP, SendGrid or a no-op.
type EmailSender interface {
	Send(to, subject, htmlBody, plainBody string) error
}

// Publisher fans notification records out to a message broker.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// Recipient is a resolved notification target.
type Recipient struct {
	UserID uint
	OrgID  uint
	Email  string
}

// NotifyExecutor is what other contexts depend on to raise notifications.
type NotifyExecutor interface {
	Notify(ctx context.Context, cmd NotifyCommand) error
}

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error)
}

type MarkNotificationReadExecutor interface {
	Execute(ctx context.Context, cmd MarkNotificationReadCommand) (*dto.NotificationDTO, error)
}

var (
	_ NotifyExecutor               = (*Notifier)(nil)
	_ ListNotificationsExecutor    = (*ListNotificationsUseCase)(nil)
	_ MarkNotificationReadExecutor = (*MarkNotificationReadUseCase)(nil)
)
