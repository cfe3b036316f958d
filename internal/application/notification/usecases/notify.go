package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"html"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/notification/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/notification"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/goroutine"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type NotifyCommand struct {
	Recipients []Recipient
	Type       notification.Type
	Title      string
	Content    string
	TicketID   *uint
}

// Notifier records one notification per recipient. Email and broker delivery
// run after the records are written and never fail the caller.
type Notifier struct {
	repo      notification.Repository
	mailer    EmailSender
	publisher Publisher
	logger    logger.Interface

	// dispatch runs delivery work; tests replace it to run inline.
	dispatch func(name string, fn func())
}

// NewNotifier builds a Notifier. mailer and publisher may be nil.
func NewNotifier(repo notification.Repository, mailer EmailSender, publisher Publisher, logger logger.Interface) *Notifier {
	n := &Notifier{
		repo:      repo,
		mailer:    mailer,
		publisher: publisher,
		logger:    logger,
	}
	n.dispatch = func(name string, fn func()) {
		goroutine.SafeGo(logger, name, fn)
	}
	return n
}

func (n *Notifier) Notify(ctx context.Context, cmd NotifyCommand) error {
	recipients := dedupeRecipients(cmd.Recipients)
	if len(recipients) == 0 {
		return nil
	}

	records := make([]*notification.Notification, 0, len(recipients))
	for _, r := range recipients {
		rec, err := notification.NewNotification(r.UserID, r.OrgID, cmd.Type, cmd.Title, cmd.Content, cmd.TicketID)
		if err != nil {
			return fmt.Errorf("invalid notification: %w", err)
		}
		records = append(records, rec)
	}

	if err := n.repo.CreateBatch(ctx, records); err != nil {
		n.logger.Errorw("failed to record notifications", "type", cmd.Type, "count", len(records), "error", err)
		return fmt.Errorf("failed to record notifications: %w", err)
	}

	n.logger.Infow("notifications recorded", "type", cmd.Type, "count", len(records))

	deliveryCtx := context.WithoutCancel(ctx)
	n.dispatch("notification-delivery", func() {
		n.deliver(deliveryCtx, recipients, records, cmd)
	})
	return nil
}

func (n *Notifier) deliver(ctx context.Context, recipients []Recipient, records []*notification.Notification, cmd NotifyCommand) {
	if n.mailer != nil {
		htmlBody := fmt.Sprintf("<p><strong>%s</strong></p><p>%s</p>", html.EscapeString(cmd.Title), html.EscapeString(cmd.Content))
		for _, r := range recipients {
			if r.Email == "" {
				continue
			}
			if err := n.mailer.Send(r.Email, cmd.Title, htmlBody, cmd.Content); err != nil {
				n.logger.Warnw("notification email failed", "user_id", r.UserID, "type", cmd.Type, "error", err)
			}
		}
	}

	if n.publisher != nil {
		for _, rec := range records {
			body, err := json.Marshal(dto.BrokerMessage{
				NotificationID: rec.ID,
				UserID:         rec.UserID,
				OrgID:          rec.OrgID,
				Type:           string(rec.Type),
				Title:          rec.Title,
				TicketID:       rec.TicketID,
				CreatedAt:      rec.CreatedAt,
			})
			if err != nil {
				n.logger.Warnw("failed to encode notification message", "error", err)
				continue
			}
			if err := n.publisher.Publish(ctx, "notification."+string(rec.Type), body); err != nil {
				n.logger.Warnw("notification publish failed", "notification_id", rec.ID, "error", err)
			}
		}
	}
}

func dedupeRecipients(in []Recipient) []Recipient {
	seen := make(map[uint]bool, len(in))
	out := make([]Recipient, 0, len(in))
	for _, r := range in {
		if r.UserID == 0 || seen[r.UserID] {
			continue
		}
		seen[r.UserID] = true
		out = append(out, r)
	}
	return out
}
