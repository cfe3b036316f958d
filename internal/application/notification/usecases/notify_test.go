package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/notification"
	apperrors "github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

func TestNotifier_Notify(t *testing.T) {
	var saved []*notification.Notification
	repo := &mockNotificationRepository{
		CreateBatchFunc: func(ctx context.Context, ns []*notification.Notification) error {
			for i, n := range ns {
				n.ID = uint(i + 1)
			}
			saved = ns
			return nil
		},
	}
	mailer := &mockEmailSender{}
	pub := &mockPublisher{}

	n := NewNotifier(repo, mailer, pub, logger.NewNopLogger())
	n.dispatch = inline

	ticketID := uint(9)
	err := n.Notify(context.Background(), NotifyCommand{
		Recipients: []Recipient{
			{UserID: 1, OrgID: 2, Email: "a@x.io"},
			{UserID: 1, OrgID: 2, Email: "a@x.io"},
			{UserID: 3, OrgID: 2},
		},
		Type:     notification.TypeSummaryCompleted,
		Title:    "Summary ready",
		TicketID: &ticketID,
	})
	require.NoError(t, err)

	require.Len(t, saved, 2, "duplicate recipients collapse")
	assert.Equal(t, &ticketID, saved[0].TicketID)
	assert.Len(t, mailer.sent, 1, "recipients without email are skipped")
	assert.Equal(t, []string{"notification.summary_completed", "notification.summary_completed"}, pub.keys)
}

func TestNotifier_DeliveryFailureIsNotFatal(t *testing.T) {
	n := NewNotifier(&mockNotificationRepository{}, &mockEmailSender{err: errors.New("smtp down")}, &mockPublisher{err: errors.New("broker down")}, logger.NewNopLogger())
	n.dispatch = inline

	err := n.Notify(context.Background(), NotifyCommand{
		Recipients: []Recipient{{UserID: 1, Email: "a@x.io"}},
		Type:       notification.TypeCustomerConfirmed,
		Title:      "Confirmed",
	})
	assert.NoError(t, err)
}

func TestNotifier_NoRecipients(t *testing.T) {
	called := false
	repo := &mockNotificationRepository{
		CreateBatchFunc: func(ctx context.Context, ns []*notification.Notification) error {
			called = true
			return nil
		},
	}
	n := NewNotifier(repo, nil, nil, logger.NewNopLogger())
	require.NoError(t, n.Notify(context.Background(), NotifyCommand{Type: notification.TypeTicketAssigned, Title: "x"}))
	assert.False(t, called)
}

func TestNotifier_RecordFailureSurfaces(t *testing.T) {
	repo := &mockNotificationRepository{
		CreateBatchFunc: func(ctx context.Context, ns []*notification.Notification) error {
			return errors.New("insert failed")
		},
	}
	n := NewNotifier(repo, nil, nil, logger.NewNopLogger())
	err := n.Notify(context.Background(), NotifyCommand{
		Recipients: []Recipient{{UserID: 1}},
		Type:       notification.TypeTicketAssigned,
		Title:      "Assigned",
	})
	assert.Error(t, err)
}

func TestMarkNotificationRead(t *testing.T) {
	stored := &notification.Notification{ID: 4, UserID: 7, Type: notification.TypeTicketAssigned, Title: "x"}
	marks := 0
	repo := &mockNotificationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*notification.Notification, error) {
			return stored, nil
		},
		MarkReadFunc: func(ctx context.Context, n *notification.Notification) error {
			marks++
			return nil
		},
	}
	uc := NewMarkNotificationReadUseCase(repo, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), MarkNotificationReadCommand{NotificationID: 4, UserID: 8})
	assert.True(t, apperrors.IsNotFoundError(err))

	res, err := uc.Execute(context.Background(), MarkNotificationReadCommand{NotificationID: 4, UserID: 7})
	require.NoError(t, err)
	assert.NotNil(t, res.ReadAt)

	_, err = uc.Execute(context.Background(), MarkNotificationReadCommand{NotificationID: 4, UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, 1, marks, "second read is a no-op")
}
