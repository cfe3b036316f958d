package usecases

import (
	"context"
	"sync"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/notification"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/query"
)

type mockNotificationRepository struct {
	CreateBatchFunc func(ctx context.Context, ns []*notification.Notification) error
	GetByIDFunc     func(ctx context.Context, id uint) (*notification.Notification, error)
	ListByUserFunc  func(ctx context.Context, userID uint, unreadOnly bool, page query.PageFilter) ([]*notification.Notification, int64, error)
	MarkReadFunc    func(ctx context.Context, n *notification.Notification) error
}

func (m *mockNotificationRepository) CreateBatch(ctx context.Context, ns []*notification.Notification) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, ns)
	}
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepository) ListByUser(ctx context.Context, userID uint, unreadOnly bool, page query.PageFilter) ([]*notification.Notification, int64, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, unreadOnly, page)
	}
	return nil, 0, nil
}

func (m *mockNotificationRepository) MarkRead(ctx context.Context, n *notification.Notification) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, n)
	}
	return nil
}

type sentEmail struct {
	To      string
	Subject string
}

type mockEmailSender struct {
	mu   sync.Mutex
	sent []sentEmail
	err  error
}

func (m *mockEmailSender) Send(to, subject, htmlBody, plainBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentEmail{To: to, Subject: subject})
	return m.err
}

type mockPublisher struct {
	keys []string
	err  error
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	m.keys = append(m.keys, routingKey)
	return m.err
}

func inline(_ string, fn func()) { fn() }
