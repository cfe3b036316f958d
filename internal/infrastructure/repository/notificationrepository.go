package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/notification"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/mappers"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/models"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
	apperrors "github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/query"
)

// NotificationRepository implements notification.Repository using GORM
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// CreateBatch inserts all notifications in a single statement.
func (r *NotificationRepository) CreateBatch(ctx context.Context, notifications []*notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	list := make([]*models.NotificationModel, len(notifications))
	for i, n := range notifications {
		list[i] = mappers.NotificationToModel(n)
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(&list).Error; err != nil {
		return fmt.Errorf("failed to create notifications: %w", err)
	}
	for i, m := range list {
		notifications[i].ID = m.ID
	}
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("notification not found", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return mappers.NotificationToDomain(&model), nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uint, unreadOnly bool, page query.PageFilter) ([]*notification.Notification, int64, error) {
	q := db.GetTxFromContext(ctx, r.db).Model(&models.NotificationModel{}).Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("read_at IS NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var list []*models.NotificationModel
	if err := q.Order("created_at DESC, id DESC").Limit(page.Limit()).Offset(page.Offset()).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	result := make([]*notification.Notification, len(list))
	for i, m := range list {
		result[i] = mappers.NotificationToDomain(m)
	}
	return result, total, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, n *notification.Notification) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.NotificationModel{}).
		Where("id = ? AND read_at IS NULL", n.ID).
		Update("read_at", n.ReadAt).Error
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
