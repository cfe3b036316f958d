package mappers

import (
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/notification"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/models"
)

func NotificationToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:        n.ID,
		UserID:    n.UserID,
		OrgID:     n.OrgID,
		Type:      string(n.Type),
		Title:     n.Title,
		Content:   n.Content,
		TicketID:  n.TicketID,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

func NotificationToDomain(model *models.NotificationModel) *notification.Notification {
	return &notification.Notification{
		ID:        model.ID,
		UserID:    model.UserID,
		OrgID:     model.OrgID,
		Type:      notification.Type(model.Type),
		Title:     model.Title,
		Content:   model.Content,
		TicketID:  model.TicketID,
		ReadAt:    model.ReadAt,
		CreatedAt: model.CreatedAt,
	}
}
