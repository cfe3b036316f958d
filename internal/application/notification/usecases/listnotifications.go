package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/notification/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/notification"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/mapper"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/query"
)

type ListNotificationsQuery struct {
	UserID     uint
	UnreadOnly bool
	Page       int
	PageSize   int
}

type ListNotificationsResult struct {
	Notifications []dto.NotificationDTO
	Total         int64
}

type ListNotificationsUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewListNotificationsUseCase(repo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{repo: repo, logger: logger}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, q ListNotificationsQuery) (*ListNotificationsResult, error) {
	items, total, err := uc.repo.ListByUser(ctx, q.UserID, q.UnreadOnly, query.PageFilter{Page: q.Page, PageSize: q.PageSize})
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", q.UserID, "error", err)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return &ListNotificationsResult{
		Notifications: mapper.MapSlice(items, func(n *notification.Notification) dto.NotificationDTO {
			return dto.ToNotificationDTO(n)
		}),
		Total: total,
	}, nil
}
