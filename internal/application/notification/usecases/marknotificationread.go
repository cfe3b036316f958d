package usecases

import (
	"context"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/notification/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/notification"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type MarkNotificationReadCommand struct {
	NotificationID uint
	UserID         uint
}

type MarkNotificationReadUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewMarkNotificationReadUseCase(repo notification.Repository, logger logger.Interface) *MarkNotificationReadUseCase {
	return &MarkNotificationReadUseCase{repo: repo, logger: logger}
}

func (uc *MarkNotificationReadUseCase) Execute(ctx context.Context, cmd MarkNotificationReadCommand) (*dto.NotificationDTO, error) {
	n, err := uc.repo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		return nil, err
	}
	// Another user's notification is reported as missing.
	if n.UserID != cmd.UserID {
		return nil, errors.NewNotFoundError("notification not found")
	}

	if !n.IsRead() {
		n.MarkRead()
		if err := uc.repo.MarkRead(ctx, n); err != nil {
			uc.logger.Errorw("failed to mark notification read", "notification_id", n.ID, "error", err)
			return nil, err
		}
	}

	result := dto.ToNotificationDTO(n)
	return &result, nil
}
