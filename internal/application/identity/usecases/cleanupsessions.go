package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type CleanupSessionsUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewCleanupSessionsUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *CleanupSessionsUseCase {
	return &CleanupSessionsUseCase{sessionRepo: sessionRepo, logger: logger}
}

func (uc *CleanupSessionsUseCase) Execute(ctx context.Context, now time.Time) (int64, error) {
	n, err := uc.sessionRepo.DeleteExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	if n > 0 {
		uc.logger.Infow("expired sessions removed", "count", n)
	}
	return n, nil
}
