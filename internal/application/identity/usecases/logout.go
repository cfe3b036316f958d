package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	tokens      TokenService
	cache       SessionCache
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo user.SessionRepository, tokens TokenService, cache SessionCache, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{sessionRepo: sessionRepo, tokens: tokens, cache: cache, logger: logger}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, accessToken string) error {
	sessionToken, err := uc.tokens.Parse(accessToken)
	if err != nil {
		return errors.NewUnauthorizedError("invalid token")
	}

	if uc.cache != nil {
		uc.cache.Delete(ctx, sessionToken)
	}
	if err := uc.sessionRepo.DeleteByToken(ctx, sessionToken); err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to delete session", "error", err)
		return fmt.Errorf("failed to delete session: %w", err)
	}

	uc.logger.Debugw("session closed")
	return nil
}
