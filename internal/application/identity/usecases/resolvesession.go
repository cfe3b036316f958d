package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/biztime"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

// ResolveSessionUseCase turns an access token into a Principal. The session
// cache is consulted before the database; entries never outlive the session.
type ResolveSessionUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	tokens      TokenService
	cache       SessionCache
	logger      logger.Interface
}

func NewResolveSessionUseCase(userRepo user.Repository, sessionRepo user.SessionRepository, tokens TokenService, cache SessionCache, logger logger.Interface) *ResolveSessionUseCase {
	return &ResolveSessionUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		cache:       cache,
		logger:      logger,
	}
}

func (uc *ResolveSessionUseCase) Execute(ctx context.Context, accessToken string) (*authorization.Principal, error) {
	sessionToken, err := uc.tokens.Parse(accessToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid or expired token")
	}

	now := biztime.NowUTC()
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, sessionToken); ok && now.Before(cached.ExpiresAt) {
			return authorization.NewPrincipal(cached.UserID, cached.OrgID, cached.Role, cached.Email, cached.SessionID), nil
		}
	}

	session, err := uc.sessionRepo.GetByToken(ctx, sessionToken)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("session not found")
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.IsExpired() {
		return nil, errors.NewUnauthorizedError("session expired")
	}

	u, err := uc.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("user no longer exists")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !u.CanLogin() {
		return nil, errors.NewUnauthorizedError("account is disabled")
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, sessionToken, &CachedSession{
			SessionID: session.ID,
			UserID:    u.ID(),
			OrgID:     u.OrgID(),
			Role:      u.Role(),
			Email:     u.Email().String(),
			ExpiresAt: session.ExpiresAt,
		})
	}

	return authorization.NewPrincipal(u.ID(), u.OrgID(), u.Role(), u.Email().String(), session.ID), nil
}

