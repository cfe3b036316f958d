package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/identity/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
	uservo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/user/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	hasher      PasswordHasher
	tokens      TokenService
	sessionTTL  time.Duration
	logger      logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher PasswordHasher,
	tokens TokenService,
	sessionTTL time.Duration,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		tokens:      tokens,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginDTO, error) {
	invalid := errors.NewUnauthorizedError("invalid email or password")

	u, err := uc.userRepo.GetByEmail(ctx, uservo.NormalizeEmail(cmd.Email))
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, invalid
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !u.CanLogin() {
		return nil, errors.NewForbiddenError("account is disabled")
	}
	if err := uc.hasher.Compare(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("login failed", "user_id", u.ID())
		return nil, invalid
	}

	session, err := user.NewSession(u.ID(), uc.sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to save session", "user_id", u.ID(), "error", err)
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	accessToken, err := uc.tokens.Issue(session.Token, u.ID(), session.ExpiresAt)
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "user_id", u.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	u.RecordLogin()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Warnw("failed to record login time", "user_id", u.ID(), "error", err)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "session_id", session.ID)

	return &dto.LoginDTO{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   session.ExpiresAt,
		User:        dto.ToUserDTO(u),
	}, nil
}
