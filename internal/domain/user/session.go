package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/biztime"
)

// Session is an opaque login handle. The access token carries its Token.
type Session struct {
	ID        uint
	Token     string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

func NewSession(userID uint, ttl time.Duration) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session TTL must be positive")
	}

	now := biztime.NowUTC()
	return &Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}, nil
}

func (s *Session) IsExpired() bool {
	return !biztime.NowUTC().Before(s.ExpiresAt)
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	DeleteByToken(ctx context.Context, token string) error
	// DeleteExpired removes sessions expired at or before now and returns the count.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
