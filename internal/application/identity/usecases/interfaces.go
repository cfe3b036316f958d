package usecases

import (
	"context"
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/identity/dto"
	orgdto "github.com/automationyuli-li/RobotCare-sub001/internal/application/organization/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
)

type Authorizer interface {
	Require(p *authorization.Principal, resource permission.Resource, action permission.Action) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenService wraps a session token in a signed access token and back.
type TokenService interface {
	Issue(sessionToken string, userID uint, expiresAt time.Time) (string, error)
	Parse(accessToken string) (sessionToken string, err error)
}

// CachedSession is what the session cache keeps per session token.
type CachedSession struct {
	SessionID uint               `json:"session_id"`
	UserID    uint               `json:"user_id"`
	OrgID     uint               `json:"org_id"`
	Role      authorization.Role `json:"role"`
	Email     string             `json:"email"`
	ExpiresAt time.Time          `json:"expires_at"`
}

// SessionCache fronts session resolution. A miss or a cache failure falls back
// to the database.
type SessionCache interface {
	Get(ctx context.Context, token string) (*CachedSession, bool)
	Set(ctx context.Context, token string, s *CachedSession)
	Delete(ctx context.Context, token string)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginDTO, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, accessToken string) error
}

type ResolveSessionExecutor interface {
	Execute(ctx context.Context, accessToken string) (*authorization.Principal, error)
}

type GetCurrentUserExecutor interface {
	Execute(ctx context.Context, p *authorization.Principal) (*dto.UserDTO, error)
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type CleanupSessionsExecutor interface {
	Execute(ctx context.Context, now time.Time) (int64, error)
}

type RegisterResult struct {
	User         *dto.UserDTO
	Organization *orgdto.OrganizationDTO
	// ReconciledContracts counts pending invitations bound to the new organization.
	ReconciledContracts int
}

var (
	_ RegisterExecutor        = (*RegisterUseCase)(nil)
	_ LoginExecutor           = (*LoginUseCase)(nil)
	_ LogoutExecutor          = (*LogoutUseCase)(nil)
	_ ResolveSessionExecutor  = (*ResolveSessionUseCase)(nil)
	_ GetCurrentUserExecutor  = (*GetCurrentUserUseCase)(nil)
	_ CreateUserExecutor      = (*CreateUserUseCase)(nil)
	_ ListUsersExecutor       = (*ListUsersUseCase)(nil)
	_ CleanupSessionsExecutor = (*CleanupSessionsUseCase)(nil)
)
