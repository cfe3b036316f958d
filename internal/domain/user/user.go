package user

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/user/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/biztime"
)

// User is a member of exactly one organization.
type User struct {
	id           uint
	orgID        uint
	email        *vo.Email
	name         string
	passwordHash string
	role         authorization.Role
	status       vo.Status
	lastLoginAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(orgID uint, email *vo.Email, name string, passwordHash string, role authorization.Role) (*User, error) {
	if orgID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name cannot exceed 100 characters")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &User{
		orgID:        orgID,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		status:       vo.StatusActive,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	orgID uint,
	email *vo.Email,
	name string,
	passwordHash string,
	role authorization.Role,
	status vo.Status,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		orgID:        orgID,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		status:       status,
		lastLoginAt:  lastLoginAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                 { return u.id }
func (u *User) OrgID() uint              { return u.orgID }
func (u *User) Email() *vo.Email         { return u.email }
func (u *User) Name() string             { return u.name }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) Role() authorization.Role { return u.role }
func (u *User) Status() vo.Status        { return u.status }
func (u *User) LastLoginAt() *time.Time  { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// CanLogin reports whether the account may open a session.
func (u *User) CanLogin() bool {
	return u.status.IsActive()
}

func (u *User) RecordLogin() {
	now := biztime.NowUTC()
	u.lastLoginAt = &now
	u.updatedAt = now
}

func (u *User) Disable() {
	u.status = vo.StatusDisabled
	u.updatedAt = biztime.NowUTC()
}
