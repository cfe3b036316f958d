package dto

import (
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
)

type UserDTO struct {
	ID          uint       `json:"id"`
	OrgID       uint       `json:"org_id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type LoginDTO struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        *UserDTO  `json:"user"`
}

func ToUserDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:          u.ID(),
		OrgID:       u.OrgID(),
		Email:       u.Email().String(),
		Name:        u.Name(),
		Role:        u.Role().String(),
		Status:      u.Status().String(),
		LastLoginAt: u.LastLoginAt(),
		CreatedAt:   u.CreatedAt(),
	}
}
