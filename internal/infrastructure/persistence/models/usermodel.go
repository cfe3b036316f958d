package models

import (
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/constants"
)

// UserModel is the persistence shape of a user. Email is stored normalized.
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	OrgID        uint   `gorm:"not null;index:idx_user_org_role"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	Name         string `gorm:"not null;size:100"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:30;not null;index:idx_user_org_role"`
	Status       string `gorm:"size:20;not null;default:active"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
