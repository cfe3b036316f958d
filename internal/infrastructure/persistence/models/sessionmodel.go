package models

import (
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/constants"
)

type SessionModel struct {
	ID        uint      `gorm:"primarykey"`
	Token     string    `gorm:"size:64;not null;uniqueIndex"`
	UserID    uint      `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return constants.TableSessions
}
