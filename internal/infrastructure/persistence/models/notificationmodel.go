package models

import (
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/constants"
)

type NotificationModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index:idx_user_read"`
	OrgID     uint   `gorm:"not null"`
	Type      string `gorm:"size:50;not null"`
	Title     string `gorm:"size:255;not null"`
	Content   string `gorm:"type:text"`
	TicketID  *uint
	ReadAt    *time.Time `gorm:"index:idx_user_read"`
	CreatedAt time.Time  `gorm:"index"`
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
