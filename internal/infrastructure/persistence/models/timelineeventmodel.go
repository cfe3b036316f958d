package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/constants"
)

type TimelineEventModel struct {
	ID          uint   `gorm:"primaryKey"`
	RobotID     uint   `gorm:"not null;index:idx_event_robot_time"`
	TicketID    *uint  `gorm:"index"`
	EntityID    *uint
	EventType   string `gorm:"size:40;not null;index"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Metadata    datatypes.JSON
	CreatedBy   uint      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null;index:idx_event_robot_time"`
}

func (TimelineEventModel) TableName() string {
	return constants.TableTimelineEvents
}
