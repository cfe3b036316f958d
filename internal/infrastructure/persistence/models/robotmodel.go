package models

import (
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/constants"
)

type RobotModel struct {
	ID                uint   `gorm:"primaryKey"`
	OrgID             uint   `gorm:"not null;index"`
	ServiceProviderID uint   `gorm:"not null;index"`
	SN                string `gorm:"column:sn;size:100;not null;uniqueIndex"`
	Name              string `gorm:"size:200;not null"`
	Model             string `gorm:"size:100"`
	Location          string `gorm:"size:255"`
	Status            string `gorm:"size:20;not null;index"`
	IsDeleted         bool   `gorm:"not null;default:false;index"`
	CreatedBy         uint   `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (RobotModel) TableName() string {
	return constants.TableRobots
}

type MaintenanceLogModel struct {
	ID            uint   `gorm:"primaryKey"`
	RobotID       uint   `gorm:"not null;index"`
	TicketID      *uint  `gorm:"index"`
	ServiceType   string `gorm:"size:100;not null"`
	Description   string `gorm:"type:text"`
	Technician    string `gorm:"size:100"`
	PerformedAt   time.Time `gorm:"not null;index"`
	NextServiceAt *time.Time
	CreatedBy     uint `gorm:"not null"`
	CreatedAt     time.Time
}

func (MaintenanceLogModel) TableName() string {
	return constants.TableMaintenanceLogs
}
