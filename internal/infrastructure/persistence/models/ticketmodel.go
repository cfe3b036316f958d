package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/constants"
)

type TicketModel struct {
	ID                uint   `gorm:"primaryKey"`
	TicketNumber      string `gorm:"uniqueIndex;size:20;not null"`
	Title             string `gorm:"size:200;not null"`
	Description       string `gorm:"type:text;not null"`
	RobotID           uint   `gorm:"not null;index"`
	CustomerID        uint   `gorm:"not null;index"`
	ServiceProviderID uint   `gorm:"not null;index"`
	Status            string `gorm:"size:20;not null;index"`
	Priority          string `gorm:"size:20;not null;index"`
	AssignedTo        *uint  `gorm:"index"`
	CreatedBy         uint   `gorm:"not null"`
	ResolvedAt        *time.Time
	ResolutionNotes   string `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"index"`
	UpdatedAt         time.Time

	// Note: No foreign key constraints or associations.
	// Child rows are removed by the repository when a ticket is deleted.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type TicketStageModel struct {
	ID           uint           `gorm:"primaryKey"`
	TicketID     uint           `gorm:"not null;uniqueIndex:uk_ticket_stage"`
	StageType    string         `gorm:"size:40;not null;uniqueIndex:uk_ticket_stage"`
	Content      string         `gorm:"type:text"`
	Attachments  datatypes.JSON
	ExpectedDate *time.Time
	Status       string `gorm:"size:20;not null"`
	CompletedAt  *time.Time
	UpdatedBy    uint `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (TicketStageModel) TableName() string {
	return constants.TableTicketStages
}

type TicketIntervalModel struct {
	ID        uint      `gorm:"primaryKey"`
	TicketID  uint      `gorm:"not null;uniqueIndex:uk_ticket_interval"`
	StageType string    `gorm:"size:40;not null;uniqueIndex:uk_ticket_interval"`
	StartDate time.Time `gorm:"not null"`
	EndDate   *time.Time
	Status    string `gorm:"size:20;not null"`
	UpdatedAt time.Time
}

func (TicketIntervalModel) TableName() string {
	return constants.TableTicketIntervals
}

type CommentModel struct {
	ID        uint      `gorm:"primaryKey"`
	TicketID  uint      `gorm:"not null;index"`
	UserID    uint      `gorm:"not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
}

func (CommentModel) TableName() string {
	return constants.TableTicketComments
}

type RatingModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;uniqueIndex"`
	Score     int    `gorm:"not null"`
	Comment   string `gorm:"type:text"`
	RatedBy   uint   `gorm:"not null"`
	OrgID     uint   `gorm:"not null;index"`
	CreatedAt time.Time
}

func (RatingModel) TableName() string {
	return constants.TableTicketRatings
}
