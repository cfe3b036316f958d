package robot

import (
	"fmt"
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/biztime"
)

// MaintenanceLog records service performed on a robot, optionally under a ticket.
type MaintenanceLog struct {
	ID            uint
	RobotID       uint
	TicketID      *uint
	ServiceType   string
	Description   string
	Technician    string
	PerformedAt   time.Time
	NextServiceAt *time.Time
	CreatedBy     uint
	CreatedAt     time.Time
}

func NewMaintenanceLog(
	robotID uint,
	ticketID *uint,
	serviceType, description, technician string,
	performedAt time.Time,
	nextServiceAt *time.Time,
	createdBy uint,
) (*MaintenanceLog, error) {
	if robotID == 0 {
		return nil, fmt.Errorf("robot ID is required")
	}
	if serviceType == "" {
		return nil, fmt.Errorf("service type is required")
	}
	if performedAt.IsZero() {
		performedAt = biztime.NowUTC()
	}
	if nextServiceAt != nil && nextServiceAt.Before(performedAt) {
		return nil, fmt.Errorf("next service date cannot be before the performed date")
	}

	return &MaintenanceLog{
		RobotID:       robotID,
		TicketID:      ticketID,
		ServiceType:   serviceType,
		Description:   description,
		Technician:    technician,
		PerformedAt:   performedAt.UTC(),
		NextServiceAt: nextServiceAt,
		CreatedBy:     createdBy,
		CreatedAt:     biztime.NowUTC(),
	}, nil
}
