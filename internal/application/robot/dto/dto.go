package dto

import (
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
)

type RobotDTO struct {
	ID                uint      `json:"id"`
	OrgID             uint      `json:"org_id"`
	ServiceProviderID uint      `json:"service_provider_id"`
	SN                string    `json:"sn"`
	Name              string    `json:"name"`
	Model             string    `json:"model"`
	Location          string    `json:"location"`
	Status            string    `json:"status"`
	CreatedBy         uint      `json:"created_by"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type MaintenanceLogDTO struct {
	ID            uint       `json:"id"`
	RobotID       uint       `json:"robot_id"`
	TicketID      *uint      `json:"ticket_id,omitempty"`
	ServiceType   string     `json:"service_type"`
	Description   string     `json:"description"`
	Technician    string     `json:"technician"`
	PerformedAt   time.Time  `json:"performed_at"`
	NextServiceAt *time.Time `json:"next_service_at,omitempty"`
	CreatedBy     uint       `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToRobotDTO(r *robot.Robot) RobotDTO {
	return RobotDTO{
		ID:                r.ID(),
		OrgID:             r.OrgID(),
		ServiceProviderID: r.ServiceProviderID(),
		SN:                r.SN(),
		Name:              r.Name(),
		Model:             r.Model(),
		Location:          r.Location(),
		Status:            r.Status().String(),
		CreatedBy:         r.CreatedBy(),
		CreatedAt:         r.CreatedAt(),
		UpdatedAt:         r.UpdatedAt(),
	}
}

func ToMaintenanceLogDTO(l *robot.MaintenanceLog) MaintenanceLogDTO {
	return MaintenanceLogDTO{
		ID:            l.ID,
		RobotID:       l.RobotID,
		TicketID:      l.TicketID,
		ServiceType:   l.ServiceType,
		Description:   l.Description,
		Technician:    l.Technician,
		PerformedAt:   l.PerformedAt,
		NextServiceAt: l.NextServiceAt,
		CreatedBy:     l.CreatedBy,
		CreatedAt:     l.CreatedAt,
	}
}
