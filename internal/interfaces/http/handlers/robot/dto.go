package robot

import (
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/robot/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/utils"
)

// CreateRobotRequest: org_id is only honoured for service admins registering a
// robot for a contracted customer; service_provider_id is required on the end side.
type CreateRobotRequest struct {
	OrgID             uint   `json:"org_id"`
	ServiceProviderID uint   `json:"service_provider_id"`
	SN                string `json:"sn" binding:"required,max=100"`
	Name              string `json:"name" binding:"required,max=200"`
	Model             string `json:"model" binding:"max=100"`
	Location          string `json:"location" binding:"max=255"`
}

func (r *CreateRobotRequest) ToCommand(p *authorization.Principal) usecases.CreateRobotCommand {
	return usecases.CreateRobotCommand{
		OrgID:             r.OrgID,
		ServiceProviderID: r.ServiceProviderID,
		SN:                r.SN,
		Name:              r.Name,
		Model:             r.Model,
		Location:          r.Location,
		Principal:         p,
	}
}

type UpdateRobotRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=200"`
	Model    *string `json:"model" binding:"omitempty,max=100"`
	Location *string `json:"location" binding:"omitempty,max=255"`
	Status   *string `json:"status" binding:"omitempty,oneof=active maintenance fault inactive"`
}

func (r *UpdateRobotRequest) ToCommand(robotID uint, p *authorization.Principal) usecases.UpdateRobotCommand {
	return usecases.UpdateRobotCommand{
		RobotID:   robotID,
		Name:      r.Name,
		Model:     r.Model,
		Location:  r.Location,
		Status:    r.Status,
		Principal: p,
	}
}

// AddMaintenanceLogRequest takes dates as YYYY-MM-DD or RFC3339. performed_at
// defaults to now.
type AddMaintenanceLogRequest struct {
	TicketID      *uint  `json:"ticket_id"`
	ServiceType   string `json:"service_type" binding:"required,max=50"`
	Description   string `json:"description" binding:"required"`
	Technician    string `json:"technician" binding:"max=100"`
	PerformedAt   string `json:"performed_at"`
	NextServiceAt string `json:"next_service_at"`
}

func (r *AddMaintenanceLogRequest) ToCommand(robotID uint, p *authorization.Principal, now time.Time) (usecases.AddMaintenanceLogCommand, error) {
	performed, err := utils.ParseOptionalDate("performed_at", r.PerformedAt)
	if err != nil {
		return usecases.AddMaintenanceLogCommand{}, err
	}
	next, err := utils.ParseOptionalDate("next_service_at", r.NextServiceAt)
	if err != nil {
		return usecases.AddMaintenanceLogCommand{}, err
	}
	if performed == nil {
		performed = &now
	}
	return usecases.AddMaintenanceLogCommand{
		RobotID:       robotID,
		TicketID:      r.TicketID,
		ServiceType:   r.ServiceType,
		Description:   r.Description,
		Technician:    r.Technician,
		PerformedAt:   *performed,
		NextServiceAt: next,
		Principal:     p,
	}, nil
}
