package mappers

import (
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/models"
)

// RobotMapper converts robots and their maintenance logs.
type RobotMapper interface {
	ToModel(r *robot.Robot) *models.RobotModel
	ToDomain(model *models.RobotModel) (*robot.Robot, error)
	ToDomainList(list []*models.RobotModel) ([]*robot.Robot, error)
	MaintenanceToModel(l *robot.MaintenanceLog) *models.MaintenanceLogModel
	MaintenanceToDomain(model *models.MaintenanceLogModel) *robot.MaintenanceLog
}

type RobotMapperImpl struct{}

func NewRobotMapper() RobotMapper {
	return &RobotMapperImpl{}
}

func (m *RobotMapperImpl) ToModel(r *robot.Robot) *models.RobotModel {
	return &models.RobotModel{
		ID:                r.ID(),
		OrgID:             r.OrgID(),
		ServiceProviderID: r.ServiceProviderID(),
		SN:                r.SN(),
		Name:              r.Name(),
		Model:             r.Model(),
		Location:          r.Location(),
		Status:            r.Status().String(),
		IsDeleted:         r.IsDeleted(),
		CreatedBy:         r.CreatedBy(),
		CreatedAt:         r.CreatedAt(),
		UpdatedAt:         r.UpdatedAt(),
	}
}

func (m *RobotMapperImpl) ToDomain(model *models.RobotModel) (*robot.Robot, error) {
	if model == nil {
		return nil, nil
	}
	r, err := robot.ReconstructRobot(
		model.ID,
		model.OrgID,
		model.ServiceProviderID,
		model.SN,
		model.Name,
		model.Model,
		model.Location,
		robot.Status(model.Status),
		model.IsDeleted,
		model.CreatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct robot: %w", err)
	}
	return r, nil
}

func (m *RobotMapperImpl) ToDomainList(list []*models.RobotModel) ([]*robot.Robot, error) {
	robots := make([]*robot.Robot, 0, len(list))
	for _, model := range list {
		r, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		robots = append(robots, r)
	}
	return robots, nil
}

func (m *RobotMapperImpl) MaintenanceToModel(l *robot.MaintenanceLog) *models.MaintenanceLogModel {
	return &models.MaintenanceLogModel{
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

func (m *RobotMapperImpl) MaintenanceToDomain(model *models.MaintenanceLogModel) *robot.MaintenanceLog {
	return &robot.MaintenanceLog{
		ID:            model.ID,
		RobotID:       model.RobotID,
		TicketID:      model.TicketID,
		ServiceType:   model.ServiceType,
		Description:   model.Description,
		Technician:    model.Technician,
		PerformedAt:   model.PerformedAt,
		NextServiceAt: model.NextServiceAt,
		CreatedBy:     model.CreatedBy,
		CreatedAt:     model.CreatedAt,
	}
}
