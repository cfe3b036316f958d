package mappers

import (
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization"
	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/models"
)

// OrganizationMapper converts organizations and their service contracts.
type OrganizationMapper interface {
	ToModel(org *organization.Organization) *models.OrganizationModel
	ToDomain(model *models.OrganizationModel) (*organization.Organization, error)
	ContractToModel(c *organization.ServiceContract) *models.ServiceContractModel
	ContractToDomain(model *models.ServiceContractModel) (*organization.ServiceContract, error)
}

type OrganizationMapperImpl struct{}

func NewOrganizationMapper() OrganizationMapper {
	return &OrganizationMapperImpl{}
}

func (m *OrganizationMapperImpl) ToModel(org *organization.Organization) *models.OrganizationModel {
	q := org.Quotas()
	return &models.OrganizationModel{
		ID:               org.ID(),
		Name:             org.Name(),
		Type:             org.Type().String(),
		Status:           org.Status().String(),
		MaxRobots:        q.MaxRobots,
		MaxCustomers:     q.MaxCustomers,
		MaxEngineers:     q.MaxEngineers,
		SubscriptionPlan: org.SubscriptionPlan(),
		ContactEmail:     org.ContactEmail(),
		CreatedAt:        org.CreatedAt(),
		UpdatedAt:        org.UpdatedAt(),
	}
}

func (m *OrganizationMapperImpl) ToDomain(model *models.OrganizationModel) (*organization.Organization, error) {
	if model == nil {
		return nil, nil
	}
	org, err := organization.ReconstructOrganization(
		model.ID,
		model.Name,
		vo.OrgType(model.Type),
		vo.OrgStatus(model.Status),
		vo.Quotas{
			MaxRobots:    model.MaxRobots,
			MaxCustomers: model.MaxCustomers,
			MaxEngineers: model.MaxEngineers,
		},
		model.SubscriptionPlan,
		model.ContactEmail,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct organization: %w", err)
	}
	return org, nil
}

func (m *OrganizationMapperImpl) ContractToModel(c *organization.ServiceContract) *models.ServiceContractModel {
	return &models.ServiceContractModel{
		ID:                c.ID(),
		ServiceProviderID: c.ServiceProviderID(),
		EndCustomerID:     c.EndCustomerID(),
		InviteEmail:       c.InviteEmail(),
		Status:            c.Status().String(),
		StartDate:         c.StartDate(),
		EndDate:           c.EndDate(),
		CreatedAt:         c.CreatedAt(),
		UpdatedAt:         c.UpdatedAt(),
	}
}

func (m *OrganizationMapperImpl) ContractToDomain(model *models.ServiceContractModel) (*organization.ServiceContract, error) {
	if model == nil {
		return nil, nil
	}
	c, err := organization.ReconstructContract(
		model.ID,
		model.ServiceProviderID,
		model.EndCustomerID,
		model.InviteEmail,
		vo.ContractStatus(model.Status),
		model.StartDate,
		model.EndDate,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct contract: %w", err)
	}
	return c, nil
}
