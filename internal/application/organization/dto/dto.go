package dto

import (
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization"
)

type QuotasDTO struct {
	MaxRobots    int `json:"max_robots"`
	MaxCustomers int `json:"max_customers"`
	MaxEngineers int `json:"max_engineers"`
}

type OrganizationDTO struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Status           string    `json:"status"`
	Quotas           QuotasDTO `json:"quotas"`
	SubscriptionPlan string    `json:"subscription_plan"`
	ContactEmail     string    `json:"contact_email"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ContractDTO struct {
	ID                uint       `json:"id"`
	ServiceProviderID uint       `json:"service_provider_id"`
	EndCustomerID     *uint      `json:"end_customer_id"`
	InviteEmail       string     `json:"invite_email"`
	Status            string     `json:"status"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func ToOrganizationDTO(o *organization.Organization) *OrganizationDTO {
	q := o.Quotas()
	return &OrganizationDTO{
		ID:               o.ID(),
		Name:             o.Name(),
		Type:             o.Type().String(),
		Status:           o.Status().String(),
		Quotas:           QuotasDTO{MaxRobots: q.MaxRobots, MaxCustomers: q.MaxCustomers, MaxEngineers: q.MaxEngineers},
		SubscriptionPlan: o.SubscriptionPlan(),
		ContactEmail:     o.ContactEmail(),
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
	}
}

func ToContractDTO(c *organization.ServiceContract) *ContractDTO {
	return &ContractDTO{
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
