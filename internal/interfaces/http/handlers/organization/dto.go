package organization

import (
	orgvo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization/valueobjects"
)

type QuotasRequest struct {
	MaxRobots    int `json:"max_robots" binding:"gte=0"`
	MaxCustomers int `json:"max_customers" binding:"gte=0"`
	MaxEngineers int `json:"max_engineers" binding:"gte=0"`
}

type UpdateOrganizationRequest struct {
	Name         *string        `json:"name" binding:"omitempty,min=1,max=200"`
	ContactEmail *string        `json:"contact_email" binding:"omitempty,email"`
	Quotas       *QuotasRequest `json:"quotas"`
}

func (r *UpdateOrganizationRequest) quotas() *orgvo.Quotas {
	if r.Quotas == nil {
		return nil
	}
	return &orgvo.Quotas{
		MaxRobots:    r.Quotas.MaxRobots,
		MaxCustomers: r.Quotas.MaxCustomers,
		MaxEngineers: r.Quotas.MaxEngineers,
	}
}

// InviteCustomerRequest takes dates as YYYY-MM-DD or RFC3339.
type InviteCustomerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
