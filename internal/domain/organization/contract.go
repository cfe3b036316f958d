package organization

import (
	"fmt"
	"time"

	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization/valueobjects"
	uservo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/user/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/biztime"
)

// ServiceContract links a provider to an end customer. Only an active contract
// authorizes cross-organization access. While invited, the customer may be
// known only by InviteEmail.
type ServiceContract struct {
	id                uint
	serviceProviderID uint
	endCustomerID     *uint
	inviteEmail       string
	status            vo.ContractStatus
	startDate         *time.Time
	endDate           *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

func NewInvitation(serviceProviderID uint, inviteEmail string, endCustomerID *uint, startDate, endDate *time.Time) (*ServiceContract, error) {
	if serviceProviderID == 0 {
		return nil, fmt.Errorf("service provider ID is required")
	}
	email, err := uservo.NewEmail(inviteEmail)
	if err != nil {
		return nil, err
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, fmt.Errorf("end date cannot be before start date")
	}

	now := biztime.NowUTC()
	return &ServiceContract{
		serviceProviderID: serviceProviderID,
		endCustomerID:     endCustomerID,
		inviteEmail:       email.String(),
		status:            vo.ContractPending,
		startDate:         startDate,
		endDate:           endDate,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func ReconstructContract(
	id uint,
	serviceProviderID uint,
	endCustomerID *uint,
	inviteEmail string,
	status vo.ContractStatus,
	startDate, endDate *time.Time,
	createdAt, updatedAt time.Time,
) (*ServiceContract, error) {
	if id == 0 {
		return nil, fmt.Errorf("contract ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid contract status: %s", status)
	}

	return &ServiceContract{
		id:                id,
		serviceProviderID: serviceProviderID,
		endCustomerID:     endCustomerID,
		inviteEmail:       inviteEmail,
		status:            status,
		startDate:         startDate,
		endDate:           endDate,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (c *ServiceContract) ID() uint                  { return c.id }
func (c *ServiceContract) ServiceProviderID() uint   { return c.serviceProviderID }
func (c *ServiceContract) EndCustomerID() *uint      { return c.endCustomerID }
func (c *ServiceContract) InviteEmail() string       { return c.inviteEmail }
func (c *ServiceContract) Status() vo.ContractStatus { return c.status }
func (c *ServiceContract) StartDate() *time.Time     { return c.startDate }
func (c *ServiceContract) EndDate() *time.Time       { return c.endDate }
func (c *ServiceContract) CreatedAt() time.Time      { return c.createdAt }
func (c *ServiceContract) UpdatedAt() time.Time      { return c.updatedAt }

func (c *ServiceContract) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("contract ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("contract ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *ServiceContract) IsActive() bool {
	return c.status == vo.ContractActive
}

// Involves reports whether orgID is either party.
func (c *ServiceContract) Involves(orgID uint) bool {
	return c.serviceProviderID == orgID || (c.endCustomerID != nil && *c.endCustomerID == orgID)
}

// BindCustomer attaches a registered customer to an invitation placeholder.
func (c *ServiceContract) BindCustomer(customerID uint) error {
	if customerID == 0 {
		return fmt.Errorf("customer ID cannot be zero")
	}
	if c.endCustomerID != nil && *c.endCustomerID != customerID {
		return fmt.Errorf("contract is already bound to another customer")
	}
	c.endCustomerID = &customerID
	c.touch()
	return nil
}

// Accept activates a pending contract for the bound customer.
func (c *ServiceContract) Accept(customerID uint) error {
	if c.status != vo.ContractPending {
		return fmt.Errorf("only pending contracts can be accepted, current status: %s", c.status)
	}
	if err := c.BindCustomer(customerID); err != nil {
		return err
	}
	c.status = vo.ContractActive
	if c.startDate == nil {
		now := biztime.NowUTC()
		c.startDate = &now
	}
	c.touch()
	return nil
}

func (c *ServiceContract) Terminate() error {
	if !c.status.IsOpen() {
		return fmt.Errorf("contract is already %s", c.status)
	}
	c.status = vo.ContractTerminated
	c.touch()
	return nil
}

// ExpireIfDue moves an active contract past its end date to expired and reports
// whether it changed.
func (c *ServiceContract) ExpireIfDue(now time.Time) bool {
	if c.status != vo.ContractActive || c.endDate == nil || !now.After(*c.endDate) {
		return false
	}
	c.status = vo.ContractExpired
	c.touch()
	return true
}

func (c *ServiceContract) touch() {
	c.updatedAt = biztime.NowUTC()
}
