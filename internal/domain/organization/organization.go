package organization

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization/valueobjects"
	uservo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/user/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/biztime"
)

// Organization is a tenant, either a service provider or an end customer.
type Organization struct {
	id               uint
	name             string
	orgType          vo.OrgType
	status           vo.OrgStatus
	quotas           vo.Quotas
	subscriptionPlan string
	contactEmail     string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewOrganization(name string, orgType vo.OrgType, contactEmail string) (*Organization, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !orgType.IsValid() {
		return nil, fmt.Errorf("invalid organization type: %s", orgType)
	}

	now := biztime.NowUTC()
	return &Organization{
		name:             name,
		orgType:          orgType,
		status:           vo.OrgStatusActive,
		subscriptionPlan: "basic",
		contactEmail:     uservo.NormalizeEmail(contactEmail),
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructOrganization(
	id uint,
	name string,
	orgType vo.OrgType,
	status vo.OrgStatus,
	quotas vo.Quotas,
	subscriptionPlan string,
	contactEmail string,
	createdAt, updatedAt time.Time,
) (*Organization, error) {
	if id == 0 {
		return nil, fmt.Errorf("organization ID cannot be zero")
	}
	if !orgType.IsValid() {
		return nil, fmt.Errorf("invalid organization type: %s", orgType)
	}

	return &Organization{
		id:               id,
		name:             name,
		orgType:          orgType,
		status:           status,
		quotas:           quotas,
		subscriptionPlan: subscriptionPlan,
		contactEmail:     contactEmail,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("organization name is required")
	}
	if len(name) > 200 {
		return fmt.Errorf("organization name cannot exceed 200 characters")
	}
	return nil
}

func (o *Organization) ID() uint                 { return o.id }
func (o *Organization) Name() string             { return o.name }
func (o *Organization) Type() vo.OrgType         { return o.orgType }
func (o *Organization) Status() vo.OrgStatus     { return o.status }
func (o *Organization) Quotas() vo.Quotas        { return o.quotas }
func (o *Organization) SubscriptionPlan() string { return o.subscriptionPlan }
func (o *Organization) ContactEmail() string     { return o.contactEmail }
func (o *Organization) CreatedAt() time.Time     { return o.createdAt }
func (o *Organization) UpdatedAt() time.Time     { return o.updatedAt }

func (o *Organization) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("organization ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("organization ID cannot be zero")
	}
	o.id = id
	return nil
}

func (o *Organization) IsActive() bool {
	return o.status == vo.OrgStatusActive
}

func (o *Organization) Rename(name string) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}
	o.name = name
	o.touch()
	return nil
}

func (o *Organization) ChangeContactEmail(email string) {
	o.contactEmail = uservo.NormalizeEmail(email)
	o.touch()
}

func (o *Organization) SetQuotas(q vo.Quotas) error {
	if err := q.Validate(); err != nil {
		return err
	}
	o.quotas = q
	o.touch()
	return nil
}

func (o *Organization) touch() {
	o.updatedAt = biztime.NowUTC()
}
