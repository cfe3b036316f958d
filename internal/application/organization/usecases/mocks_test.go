package usecases

import (
	"context"
	"time"

	notificationuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/notification/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization"
	orgvo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
)

type memOrgRepository struct {
	orgs map[uint]*organization.Organization
}

func (m *memOrgRepository) Create(ctx context.Context, org *organization.Organization) error {
	if err := org.SetID(uint(len(m.orgs) + 100)); err != nil {
		return err
	}
	m.orgs[org.ID()] = org
	return nil
}

func (m *memOrgRepository) Update(ctx context.Context, org *organization.Organization) error {
	m.orgs[org.ID()] = org
	return nil
}

func (m *memOrgRepository) GetByID(ctx context.Context, id uint) (*organization.Organization, error) {
	o, ok := m.orgs[id]
	if !ok {
		return nil, errors.NewNotFoundError("organization not found")
	}
	return o, nil
}

func (m *memOrgRepository) GetByContactEmail(ctx context.Context, email string) (*organization.Organization, error) {
	for _, o := range m.orgs {
		if o.ContactEmail() == email {
			return o, nil
		}
	}
	return nil, errors.NewNotFoundError("organization not found")
}

type memContractRepository struct {
	contracts map[uint]*organization.ServiceContract
	nextID    uint
	updates   int
}

func newMemContractRepository() *memContractRepository {
	return &memContractRepository{contracts: map[uint]*organization.ServiceContract{}, nextID: 1}
}

func (m *memContractRepository) Create(ctx context.Context, c *organization.ServiceContract) error {
	if err := c.SetID(m.nextID); err != nil {
		return err
	}
	m.contracts[m.nextID] = c
	m.nextID++
	return nil
}

func (m *memContractRepository) Update(ctx context.Context, c *organization.ServiceContract) error {
	m.updates++
	m.contracts[c.ID()] = c
	return nil
}

func (m *memContractRepository) GetByID(ctx context.Context, id uint) (*organization.ServiceContract, error) {
	c, ok := m.contracts[id]
	if !ok {
		return nil, errors.NewNotFoundError("contract not found")
	}
	return c, nil
}

func (m *memContractRepository) ListByOrg(ctx context.Context, orgID uint, status *orgvo.ContractStatus) ([]*organization.ServiceContract, error) {
	var out []*organization.ServiceContract
	for _, c := range m.contracts {
		if c.Involves(orgID) && (status == nil || c.Status() == *status) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memContractRepository) ActivePartnerIDs(ctx context.Context, orgID uint) ([]uint, error) {
	return nil, nil
}

func (m *memContractRepository) ExistsActive(ctx context.Context, providerID, customerID uint) (bool, error) {
	for _, c := range m.contracts {
		if c.IsActive() && c.ServiceProviderID() == providerID && c.EndCustomerID() != nil && *c.EndCustomerID() == customerID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memContractRepository) CountOpenByProvider(ctx context.Context, providerID uint) (int64, error) {
	var n int64
	for _, c := range m.contracts {
		if c.ServiceProviderID() == providerID && c.Status().IsOpen() {
			n++
		}
	}
	return n, nil
}

func (m *memContractRepository) ListPendingByInviteEmail(ctx context.Context, email string) ([]*organization.ServiceContract, error) {
	return nil, nil
}

func (m *memContractRepository) ListActiveEndingBefore(ctx context.Context, cutoff time.Time) ([]*organization.ServiceContract, error) {
	var out []*organization.ServiceContract
	for _, c := range m.contracts {
		if c.IsActive() && c.EndDate() != nil && c.EndDate().Before(cutoff) {
			out = append(out, c)
		}
	}
	return out, nil
}

type mockUserRepository struct {
	user.Repository
	admins []*user.User
}

func (m *mockUserRepository) ListByOrgAndRoles(ctx context.Context, orgID uint, roles []authorization.Role) ([]*user.User, error) {
	var out []*user.User
	for _, u := range m.admins {
		if u.OrgID() == orgID {
			out = append(out, u)
		}
	}
	return out, nil
}

type sentMail struct {
	to, subject string
}

type mockMailer struct {
	sent []sentMail
}

func (m *mockMailer) Send(to, subject, htmlBody, plainBody string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject})
	return nil
}

type mockNotifier struct {
	commands []notificationuc.NotifyCommand
}

func (m *mockNotifier) Notify(ctx context.Context, cmd notificationuc.NotifyCommand) error {
	m.commands = append(m.commands, cmd)
	return nil
}
