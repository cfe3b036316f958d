package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/authz"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/notification"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization"
	orgvo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
	uservo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/user/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

const (
	providerOrg = uint(10)
	customerOrg = uint(20)
	otherOrg    = uint(30)
)

var ctx = context.Background()

type noLinks struct{}

func (noLinks) ActivePartnerIDs(ctx context.Context, orgID uint) ([]uint, error) { return nil, nil }

type fixture struct {
	orgs      *memOrgRepository
	contracts *memContractRepository
	users     *mockUserRepository
	mailer    *mockMailer
	notifier  *mockNotifier
	auth      *authz.Authorizer

	serviceAdmin    *authorization.Principal
	serviceEngineer *authorization.Principal
	endAdmin        *authorization.Principal
	otherAdmin      *authorization.Principal
}

func mustOrg(t *testing.T, id uint, name string, typ orgvo.OrgType, email string) *organization.Organization {
	t.Helper()
	o, err := organization.NewOrganization(name, typ, email)
	require.NoError(t, err)
	require.NoError(t, o.SetID(id))
	return o
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	provider := mustOrg(t, providerOrg, "Fixit Robotics", orgvo.OrgTypeServiceProvider, "ops@fixit.io")
	customer := mustOrg(t, customerOrg, "Acme Plant", orgvo.OrgTypeEndCustomer, "admin@acme.io")
	other := mustOrg(t, otherOrg, "Other Plant", orgvo.OrgTypeEndCustomer, "admin@other.io")

	email, err := uservo.NewEmail("admin@acme.io")
	require.NoError(t, err)
	admin, err := user.NewUser(customerOrg, email, "Acme Admin", "hash", authorization.RoleEndAdmin)
	require.NoError(t, err)
	require.NoError(t, admin.SetID(3))

	return &fixture{
		orgs: &memOrgRepository{orgs: map[uint]*organization.Organization{
			providerOrg: provider, customerOrg: customer, otherOrg: other,
		}},
		contracts:       newMemContractRepository(),
		users:           &mockUserRepository{admins: []*user.User{admin}},
		mailer:          &mockMailer{},
		notifier:        &mockNotifier{},
		auth:            authz.NewAuthorizer(permission.StaticChecker{}, noLinks{}, logger.NewNopLogger()),
		serviceAdmin:    authorization.NewPrincipal(1, providerOrg, authorization.RoleServiceAdmin, "ops@fixit.io", 1),
		serviceEngineer: authorization.NewPrincipal(2, providerOrg, authorization.RoleServiceEngineer, "eng@fixit.io", 2),
		endAdmin:        authorization.NewPrincipal(3, customerOrg, authorization.RoleEndAdmin, "admin@acme.io", 3),
		otherAdmin:      authorization.NewPrincipal(5, otherOrg, authorization.RoleEndAdmin, "admin@other.io", 5),
	}
}

func (f *fixture) invite() *InviteCustomerUseCase {
	return NewInviteCustomerUseCase(f.orgs, f.contracts, f.users, f.mailer, f.notifier, f.auth, "https://robotcare.test", logger.NewNopLogger())
}

func TestInviteCustomer_RegisteredCustomer(t *testing.T) {
	f := newFixture(t)

	c, err := f.invite().Execute(ctx, InviteCustomerCommand{Email: " Admin@Acme.io ", Principal: f.serviceAdmin})
	require.NoError(t, err)
	assert.Equal(t, "pending", c.Status)
	require.NotNil(t, c.EndCustomerID)
	assert.Equal(t, customerOrg, *c.EndCustomerID)

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "admin@acme.io", f.mailer.sent[0].to)
	require.Len(t, f.notifier.commands, 1)
	assert.Equal(t, notification.TypeContractInvited, f.notifier.commands[0].Type)
	assert.Equal(t, uint(3), f.notifier.commands[0].Recipients[0].UserID)
}

func TestInviteCustomer_UnregisteredEmail(t *testing.T) {
	f := newFixture(t)

	c, err := f.invite().Execute(ctx, InviteCustomerCommand{Email: "new@plant.io", Principal: f.serviceAdmin})
	require.NoError(t, err)
	assert.Nil(t, c.EndCustomerID)
	assert.Equal(t, "new@plant.io", c.InviteEmail)
	assert.Len(t, f.mailer.sent, 1)
	assert.Empty(t, f.notifier.commands)
}

func TestInviteCustomer_Rejections(t *testing.T) {
	f := newFixture(t)
	uc := f.invite()

	_, err := uc.Execute(ctx, InviteCustomerCommand{Email: "x@y.io", Principal: f.serviceEngineer})
	assert.True(t, errors.IsForbiddenError(err), "engineers cannot invite")

	_, err = uc.Execute(ctx, InviteCustomerCommand{Email: "not-an-email", Principal: f.serviceAdmin})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(ctx, InviteCustomerCommand{Email: "ops@fixit.io", Principal: f.serviceAdmin})
	assert.True(t, errors.IsValidationError(err), "providers cannot be invited")

	require.NoError(t, f.orgs.orgs[providerOrg].SetQuotas(orgvo.Quotas{MaxCustomers: 1}))
	_, err = uc.Execute(ctx, InviteCustomerCommand{Email: "first@plant.io", Principal: f.serviceAdmin})
	require.NoError(t, err)
	_, err = uc.Execute(ctx, InviteCustomerCommand{Email: "second@plant.io", Principal: f.serviceAdmin})
	assert.True(t, errors.IsConflictError(err), "quota counts pending contracts")
}

func TestAcceptContract(t *testing.T) {
	f := newFixture(t)
	accept := NewAcceptContractUseCase(f.orgs, f.contracts, f.auth, logger.NewNopLogger())

	bound, err := f.invite().Execute(ctx, InviteCustomerCommand{Email: "admin@acme.io", Principal: f.serviceAdmin})
	require.NoError(t, err)

	_, err = accept.Execute(ctx, AcceptContractCommand{ContractID: bound.ID, Principal: f.otherAdmin})
	assert.True(t, errors.IsForbiddenError(err))

	_, err = accept.Execute(ctx, AcceptContractCommand{ContractID: bound.ID, Principal: f.serviceAdmin})
	assert.True(t, errors.IsForbiddenError(err))

	got, err := accept.Execute(ctx, AcceptContractCommand{ContractID: bound.ID, Principal: f.endAdmin})
	require.NoError(t, err)
	assert.Equal(t, "active", got.Status)
	assert.NotNil(t, got.StartDate)

	_, err = accept.Execute(ctx, AcceptContractCommand{ContractID: bound.ID, Principal: f.endAdmin})
	assert.True(t, errors.IsValidationError(err), "already active")
}

func TestAcceptContract_UnboundByContactEmail(t *testing.T) {
	f := newFixture(t)
	accept := NewAcceptContractUseCase(f.orgs, f.contracts, f.auth, logger.NewNopLogger())

	c, err := organization.NewInvitation(providerOrg, "admin@other.io", nil, nil, nil)
	require.NoError(t, err)
	require.NoError(t, f.contracts.Create(ctx, c))

	got, err := accept.Execute(ctx, AcceptContractCommand{ContractID: c.ID(), Principal: f.otherAdmin})
	require.NoError(t, err)
	require.NotNil(t, got.EndCustomerID)
	assert.Equal(t, otherOrg, *got.EndCustomerID)
}

func TestTerminateContract(t *testing.T) {
	f := newFixture(t)
	terminate := NewTerminateContractUseCase(f.contracts, f.auth, logger.NewNopLogger())

	c, err := f.invite().Execute(ctx, InviteCustomerCommand{Email: "admin@acme.io", Principal: f.serviceAdmin})
	require.NoError(t, err)

	_, err = terminate.Execute(ctx, TerminateContractCommand{ContractID: c.ID, Principal: f.otherAdmin})
	assert.True(t, errors.IsForbiddenError(err))

	got, err := terminate.Execute(ctx, TerminateContractCommand{ContractID: c.ID, Principal: f.endAdmin})
	require.NoError(t, err)
	assert.Equal(t, "terminated", got.Status)

	_, err = terminate.Execute(ctx, TerminateContractCommand{ContractID: c.ID, Principal: f.serviceAdmin})
	assert.True(t, errors.IsValidationError(err))
}

func TestListContracts(t *testing.T) {
	f := newFixture(t)
	_, err := f.invite().Execute(ctx, InviteCustomerCommand{Email: "admin@acme.io", Principal: f.serviceAdmin})
	require.NoError(t, err)
	list := NewListContractsUseCase(f.contracts, f.auth, logger.NewNopLogger())

	got, err := list.Execute(ctx, ListContractsQuery{Principal: f.endAdmin})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = list.Execute(ctx, ListContractsQuery{Principal: f.endAdmin, Status: "active"})
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = list.Execute(ctx, ListContractsQuery{Principal: f.endAdmin, Status: "bogus"})
	assert.True(t, errors.IsValidationError(err))
}

func TestExpireContracts_Idempotent(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	start := now.AddDate(-1, 0, 0)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 1, 0)

	for _, end := range []*time.Time{&past, &future, nil} {
		c, err := organization.NewInvitation(providerOrg, "admin@acme.io", nil, &start, end)
		require.NoError(t, err)
		require.NoError(t, c.Accept(customerOrg))
		require.NoError(t, f.contracts.Create(ctx, c))
	}

	uc := NewExpireContractsUseCase(f.contracts, logger.NewNopLogger())
	n, err := uc.Execute(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, orgvo.ContractExpired, f.contracts.contracts[1].Status())

	n, err = uc.Execute(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUpdateOrganization(t *testing.T) {
	f := newFixture(t)
	uc := NewUpdateOrganizationUseCase(f.orgs, f.auth, logger.NewNopLogger())

	name := "Acme Plant East"
	got, err := uc.Execute(ctx, UpdateOrganizationCommand{
		Name:      &name,
		Quotas:    &orgvo.Quotas{MaxRobots: 5},
		Principal: f.endAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Plant East", got.Name)
	assert.Equal(t, 5, got.Quotas.MaxRobots)

	_, err = uc.Execute(ctx, UpdateOrganizationCommand{Principal: f.endAdmin})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(ctx, UpdateOrganizationCommand{Name: &name, Principal: f.serviceEngineer})
	assert.True(t, errors.IsForbiddenError(err))

	get := NewGetOrganizationUseCase(f.orgs, f.auth, logger.NewNopLogger())
	org, err := get.Execute(ctx, GetOrganizationQuery{Principal: f.endAdmin})
	require.NoError(t, err)
	assert.Equal(t, customerOrg, org.ID)
}
