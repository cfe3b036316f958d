package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/authz"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization"
	orgvo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

const (
	providerOrg = uint(10)
	customerOrg = uint(20)
)

var ctx = context.Background()

type fixture struct {
	robots    *memRobotRepository
	logs      *memMaintenanceRepository
	orgs      *mockOrgRepository
	contracts *mockContractRepository
	recorder  *mockRecorder
	auth      *authz.Authorizer

	serviceAdmin    *authorization.Principal
	serviceEngineer *authorization.Principal
	endAdmin        *authorization.Principal
}

func newFixture(t *testing.T, maxRobots int) *fixture {
	t.Helper()
	customer, err := organization.NewOrganization("Acme Plant", orgvo.OrgTypeEndCustomer, "ops@acme.io")
	require.NoError(t, err)
	require.NoError(t, customer.SetID(customerOrg))
	require.NoError(t, customer.SetQuotas(orgvo.Quotas{MaxRobots: maxRobots}))

	contracts := &mockContractRepository{active: map[[2]uint]bool{{providerOrg, customerOrg}: true}}
	return &fixture{
		robots:          newMemRobotRepository(),
		logs:            &memMaintenanceRepository{},
		orgs:            &mockOrgRepository{orgs: map[uint]*organization.Organization{customerOrg: customer}},
		contracts:       contracts,
		recorder:        &mockRecorder{},
		auth:            authz.NewAuthorizer(permission.StaticChecker{}, contracts, logger.NewNopLogger()),
		serviceAdmin:    authorization.NewPrincipal(1, providerOrg, authorization.RoleServiceAdmin, "a@p.io", 1),
		serviceEngineer: authorization.NewPrincipal(2, providerOrg, authorization.RoleServiceEngineer, "e@p.io", 2),
		endAdmin:        authorization.NewPrincipal(3, customerOrg, authorization.RoleEndAdmin, "a@c.io", 3),
	}
}

func (f *fixture) create() *CreateRobotUseCase {
	return NewCreateRobotUseCase(f.robots, f.orgs, f.contracts, f.recorder, f.auth, mockTransactor{}, logger.NewNopLogger())
}

func TestCreateRobotUseCase_Execute(t *testing.T) {
	f := newFixture(t, 2)

	owned, err := f.create().Execute(ctx, CreateRobotCommand{
		ServiceProviderID: providerOrg, SN: "SN-1", Name: "Picker", Principal: f.endAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, customerOrg, owned.OrgID)
	assert.Equal(t, "active", owned.Status)
	require.Len(t, f.recorder.events, 1)
	assert.Equal(t, timeline.EventRobotCreated, f.recorder.events[0].Type)

	serviced, err := f.create().Execute(ctx, CreateRobotCommand{
		OrgID: customerOrg, SN: "SN-2", Name: "Welder", Principal: f.serviceAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, providerOrg, serviced.ServiceProviderID)

	_, err = f.create().Execute(ctx, CreateRobotCommand{
		ServiceProviderID: providerOrg, SN: "SN-3", Name: "Sorter", Principal: f.endAdmin,
	})
	assert.True(t, errors.IsConflictError(err), "quota of two reached")
}

func TestCreateRobotUseCase_Rejections(t *testing.T) {
	f := newFixture(t, 0)

	_, err := f.create().Execute(ctx, CreateRobotCommand{
		ServiceProviderID: providerOrg, SN: "SN-1", Name: "Picker", Principal: f.endAdmin,
	})
	require.NoError(t, err)

	_, err = f.create().Execute(ctx, CreateRobotCommand{
		ServiceProviderID: providerOrg, SN: "SN-1", Name: "Copy", Principal: f.endAdmin,
	})
	assert.True(t, errors.IsConflictError(err), "duplicate serial number")

	_, err = f.create().Execute(ctx, CreateRobotCommand{
		ServiceProviderID: 99, SN: "SN-9", Name: "Orphan", Principal: f.endAdmin,
	})
	assert.True(t, errors.IsForbiddenError(err), "no contract with provider 99")

	_, err = f.create().Execute(ctx, CreateRobotCommand{
		OrgID: customerOrg, SN: "SN-8", Name: "Eng", Principal: f.serviceEngineer,
	})
	assert.True(t, errors.IsForbiddenError(err), "service engineers cannot register robots")

	_, err = f.create().Execute(ctx, CreateRobotCommand{SN: "SN-7", Name: "Nobody", Principal: f.endAdmin})
	assert.True(t, errors.IsValidationError(err))
}

func TestListRobotsUseCase_Scope(t *testing.T) {
	f := newFixture(t, 0)
	uc := NewListRobotsUseCase(f.robots, f.auth, logger.NewNopLogger())

	_, err := uc.Execute(ctx, ListRobotsQuery{Principal: f.endAdmin})
	require.NoError(t, err)
	assert.Equal(t, customerOrg, *f.robots.lastFilter.OrgID)
	assert.Nil(t, f.robots.lastFilter.ServiceProviderID)

	_, err = uc.Execute(ctx, ListRobotsQuery{Principal: f.serviceEngineer, Keyword: "  pick "})
	require.NoError(t, err)
	assert.Equal(t, providerOrg, *f.robots.lastFilter.ServiceProviderID)
	assert.Equal(t, "pick", f.robots.lastFilter.Keyword)

	bad := "broken"
	_, err = uc.Execute(ctx, ListRobotsQuery{Principal: f.endAdmin, Status: &bad})
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateAndDeleteRobot(t *testing.T) {
	f := newFixture(t, 0)
	created, err := f.create().Execute(ctx, CreateRobotCommand{
		ServiceProviderID: providerOrg, SN: "SN-1", Name: "Picker", Principal: f.endAdmin,
	})
	require.NoError(t, err)

	update := NewUpdateRobotUseCase(f.robots, f.recorder, f.auth, mockTransactor{}, logger.NewNopLogger())
	location := "Line 2"
	status := "fault"
	updated, err := update.Execute(ctx, UpdateRobotCommand{RobotID: created.ID, Location: &location, Status: &status, Principal: f.serviceEngineer})
	require.NoError(t, err)
	assert.Equal(t, "Line 2", updated.Location)
	assert.Equal(t, "fault", updated.Status)
	last := f.recorder.events[len(f.recorder.events)-1]
	assert.Equal(t, timeline.EventRobotUpdated, last.Type)
	assert.Equal(t, "fault", last.Metadata["status"])

	del := NewDeleteRobotUseCase(f.robots, f.auth, logger.NewNopLogger())
	err = del.Execute(ctx, DeleteRobotCommand{RobotID: created.ID, Principal: f.serviceEngineer})
	assert.True(t, errors.IsForbiddenError(err))

	require.NoError(t, del.Execute(ctx, DeleteRobotCommand{RobotID: created.ID, Principal: f.endAdmin}))
	stored := f.robots.robots[created.ID]
	assert.True(t, stored.IsDeleted())
	assert.Equal(t, robot.StatusInactive, stored.Status())

	_, err = NewGetRobotUseCase(f.robots, f.auth, logger.NewNopLogger()).Execute(ctx, GetRobotQuery{RobotID: created.ID, Principal: f.endAdmin})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAddMaintenanceLogUseCase_Execute(t *testing.T) {
	f := newFixture(t, 0)
	created, err := f.create().Execute(ctx, CreateRobotCommand{
		ServiceProviderID: providerOrg, SN: "SN-1", Name: "Picker", Principal: f.endAdmin,
	})
	require.NoError(t, err)

	uc := NewAddMaintenanceLogUseCase(f.robots, f.logs, f.recorder, f.auth, mockTransactor{}, logger.NewNopLogger())
	performed := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	log, err := uc.Execute(ctx, AddMaintenanceLogCommand{
		RobotID:     created.ID,
		ServiceType: "lubrication",
		Technician:  "Kim",
		PerformedAt: performed,
		Principal:   f.serviceEngineer,
	})
	require.NoError(t, err)

	last := f.recorder.events[len(f.recorder.events)-1]
	assert.Equal(t, timeline.EventMaintenance, last.Type)
	require.NotNil(t, last.EntityID)
	assert.Equal(t, log.ID, *last.EntityID)

	_, err = uc.Execute(ctx, AddMaintenanceLogCommand{RobotID: created.ID, Principal: f.serviceEngineer})
	assert.True(t, errors.IsValidationError(err), "service type is required")

	list := NewListMaintenanceLogsUseCase(f.robots, f.logs, f.auth, logger.NewNopLogger())
	result, err := list.Execute(ctx, ListMaintenanceLogsQuery{RobotID: created.ID, Principal: f.endAdmin})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
}
