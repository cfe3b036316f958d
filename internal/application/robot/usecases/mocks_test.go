package usecases

import (
	"context"
	"time"

	timelineuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/timeline/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization"
	orgvo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/query"
)

type memRobotRepository struct {
	robots     map[uint]*robot.Robot
	nextID     uint
	lastFilter robot.ListFilter
}

func newMemRobotRepository() *memRobotRepository {
	return &memRobotRepository{robots: map[uint]*robot.Robot{}, nextID: 1}
}

func (m *memRobotRepository) Create(ctx context.Context, r *robot.Robot) error {
	if err := r.SetID(m.nextID); err != nil {
		return err
	}
	m.robots[m.nextID] = r
	m.nextID++
	return nil
}

func (m *memRobotRepository) Update(ctx context.Context, r *robot.Robot) error {
	m.robots[r.ID()] = r
	return nil
}

func (m *memRobotRepository) GetByID(ctx context.Context, id uint) (*robot.Robot, error) {
	r, ok := m.robots[id]
	if !ok || r.IsDeleted() {
		return nil, errors.NewNotFoundError("robot not found")
	}
	return r, nil
}

func (m *memRobotRepository) ExistsBySN(ctx context.Context, sn string) (bool, error) {
	for _, r := range m.robots {
		if r.SN() == sn {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRobotRepository) CountByOrg(ctx context.Context, orgID uint) (int64, error) {
	var n int64
	for _, r := range m.robots {
		if r.OrgID() == orgID && !r.IsDeleted() {
			n++
		}
	}
	return n, nil
}

func (m *memRobotRepository) List(ctx context.Context, filter robot.ListFilter) ([]*robot.Robot, int64, error) {
	m.lastFilter = filter
	return nil, 0, nil
}

type memMaintenanceRepository struct {
	logs []*robot.MaintenanceLog
}

func (m *memMaintenanceRepository) Create(ctx context.Context, log *robot.MaintenanceLog) error {
	log.ID = uint(len(m.logs) + 1)
	m.logs = append(m.logs, log)
	return nil
}

func (m *memMaintenanceRepository) GetByID(ctx context.Context, id uint) (*robot.MaintenanceLog, error) {
	return nil, errors.NewNotFoundError("maintenance log not found")
}

func (m *memMaintenanceRepository) ListByRobot(ctx context.Context, robotID uint, page query.PageFilter) ([]*robot.MaintenanceLog, int64, error) {
	return m.logs, int64(len(m.logs)), nil
}

func (m *memMaintenanceRepository) Delete(ctx context.Context, id uint) error { return nil }

type mockOrgRepository struct {
	orgs map[uint]*organization.Organization
}

func (m *mockOrgRepository) Create(ctx context.Context, org *organization.Organization) error {
	return nil
}

func (m *mockOrgRepository) Update(ctx context.Context, org *organization.Organization) error {
	return nil
}

func (m *mockOrgRepository) GetByID(ctx context.Context, id uint) (*organization.Organization, error) {
	o, ok := m.orgs[id]
	if !ok {
		return nil, errors.NewNotFoundError("organization not found")
	}
	return o, nil
}

func (m *mockOrgRepository) GetByContactEmail(ctx context.Context, email string) (*organization.Organization, error) {
	return nil, errors.NewNotFoundError("organization not found")
}

// mockContractRepository answers ExistsActive from a set of provider/customer pairs.
type mockContractRepository struct {
	active map[[2]uint]bool
}

func (m *mockContractRepository) Create(ctx context.Context, c *organization.ServiceContract) error {
	return nil
}

func (m *mockContractRepository) Update(ctx context.Context, c *organization.ServiceContract) error {
	return nil
}

func (m *mockContractRepository) GetByID(ctx context.Context, id uint) (*organization.ServiceContract, error) {
	return nil, errors.NewNotFoundError("contract not found")
}

func (m *mockContractRepository) ListByOrg(ctx context.Context, orgID uint, status *orgvo.ContractStatus) ([]*organization.ServiceContract, error) {
	return nil, nil
}

func (m *mockContractRepository) ActivePartnerIDs(ctx context.Context, orgID uint) ([]uint, error) {
	var ids []uint
	for pair := range m.active {
		switch orgID {
		case pair[0]:
			ids = append(ids, pair[1])
		case pair[1]:
			ids = append(ids, pair[0])
		}
	}
	return ids, nil
}

func (m *mockContractRepository) ExistsActive(ctx context.Context, providerID, customerID uint) (bool, error) {
	return m.active[[2]uint{providerID, customerID}], nil
}

func (m *mockContractRepository) CountOpenByProvider(ctx context.Context, providerID uint) (int64, error) {
	return 0, nil
}

func (m *mockContractRepository) ListPendingByInviteEmail(ctx context.Context, email string) ([]*organization.ServiceContract, error) {
	return nil, nil
}

func (m *mockContractRepository) ListActiveEndingBefore(ctx context.Context, cutoff time.Time) ([]*organization.ServiceContract, error) {
	return nil, nil
}

type mockRecorder struct {
	events []timelineuc.RecordEventCommand
}

func (m *mockRecorder) Record(ctx context.Context, cmd timelineuc.RecordEventCommand) (uint, error) {
	m.events = append(m.events, cmd)
	return uint(len(m.events)), nil
}

type mockTransactor struct{}

func (mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
