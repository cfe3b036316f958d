package usecases

import (
	"context"
	"sync"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/authz"
	notificationuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/notification/usecases"
	timelineuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/timeline/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
)

// memTicketRepository keeps tickets and their children in memory.
type memTicketRepository struct {
	mu      sync.Mutex
	tickets map[uint]*ticket.Ticket
	nextID  uint
	deleted []uint

	ListFunc func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
}

func newMemTicketRepository() *memTicketRepository {
	return &memTicketRepository{tickets: map[uint]*ticket.Ticket{}, nextID: 1}
}

func (m *memTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := t.SetID(m.nextID); err != nil {
		return err
	}
	m.tickets[m.nextID] = t
	m.nextID++
	return nil
}

func (m *memTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickets[t.ID()] = t
	return nil
}

func (m *memTicketRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tickets, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *memTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tickets[id]
	if !ok {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return t, nil
}

func (m *memTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *memTicketRepository) MaxNumber(ctx context.Context) (string, error) { return "", nil }

type stageKey struct {
	ticketID  uint
	stageType vo.StageType
}

type memStageRepository struct {
	stages map[stageKey]*ticket.Stage
	nextID uint
}

func newMemStageRepository() *memStageRepository {
	return &memStageRepository{stages: map[stageKey]*ticket.Stage{}, nextID: 1}
}

func (m *memStageRepository) Get(ctx context.Context, ticketID uint, stageType vo.StageType) (*ticket.Stage, error) {
	s, ok := m.stages[stageKey{ticketID, stageType}]
	if !ok {
		return nil, errors.NewNotFoundError("stage not found")
	}
	return s, nil
}

func (m *memStageRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Stage, error) {
	var out []*ticket.Stage
	for _, st := range vo.StageTypes() {
		if s, ok := m.stages[stageKey{ticketID, st}]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStageRepository) Upsert(ctx context.Context, s *ticket.Stage) error {
	if s.ID() == 0 {
		if err := s.SetID(m.nextID); err != nil {
			return err
		}
		m.nextID++
	}
	m.stages[stageKey{s.TicketID(), s.StageType()}] = s
	return nil
}

type memIntervalRepository struct {
	intervals map[stageKey]*ticket.TimelineInterval
	upserts   int
}

func newMemIntervalRepository() *memIntervalRepository {
	return &memIntervalRepository{intervals: map[stageKey]*ticket.TimelineInterval{}}
}

func (m *memIntervalRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.TimelineInterval, error) {
	var out []*ticket.TimelineInterval
	for k, i := range m.intervals {
		if k.ticketID == ticketID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (m *memIntervalRepository) Upsert(ctx context.Context, i *ticket.TimelineInterval) error {
	m.upserts++
	copied := *i
	m.intervals[stageKey{i.TicketID, i.StageType}] = &copied
	return nil
}

type memCommentRepository struct {
	comments []*ticket.Comment
}

func (m *memCommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	if err := c.SetID(uint(len(m.comments) + 1)); err != nil {
		return err
	}
	m.comments = append(m.comments, c)
	return nil
}

func (m *memCommentRepository) GetByID(ctx context.Context, id uint) (*ticket.Comment, error) {
	for _, c := range m.comments {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, errors.NewNotFoundError("comment not found")
}

func (m *memCommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var out []*ticket.Comment
	for _, c := range m.comments {
		if c.TicketID() == ticketID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCommentRepository) Delete(ctx context.Context, id uint) error { return nil }

type memRatingRepository struct {
	ratings map[uint]*ticket.Rating
}

func newMemRatingRepository() *memRatingRepository {
	return &memRatingRepository{ratings: map[uint]*ticket.Rating{}}
}

func (m *memRatingRepository) Create(ctx context.Context, r *ticket.Rating) error {
	if _, ok := m.ratings[r.TicketID()]; ok {
		return errors.NewConflictError("ticket already rated")
	}
	if err := r.SetID(uint(len(m.ratings) + 1)); err != nil {
		return err
	}
	m.ratings[r.TicketID()] = r
	return nil
}

func (m *memRatingRepository) GetByTicket(ctx context.Context, ticketID uint) (*ticket.Rating, error) {
	r, ok := m.ratings[ticketID]
	if !ok {
		return nil, errors.NewNotFoundError("rating not found")
	}
	return r, nil
}

type memRobotRepository struct {
	robots  map[uint]*robot.Robot
	updates int
}

func (m *memRobotRepository) Create(ctx context.Context, r *robot.Robot) error { return nil }
func (m *memRobotRepository) Update(ctx context.Context, r *robot.Robot) error {
	m.updates++
	m.robots[r.ID()] = r
	return nil
}

func (m *memRobotRepository) GetByID(ctx context.Context, id uint) (*robot.Robot, error) {
	r, ok := m.robots[id]
	if !ok {
		return nil, errors.NewNotFoundError("robot not found")
	}
	return r, nil
}

func (m *memRobotRepository) ExistsBySN(ctx context.Context, sn string) (bool, error)   { return false, nil }
func (m *memRobotRepository) CountByOrg(ctx context.Context, orgID uint) (int64, error) { return 0, nil }
func (m *memRobotRepository) List(ctx context.Context, filter robot.ListFilter) ([]*robot.Robot, int64, error) {
	return nil, 0, nil
}

type mockUserRepository struct {
	users map[uint]*user.User
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, errors.NewNotFoundError("user not found")
	}
	return u, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepository) ListByOrgAndRoles(ctx context.Context, orgID uint, roles []authorization.Role) ([]*user.User, error) {
	var out []*user.User
	for _, u := range m.users {
		if u.OrgID() != orgID {
			continue
		}
		for _, r := range roles {
			if u.Role() == r {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (m *mockUserRepository) CountByOrgAndRoles(ctx context.Context, orgID uint, roles []authorization.Role) (int64, error) {
	users, _ := m.ListByOrgAndRoles(ctx, orgID, roles)
	return int64(len(users)), nil
}

type mockRecorder struct {
	events []timelineuc.RecordEventCommand
	err    error
}

func (m *mockRecorder) Record(ctx context.Context, cmd timelineuc.RecordEventCommand) (uint, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.events = append(m.events, cmd)
	return uint(len(m.events)), nil
}

func (m *mockRecorder) types() []string {
	out := make([]string, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e.Type.String())
	}
	return out
}

type mockNotifier struct {
	sent []notificationuc.NotifyCommand
}

func (m *mockNotifier) Notify(ctx context.Context, cmd notificationuc.NotifyCommand) error {
	m.sent = append(m.sent, cmd)
	return nil
}

type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockNumberGenerator struct {
	seq int
}

func (m *mockNumberGenerator) Generate(ctx context.Context) (string, error) {
	m.seq++
	return ticket.FormatNumber(m.seq), nil
}

// staticLinkSource backs a real Authorizer with a fixed set of contract partners.
type staticLinkSource map[uint][]uint

func (s staticLinkSource) ActivePartnerIDs(ctx context.Context, orgID uint) ([]uint, error) {
	return s[orgID], nil
}

func newTestAuthorizer(links staticLinkSource) *authz.Authorizer {
	return authz.NewAuthorizer(permission.StaticChecker{}, links, nopLogger())
}
