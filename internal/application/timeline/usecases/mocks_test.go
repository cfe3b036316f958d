package usecases

import (
	"context"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/query"
)

type mockEventRepository struct {
	events     map[uint]*timeline.Event
	nextID     uint
	deleted    []uint
	listErr    error
	lastFilter timeline.Filter
}

func newMockEventRepository() *mockEventRepository {
	return &mockEventRepository{events: map[uint]*timeline.Event{}, nextID: 1}
}

func (m *mockEventRepository) Append(ctx context.Context, event *timeline.Event) error {
	if err := event.SetID(m.nextID); err != nil {
		return err
	}
	m.events[m.nextID] = event
	m.nextID++
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id uint) (*timeline.Event, error) {
	e, ok := m.events[id]
	if !ok {
		return nil, errors.NewNotFoundError("timeline event not found")
	}
	return e, nil
}

func (m *mockEventRepository) List(ctx context.Context, filter timeline.Filter) ([]*timeline.Event, int64, error) {
	m.lastFilter = filter
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	out := make([]*timeline.Event, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (m *mockEventRepository) Delete(ctx context.Context, id uint) error {
	if _, ok := m.events[id]; !ok {
		return errors.NewNotFoundError("timeline event not found")
	}
	delete(m.events, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockTicketRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
	DeleteFunc  func(ctx context.Context, id uint) error
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

func (m *mockTicketRepository) MaxNumber(ctx context.Context) (string, error) { return "", nil }

type mockCommentRepository struct {
	DeleteFunc func(ctx context.Context, id uint) error
}

func (m *mockCommentRepository) Create(ctx context.Context, c *ticket.Comment) error { return nil }
func (m *mockCommentRepository) GetByID(ctx context.Context, id uint) (*ticket.Comment, error) {
	return nil, errors.NewNotFoundError("comment not found")
}

func (m *mockCommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	return nil, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockRobotRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*robot.Robot, error)
}

func (m *mockRobotRepository) Create(ctx context.Context, r *robot.Robot) error       { return nil }
func (m *mockRobotRepository) Update(ctx context.Context, r *robot.Robot) error       { return nil }
func (m *mockRobotRepository) ExistsBySN(ctx context.Context, sn string) (bool, error) { return false, nil }
func (m *mockRobotRepository) CountByOrg(ctx context.Context, orgID uint) (int64, error) {
	return 0, nil
}

func (m *mockRobotRepository) GetByID(ctx context.Context, id uint) (*robot.Robot, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("robot not found")
}

func (m *mockRobotRepository) List(ctx context.Context, filter robot.ListFilter) ([]*robot.Robot, int64, error) {
	return nil, 0, nil
}

type mockMaintenanceRepository struct {
	DeleteFunc func(ctx context.Context, id uint) error
}

func (m *mockMaintenanceRepository) Create(ctx context.Context, log *robot.MaintenanceLog) error {
	return nil
}

func (m *mockMaintenanceRepository) GetByID(ctx context.Context, id uint) (*robot.MaintenanceLog, error) {
	return nil, errors.NewNotFoundError("maintenance log not found")
}

func (m *mockMaintenanceRepository) ListByRobot(ctx context.Context, robotID uint, page query.PageFilter) ([]*robot.MaintenanceLog, int64, error) {
	return nil, 0, nil
}

func (m *mockMaintenanceRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// mockTransactor runs fn directly and reports whether it was used.
type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockAuthorizer struct {
	err error
}

func (m *mockAuthorizer) AuthorizeTicket(ctx context.Context, p *authorization.Principal, t *ticket.Ticket, resource permission.Resource, action permission.Action) error {
	return m.err
}

func (m *mockAuthorizer) AuthorizeRobot(ctx context.Context, p *authorization.Principal, r *robot.Robot, resource permission.Resource, action permission.Action) error {
	return m.err
}
