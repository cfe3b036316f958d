package usecases

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
	uservo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/user/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

const (
	providerOrg = uint(10)
	customerOrg = uint(20)
	strangerOrg = uint(30)
	robotID     = uint(100)
)

func nopLogger() logger.Interface { return logger.NewNopLogger() }

// world is a provider, a contracted customer owning one robot, and one user per role.
type world struct {
	tickets   *memTicketRepository
	stages    *memStageRepository
	intervals *memIntervalRepository
	comments  *memCommentRepository
	ratings   *memRatingRepository
	robots    *memRobotRepository
	users     *mockUserRepository
	recorder  *mockRecorder
	notifier  *mockNotifier
	tx        *mockTransactor
	numbers   *mockNumberGenerator
	auth      Authorizer

	serviceAdmin    *authorization.Principal
	serviceEngineer *authorization.Principal
	endAdmin        *authorization.Principal
	endEngineer     *authorization.Principal
	strangerAdmin   *authorization.Principal
}

func newWorld(t *testing.T) *world {
	t.Helper()

	r, err := robot.NewRobot(customerOrg, providerOrg, "SN-001", "Picker", "P-1", "Bay 3", 3)
	require.NoError(t, err)
	require.NoError(t, r.SetID(robotID))

	w := &world{
		tickets:   newMemTicketRepository(),
		stages:    newMemStageRepository(),
		intervals: newMemIntervalRepository(),
		comments:  &memCommentRepository{},
		ratings:   newMemRatingRepository(),
		robots:    &memRobotRepository{robots: map[uint]*robot.Robot{robotID: r}},
		users:     &mockUserRepository{users: map[uint]*user.User{}},
		recorder:  &mockRecorder{},
		notifier:  &mockNotifier{},
		tx:        &mockTransactor{},
		numbers:   &mockNumberGenerator{},
		auth: newTestAuthorizer(staticLinkSource{
			providerOrg: {customerOrg},
			customerOrg: {providerOrg},
		}),
	}

	w.serviceAdmin = w.addUser(t, 1, providerOrg, "admin@provider.io", authorization.RoleServiceAdmin)
	w.serviceEngineer = w.addUser(t, 2, providerOrg, "eng@provider.io", authorization.RoleServiceEngineer)
	w.endAdmin = w.addUser(t, 3, customerOrg, "admin@customer.io", authorization.RoleEndAdmin)
	w.endEngineer = w.addUser(t, 4, customerOrg, "eng@customer.io", authorization.RoleEndEngineer)
	w.strangerAdmin = w.addUser(t, 5, strangerOrg, "admin@stranger.io", authorization.RoleEndAdmin)
	return w
}

func (w *world) addUser(t *testing.T, id, orgID uint, email string, role authorization.Role) *authorization.Principal {
	t.Helper()
	addr, err := uservo.NewEmail(email)
	require.NoError(t, err)
	u, err := user.NewUser(orgID, addr, email, "hash", role)
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	w.users.users[id] = u
	return authorization.NewPrincipal(id, orgID, role, email, id)
}

func (w *world) createTicket() *CreateTicketUseCase {
	return NewCreateTicketUseCase(w.tickets, w.robots, w.numbers, w.recorder, w.auth, w.tx, nopLogger())
}

func (w *world) upsertStage() *UpsertStageUseCase {
	return NewUpsertStageUseCase(w.tickets, w.stages, w.intervals, w.recorder, w.auth, w.tx, nopLogger())
}

func (w *world) listStages() *ListStagesUseCase {
	return NewListStagesUseCase(w.tickets, w.stages, w.intervals, w.auth, nopLogger())
}

func (w *world) completeSummary() *CompleteSummaryUseCase {
	return NewCompleteSummaryUseCase(w.tickets, w.stages, w.intervals, w.users, w.recorder, w.auth, w.notifier, w.tx, nopLogger())
}

func (w *world) confirm() *ConfirmByCustomerUseCase {
	return NewConfirmByCustomerUseCase(w.tickets, w.stages, w.intervals, w.ratings, w.robots, w.users, w.recorder, w.auth, w.notifier, w.tx, nopLogger())
}

func (w *world) assign() *AssignTicketUseCase {
	return NewAssignTicketUseCase(w.tickets, w.users, w.recorder, w.auth, w.notifier, w.tx, nopLogger())
}

func (w *world) newTicket(t *testing.T) uint {
	t.Helper()
	result, err := w.createTicket().Execute(testCtx, CreateTicketCommand{
		RobotID:     robotID,
		Title:       "Gripper stalls",
		Description: "Gripper stops mid-cycle",
		Principal:   w.endAdmin,
	})
	require.NoError(t, err)
	return result.ID
}
