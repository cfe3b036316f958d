package http

import (
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers"
	fileshandlers "github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers/files"
	identityhandlers "github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers/identity"
	libraryhandlers "github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers/library"
	notificationhandlers "github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers/notification"
	organizationhandlers "github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers/organization"
	robothandlers "github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers/robot"
	tickethandlers "github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers/ticket"
	timelinehandlers "github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/middleware"
)

// allHandlers holds every HTTP handler.
type allHandlers struct {
	health       *handlers.HealthHandler
	identity     *identityhandlers.Handler
	organization *organizationhandlers.Handler
	robot        *robothandlers.Handler
	ticket       *tickethandlers.TicketHandler
	timeline     *timelinehandlers.Handler
	library      *libraryhandlers.Handler
	notification *notificationhandlers.Handler
	files        *fileshandlers.Handler
}

func (c *Container) initHandlers() {
	u, log := c.ucs, c.log

	c.authMiddleware = middleware.NewAuthMiddleware(u.resolveSession, log)
	c.authLimiter = middleware.NewRateLimiter(c.svcs.limiter, "auth", log)

	c.hdlrs = &allHandlers{
		health: handlers.NewHealthHandler(c.db, c.redis),
		identity: identityhandlers.NewHandler(
			u.register, u.login, u.logout, u.getCurrentUser, u.createUser, u.listUsers, log,
		),
		organization: organizationhandlers.NewHandler(
			u.getOrganization, u.updateOrganization, u.inviteCustomer,
			u.acceptContract, u.terminateContract, u.listContracts, log,
		),
		robot: robothandlers.NewHandler(
			u.createRobot, u.getRobot, u.listRobots, u.updateRobot, u.deleteRobot,
			u.addMaintenanceLog, u.listMaintenanceLogs, u.listEvents, log,
		),
		ticket: tickethandlers.NewTicketHandler(tickethandlers.TicketUseCases{
			Create:          u.createTicket,
			Get:             u.getTicket,
			List:            u.listTickets,
			Update:          u.updateTicket,
			Assign:          u.assignTicket,
			Delete:          u.deleteTicket,
			AddComment:      u.addComment,
			UpsertStage:     u.upsertStage,
			ListStages:      u.listStages,
			CompleteSummary: u.completeSummary,
			Confirm:         u.confirmByCustomer,
			ListEvents:      u.listEvents,
		}, log),
		timeline: timelinehandlers.NewHandler(u.deleteEvent, log),
		library: libraryhandlers.NewHandler(
			u.createDocument, u.getDocument, u.listDocuments,
			u.updateDocument, u.deleteDocument, u.addAttachment, log,
		),
		notification: notificationhandlers.NewHandler(u.listNotifications, u.markNotificationRead, log),
		files:        fileshandlers.NewHandler(u.uploadFile, u.openFile, log),
	}
}
