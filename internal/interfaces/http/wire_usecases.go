package http

import (
	filesuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/files/usecases"
	identityuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/identity/usecases"
	libraryuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/library/usecases"
	notificationuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/notification/usecases"
	organizationuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/organization/usecases"
	robotuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/robot/usecases"
	ticketuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/ticket/usecases"
	timelineuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/timeline/usecases"
)

// allUseCases holds every use case, grouped by bounded context.
type allUseCases struct {
	// Identity
	register        *identityuc.RegisterUseCase
	login           *identityuc.LoginUseCase
	logout          *identityuc.LogoutUseCase
	resolveSession  *identityuc.ResolveSessionUseCase
	getCurrentUser  *identityuc.GetCurrentUserUseCase
	createUser      *identityuc.CreateUserUseCase
	listUsers       *identityuc.ListUsersUseCase
	cleanupSessions *identityuc.CleanupSessionsUseCase

	// Organizations and contracts
	getOrganization    *organizationuc.GetOrganizationUseCase
	updateOrganization *organizationuc.UpdateOrganizationUseCase
	inviteCustomer     *organizationuc.InviteCustomerUseCase
	acceptContract     *organizationuc.AcceptContractUseCase
	terminateContract  *organizationuc.TerminateContractUseCase
	listContracts      *organizationuc.ListContractsUseCase
	expireContracts    *organizationuc.ExpireContractsUseCase

	// Robots
	createRobot         *robotuc.CreateRobotUseCase
	getRobot            *robotuc.GetRobotUseCase
	listRobots          *robotuc.ListRobotsUseCase
	updateRobot         *robotuc.UpdateRobotUseCase
	deleteRobot         *robotuc.DeleteRobotUseCase
	addMaintenanceLog   *robotuc.AddMaintenanceLogUseCase
	listMaintenanceLogs *robotuc.ListMaintenanceLogsUseCase

	// Tickets
	createTicket      *ticketuc.CreateTicketUseCase
	getTicket         *ticketuc.GetTicketUseCase
	listTickets       *ticketuc.ListTicketsUseCase
	updateTicket      *ticketuc.UpdateTicketUseCase
	assignTicket      *ticketuc.AssignTicketUseCase
	deleteTicket      *ticketuc.DeleteTicketUseCase
	addComment        *ticketuc.AddCommentUseCase
	upsertStage       *ticketuc.UpsertStageUseCase
	listStages        *ticketuc.ListStagesUseCase
	completeSummary   *ticketuc.CompleteSummaryUseCase
	confirmByCustomer *ticketuc.ConfirmByCustomerUseCase

	// Timeline
	listEvents  *timelineuc.ListEventsUseCase
	deleteEvent *timelineuc.DeleteEventUseCase

	// Library
	createDocument *libraryuc.CreateDocumentUseCase
	getDocument    *libraryuc.GetDocumentUseCase
	listDocuments  *libraryuc.ListDocumentsUseCase
	updateDocument *libraryuc.UpdateDocumentUseCase
	deleteDocument *libraryuc.DeleteDocumentUseCase
	addAttachment  *libraryuc.AddAttachmentUseCase

	// Notifications and files
	listNotifications    *notificationuc.ListNotificationsUseCase
	markNotificationRead *notificationuc.MarkNotificationReadUseCase
	uploadFile           *filesuc.UploadFileUseCase
	openFile             *filesuc.OpenFileUseCase
}

func (c *Container) initUseCases() {
	r, s, log := c.repos, c.svcs, c.log

	c.ucs = &allUseCases{
		register:        identityuc.NewRegisterUseCase(r.organization, r.contract, r.user, s.hasher, s.txManager, log),
		login:           identityuc.NewLoginUseCase(r.user, r.session, s.hasher, s.tokens, c.cfg.Auth.Session.TTL(), log),
		logout:          identityuc.NewLogoutUseCase(r.session, s.tokens, s.cache, log),
		resolveSession:  identityuc.NewResolveSessionUseCase(r.user, r.session, s.tokens, s.cache, log),
		getCurrentUser:  identityuc.NewGetCurrentUserUseCase(r.user, log),
		createUser:      identityuc.NewCreateUserUseCase(r.user, r.organization, s.hasher, s.authorizer, log),
		listUsers:       identityuc.NewListUsersUseCase(r.user, s.authorizer, log),
		cleanupSessions: identityuc.NewCleanupSessionsUseCase(r.session, log),

		getOrganization:    organizationuc.NewGetOrganizationUseCase(r.organization, s.authorizer, log),
		updateOrganization: organizationuc.NewUpdateOrganizationUseCase(r.organization, s.authorizer, log),
		inviteCustomer: organizationuc.NewInviteCustomerUseCase(
			r.organization, r.contract, r.user, s.mailer, s.notifier, s.authorizer, c.cfg.Server.BaseURL, log,
		),
		acceptContract:    organizationuc.NewAcceptContractUseCase(r.organization, r.contract, s.authorizer, log),
		terminateContract: organizationuc.NewTerminateContractUseCase(r.contract, s.authorizer, log),
		listContracts:     organizationuc.NewListContractsUseCase(r.contract, s.authorizer, log),
		expireContracts:   organizationuc.NewExpireContractsUseCase(r.contract, log),

		createRobot: robotuc.NewCreateRobotUseCase(
			r.robot, r.organization, r.contract, s.recorder, s.authorizer, s.txManager, log,
		),
		getRobot:    robotuc.NewGetRobotUseCase(r.robot, s.authorizer, log),
		listRobots:  robotuc.NewListRobotsUseCase(r.robot, s.authorizer, log),
		updateRobot: robotuc.NewUpdateRobotUseCase(r.robot, s.recorder, s.authorizer, s.txManager, log),
		deleteRobot: robotuc.NewDeleteRobotUseCase(r.robot, s.authorizer, log),
		addMaintenanceLog: robotuc.NewAddMaintenanceLogUseCase(
			r.robot, r.maintenance, s.recorder, s.authorizer, s.txManager, log,
		),
		listMaintenanceLogs: robotuc.NewListMaintenanceLogsUseCase(r.robot, r.maintenance, s.authorizer, log),

		createTicket: ticketuc.NewCreateTicketUseCase(
			r.ticket, r.robot, s.numbers, s.recorder, s.authorizer, s.txManager, log,
		),
		getTicket:    ticketuc.NewGetTicketUseCase(r.ticket, r.comment, r.rating, s.authorizer, log),
		listTickets:  ticketuc.NewListTicketsUseCase(r.ticket, s.authorizer, log),
		updateTicket: ticketuc.NewUpdateTicketUseCase(r.ticket, s.recorder, s.authorizer, s.txManager, log),
		assignTicket: ticketuc.NewAssignTicketUseCase(
			r.ticket, r.user, s.recorder, s.authorizer, s.notifier, s.txManager, log,
		),
		deleteTicket: ticketuc.NewDeleteTicketUseCase(r.ticket, s.authorizer, log),
		addComment: ticketuc.NewAddCommentUseCase(
			r.ticket, r.comment, s.recorder, s.authorizer, s.txManager, log,
		),
		upsertStage: ticketuc.NewUpsertStageUseCase(
			r.ticket, r.stage, r.interval, s.recorder, s.authorizer, s.txManager, log,
		),
		listStages: ticketuc.NewListStagesUseCase(r.ticket, r.stage, r.interval, s.authorizer, log),
		completeSummary: ticketuc.NewCompleteSummaryUseCase(
			r.ticket, r.stage, r.interval, r.user, s.recorder, s.authorizer, s.notifier, s.txManager, log,
		),
		confirmByCustomer: ticketuc.NewConfirmByCustomerUseCase(
			r.ticket, r.stage, r.interval, r.rating, r.robot, r.user,
			s.recorder, s.authorizer, s.notifier, s.txManager, log,
		),

		listEvents: timelineuc.NewListEventsUseCase(r.timeline, r.robot, r.ticket, s.authorizer, log),
		deleteEvent: timelineuc.NewDeleteEventUseCase(
			r.timeline, r.ticket, r.comment, r.maintenance, s.txManager, log,
		),

		createDocument: libraryuc.NewCreateDocumentUseCase(r.library, s.renderer, s.authorizer, log),
		getDocument:    libraryuc.NewGetDocumentUseCase(r.library, s.authorizer, log),
		listDocuments:  libraryuc.NewListDocumentsUseCase(r.library, s.authorizer, log),
		updateDocument: libraryuc.NewUpdateDocumentUseCase(r.library, s.renderer, s.authorizer, log),
		deleteDocument: libraryuc.NewDeleteDocumentUseCase(r.library, s.authorizer, log),
		addAttachment:  libraryuc.NewAddAttachmentUseCase(r.library, r.file, s.authorizer, log),

		listNotifications:    notificationuc.NewListNotificationsUseCase(r.notification, log),
		markNotificationRead: notificationuc.NewMarkNotificationReadUseCase(r.notification, log),
		uploadFile:           filesuc.NewUploadFileUseCase(r.file, s.blobs, c.cfg.Storage.MaxUploadMB, log),
		openFile:             filesuc.NewOpenFileUseCase(r.file, s.blobs, log),
	}
}
