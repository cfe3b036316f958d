package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/ticket/usecases"
	timelineuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/timeline/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC      usecases.CreateTicketExecutor
	getTicketUC         usecases.GetTicketExecutor
	listTicketsUC       usecases.ListTicketsExecutor
	updateTicketUC      usecases.UpdateTicketExecutor
	assignTicketUC      usecases.AssignTicketExecutor
	deleteTicketUC      usecases.DeleteTicketExecutor
	addCommentUC        usecases.AddCommentExecutor
	upsertStageUC       usecases.UpsertStageExecutor
	listStagesUC        usecases.ListStagesExecutor
	completeSummaryUC   usecases.CompleteSummaryExecutor
	confirmByCustomerUC usecases.ConfirmByCustomerExecutor
	listEventsUC        timelineuc.ListEventsExecutor
	logger              logger.Interface
}

// TicketUseCases groups the executors behind the ticket endpoints.
type TicketUseCases struct {
	Create          usecases.CreateTicketExecutor
	Get             usecases.GetTicketExecutor
	List            usecases.ListTicketsExecutor
	Update          usecases.UpdateTicketExecutor
	Assign          usecases.AssignTicketExecutor
	Delete          usecases.DeleteTicketExecutor
	AddComment      usecases.AddCommentExecutor
	UpsertStage     usecases.UpsertStageExecutor
	ListStages      usecases.ListStagesExecutor
	CompleteSummary usecases.CompleteSummaryExecutor
	Confirm         usecases.ConfirmByCustomerExecutor
	ListEvents      timelineuc.ListEventsExecutor
}

func NewTicketHandler(uc TicketUseCases, logger logger.Interface) *TicketHandler {
	return &TicketHandler{
		createTicketUC:      uc.Create,
		getTicketUC:         uc.Get,
		listTicketsUC:       uc.List,
		updateTicketUC:      uc.Update,
		assignTicketUC:      uc.Assign,
		deleteTicketUC:      uc.Delete,
		addCommentUC:        uc.AddComment,
		upsertStageUC:       uc.UpsertStage,
		listStagesUC:        uc.ListStages,
		completeSummaryUC:   uc.CompleteSummary,
		confirmByCustomerUC: uc.Confirm,
		listEventsUC:        uc.ListEvents,
		logger:              logger,
	}
}

// CreateTicket handles POST /tickets
// @Summary Create a new ticket
// @Description Open a service ticket against a robot
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param ticket body CreateTicketRequest true "Ticket data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(p))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
// @Summary Get ticket by ID
// @Description Ticket with its comments and rating
// @Tags tickets
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID, Principal: p})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
// @Summary List tickets
// @Tags tickets
// @Produce json
// @Security Bearer
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param status query string false "Status filter"
// @Param priority query string false "Priority filter"
// @Param robot_id query int false "Robot filter"
// @Success 200 {object} utils.APIResponse
// @Router /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	robotID, err := utils.ParseOptionalUintQuery(c, "robot_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)
	query := usecases.ListTicketsQuery{
		Principal: p,
		RobotID:   robotID,
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
	if status := c.Query("status"); status != "" {
		query.Status = &status
	}
	if priority := c.Query("priority"); priority != "" {
		query.Priority = &priority
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, pagination.Page, pagination.PageSize)
}

// UpdateTicket handles PATCH /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err, "ticket_id", ticketID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID, p))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// AssignTicket handles POST /tickets/:id/assign
// @Summary Assign ticket
// @Description Assign a ticket to an engineer of the servicing provider
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Param assignment body AssignTicketRequest true "Assignee"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /tickets/{id}/assign [post]
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		TicketID:   ticketID,
		AssigneeID: req.AssigneeID,
		Principal:  p,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned successfully", result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{TicketID: ticketID, Principal: p}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", nil)
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID:  ticketID,
		Content:   req.Content,
		Principal: p,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// ListStages handles GET /tickets/:id/stages
// @Summary List ticket stages
// @Description All six workflow stages in order; unwritten stages are placeholders
// @Tags tickets
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Success 200 {object} utils.APIResponse
// @Router /tickets/{id}/stages [get]
func (h *TicketHandler) ListStages(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listStagesUC.Execute(c.Request.Context(), usecases.ListStagesQuery{TicketID: ticketID, Principal: p})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpsertStage handles POST /tickets/:id/stages
// @Summary Write a ticket stage
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Param stage body UpsertStageRequest true "Stage content"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /tickets/{id}/stages [post]
func (h *TicketHandler) UpsertStage(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpsertStageRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for upsert stage", "error", err, "ticket_id", ticketID)
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd, err := req.ToCommand(ticketID, p)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.upsertStageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Stage saved successfully", result)
}

// CompleteSummary handles POST /tickets/:id/stages/summary/complete
func (h *TicketHandler) CompleteSummary(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The body is optional.
	var req CompleteSummaryRequest
	if c.Request.ContentLength > 0 {
		if err := utils.BindJSON(c, &req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}
	completedAt, err := utils.ParseOptionalDate("completed_at", req.CompletedAt)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.completeSummaryUC.Execute(c.Request.Context(), usecases.CompleteSummaryCommand{
		TicketID:    ticketID,
		CompletedAt: completedAt,
		Content:     req.Content,
		Principal:   p,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Summary completed, awaiting customer confirmation", result)
}

// Confirm handles POST /tickets/:id/confirm
// @Summary Confirm a ticket
// @Description Customer sign-off with a 1-5 rating; resolves the ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Ticket ID"
// @Param confirmation body ConfirmRequest true "Rating"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /tickets/{id}/confirm [post]
func (h *TicketHandler) Confirm(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ConfirmRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.confirmByCustomerUC.Execute(c.Request.Context(), usecases.ConfirmByCustomerCommand{
		TicketID:  ticketID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Principal: p,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket confirmed", result)
}

// GetTimeline handles GET /tickets/:id/timeline
func (h *TicketHandler) GetTimeline(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query, err := timeline.ParseListQuery(c, p)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	query.TicketID = &ticketID

	result, err := h.listEventsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Events, result.Total, query.Page, query.PageSize)
}
