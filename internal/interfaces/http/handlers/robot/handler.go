// Package robot serves the robot fleet, maintenance logs and robot timelines.
package robot

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/robot/usecases"
	timelineuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/timeline/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/biztime"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/utils"
)

type Handler struct {
	createRobotUC     usecases.CreateRobotExecutor
	getRobotUC        usecases.GetRobotExecutor
	listRobotsUC      usecases.ListRobotsExecutor
	updateRobotUC     usecases.UpdateRobotExecutor
	deleteRobotUC     usecases.DeleteRobotExecutor
	addMaintenanceUC  usecases.AddMaintenanceLogExecutor
	listMaintenanceUC usecases.ListMaintenanceLogsExecutor
	listEventsUC      timelineuc.ListEventsExecutor
	logger            logger.Interface
}

func NewHandler(
	createRobotUC usecases.CreateRobotExecutor,
	getRobotUC usecases.GetRobotExecutor,
	listRobotsUC usecases.ListRobotsExecutor,
	updateRobotUC usecases.UpdateRobotExecutor,
	deleteRobotUC usecases.DeleteRobotExecutor,
	addMaintenanceUC usecases.AddMaintenanceLogExecutor,
	listMaintenanceUC usecases.ListMaintenanceLogsExecutor,
	listEventsUC timelineuc.ListEventsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createRobotUC:     createRobotUC,
		getRobotUC:        getRobotUC,
		listRobotsUC:      listRobotsUC,
		updateRobotUC:     updateRobotUC,
		deleteRobotUC:     deleteRobotUC,
		addMaintenanceUC:  addMaintenanceUC,
		listMaintenanceUC: listMaintenanceUC,
		listEventsUC:      listEventsUC,
		logger:            logger,
	}
}

// CreateRobot registers a robot.
// @Summary Register a robot
// @Tags Robots
// @Accept json
// @Produce json
// @Param request body CreateRobotRequest true "Robot"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /robots [post]
func (h *Handler) CreateRobot(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateRobotRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createRobotUC.Execute(c.Request.Context(), req.ToCommand(p))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Robot created successfully")
}

func (h *Handler) GetRobot(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id", "robot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getRobotUC.Execute(c.Request.Context(), usecases.GetRobotQuery{RobotID: id, Principal: p})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListRobots lists robots visible to the caller.
// @Summary List robots
// @Tags Robots
// @Produce json
// @Param status query string false "Robot status"
// @Param keyword query string false "Matches sn, name or location"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /robots [get]
func (h *Handler) ListRobots(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)
	query := usecases.ListRobotsQuery{
		Principal: p,
		Keyword:   c.Query("keyword"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
	if status := c.Query("status"); status != "" {
		query.Status = &status
	}

	result, err := h.listRobotsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Robots, result.Total, pagination.Page, pagination.PageSize)
}

func (h *Handler) UpdateRobot(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id", "robot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateRobotRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateRobotUC.Execute(c.Request.Context(), req.ToCommand(id, p))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Robot updated successfully", result)
}

func (h *Handler) DeleteRobot(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id", "robot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteRobotUC.Execute(c.Request.Context(), usecases.DeleteRobotCommand{RobotID: id, Principal: p}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Robot deleted successfully", nil)
}

// AddMaintenanceLog handles POST /robots/:id/maintenance
func (h *Handler) AddMaintenanceLog(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id", "robot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddMaintenanceLogRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd, err := req.ToCommand(id, p, biztime.NowUTC())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addMaintenanceUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Maintenance log added")
}

// ListMaintenanceLogs handles GET /robots/:id/maintenance
func (h *Handler) ListMaintenanceLogs(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id", "robot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)
	result, err := h.listMaintenanceUC.Execute(c.Request.Context(), usecases.ListMaintenanceLogsQuery{
		RobotID:   id,
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		Principal: p,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Logs, result.Total, pagination.Page, pagination.PageSize)
}

// GetTimeline lists the robot's events, newest first.
// @Summary Robot timeline
// @Tags Timeline
// @Produce json
// @Param id path int true "Robot ID"
// @Param event_types query string false "Comma separated event types"
// @Param from query string false "YYYY-MM-DD or RFC3339"
// @Param to query string false "YYYY-MM-DD or RFC3339"
// @Success 200 {object} utils.APIResponse
// @Router /robots/{id}/timeline [get]
func (h *Handler) GetTimeline(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id", "robot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query, err := timeline.ParseListQuery(c, p)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	query.RobotID = &id

	result, err := h.listEventsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Events, result.Total, query.Page, query.PageSize)
}
