package notification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/notification/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/utils"
)

// Handler serves the caller's in-app notifications.
type Handler struct {
	listUC     usecases.ListNotificationsExecutor
	markReadUC usecases.MarkNotificationReadExecutor
	logger     logger.Interface
}

func NewHandler(listUC usecases.ListNotificationsExecutor, markReadUC usecases.MarkNotificationReadExecutor, logger logger.Interface) *Handler {
	return &Handler{listUC: listUC, markReadUC: markReadUC, logger: logger}
}

// List handles GET /notifications
// @Summary List notifications
// @Tags Notifications
// @Produce json
// @Param unread_only query bool false "Only unread"
// @Success 200 {object} utils.APIResponse
// @Router /notifications [get]
func (h *Handler) List(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	unreadOnly, _ := strconv.ParseBool(c.Query("unread_only"))
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListNotificationsQuery{
		UserID:     p.UserID,
		UnreadOnly: unreadOnly,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Notifications, result.Total, pagination.Page, pagination.PageSize)
}

// MarkRead handles POST /notifications/:id/read
func (h *Handler) MarkRead(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markReadUC.Execute(c.Request.Context(), usecases.MarkNotificationReadCommand{
		NotificationID: id,
		UserID:         p.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
