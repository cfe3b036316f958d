package timeline

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/timeline/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/utils"
)

type Handler struct {
	deleteEventUC usecases.DeleteEventExecutor
	logger        logger.Interface
}

func NewHandler(deleteEventUC usecases.DeleteEventExecutor, logger logger.Interface) *Handler {
	return &Handler{deleteEventUC: deleteEventUC, logger: logger}
}

// DeleteEvent removes an event created by the caller. Creation events take
// their ticket, comment or maintenance log with them.
// @Summary Delete a timeline event
// @Tags Timeline
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /timeline/{id} [delete]
func (h *Handler) DeleteEvent(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id", "event")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteEventUC.Execute(c.Request.Context(), usecases.DeleteEventCommand{EventID: id, Principal: p}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Event deleted successfully", nil)
}
