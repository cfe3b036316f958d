// Package organization serves the caller's organization and its service contracts.
package organization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/organization/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/utils"
)

type Handler struct {
	getOrganizationUC    usecases.GetOrganizationExecutor
	updateOrganizationUC usecases.UpdateOrganizationExecutor
	inviteCustomerUC     usecases.InviteCustomerExecutor
	acceptContractUC     usecases.AcceptContractExecutor
	terminateContractUC  usecases.TerminateContractExecutor
	listContractsUC      usecases.ListContractsExecutor
	logger               logger.Interface
}

func NewHandler(
	getOrganizationUC usecases.GetOrganizationExecutor,
	updateOrganizationUC usecases.UpdateOrganizationExecutor,
	inviteCustomerUC usecases.InviteCustomerExecutor,
	acceptContractUC usecases.AcceptContractExecutor,
	terminateContractUC usecases.TerminateContractExecutor,
	listContractsUC usecases.ListContractsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		getOrganizationUC:    getOrganizationUC,
		updateOrganizationUC: updateOrganizationUC,
		inviteCustomerUC:     inviteCustomerUC,
		acceptContractUC:     acceptContractUC,
		terminateContractUC:  terminateContractUC,
		listContractsUC:      listContractsUC,
		logger:               logger,
	}
}

// GetMine handles GET /organizations/me
func (h *Handler) GetMine(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getOrganizationUC.Execute(c.Request.Context(), usecases.GetOrganizationQuery{Principal: p})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateMine handles PATCH /organizations/me
func (h *Handler) UpdateMine(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateOrganizationRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateOrganizationUC.Execute(c.Request.Context(), usecases.UpdateOrganizationCommand{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		Quotas:       req.quotas(),
		Principal:    p,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Organization updated successfully", result)
}

// ListContracts lists contracts where the caller's organization is either party.
// @Summary List service contracts
// @Tags Contracts
// @Produce json
// @Param status query string false "pending, active, terminated or expired"
// @Success 200 {object} utils.APIResponse
// @Router /contracts [get]
func (h *Handler) ListContracts(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listContractsUC.Execute(c.Request.Context(), usecases.ListContractsQuery{
		Status:    c.Query("status"),
		Principal: p,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// InviteCustomer creates a pending contract and emails the invitee.
// @Summary Invite an end customer
// @Tags Contracts
// @Accept json
// @Produce json
// @Param request body InviteCustomerRequest true "Invitation"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /contracts/invite [post]
func (h *Handler) InviteCustomer(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req InviteCustomerRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	start, err := utils.ParseOptionalDate("start_date", req.StartDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	end, err := utils.ParseOptionalDate("end_date", req.EndDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.inviteCustomerUC.Execute(c.Request.Context(), usecases.InviteCustomerCommand{
		Email:     req.Email,
		StartDate: start,
		EndDate:   end,
		Principal: p,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Invitation sent")
}

// AcceptContract handles POST /contracts/:id/accept
func (h *Handler) AcceptContract(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id", "contract")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.acceptContractUC.Execute(c.Request.Context(), usecases.AcceptContractCommand{ContractID: id, Principal: p})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Contract accepted", result)
}

// TerminateContract handles POST /contracts/:id/terminate
func (h *Handler) TerminateContract(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id", "contract")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.terminateContractUC.Execute(c.Request.Context(), usecases.TerminateContractCommand{ContractID: id, Principal: p})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Contract terminated", result)
}
