// Package library serves the service providers' knowledge base.
package library

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/library/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/utils"
)

type Handler struct {
	createUC        usecases.CreateDocumentExecutor
	getUC           usecases.GetDocumentExecutor
	listUC          usecases.ListDocumentsExecutor
	updateUC        usecases.UpdateDocumentExecutor
	deleteUC        usecases.DeleteDocumentExecutor
	addAttachmentUC usecases.AddAttachmentExecutor
	logger          logger.Interface
}

func NewHandler(
	createUC usecases.CreateDocumentExecutor,
	getUC usecases.GetDocumentExecutor,
	listUC usecases.ListDocumentsExecutor,
	updateUC usecases.UpdateDocumentExecutor,
	deleteUC usecases.DeleteDocumentExecutor,
	addAttachmentUC usecases.AddAttachmentExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:        createUC,
		getUC:           getUC,
		listUC:          listUC,
		updateUC:        updateUC,
		deleteUC:        deleteUC,
		addAttachmentUC: addAttachmentUC,
		logger:          logger,
	}
}

// CreateDocument publishes a markdown document.
// @Summary Create a library document
// @Tags Library
// @Accept json
// @Produce json
// @Param request body CreateDocumentRequest true "Document"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /library [post]
func (h *Handler) CreateDocument(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateDocumentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(p))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Document created successfully")
}

func (h *Handler) GetDocument(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id", "document")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetDocumentQuery{DocumentID: id, Principal: p})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListDocuments searches visible libraries.
// @Summary Search library documents
// @Tags Library
// @Produce json
// @Param keyword query string false "Matches title or content"
// @Param category query string false "Category"
// @Param fault_code query string false "Fault code"
// @Success 200 {object} utils.APIResponse
// @Router /library [get]
func (h *Handler) ListDocuments(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListDocumentsQuery{
		Principal: p,
		Keyword:   c.Query("keyword"),
		Category:  c.Query("category"),
		FaultCode: c.Query("fault_code"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Documents, result.Total, pagination.Page, pagination.PageSize)
}

func (h *Handler) UpdateDocument(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id", "document")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateDocumentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(id, p))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Document updated successfully", result)
}

func (h *Handler) DeleteDocument(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id", "document")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteDocumentCommand{DocumentID: id, Principal: p}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Document deleted successfully", nil)
}

// AddAttachment links an uploaded file to the document.
func (h *Handler) AddAttachment(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseIDParam(c, "id", "document")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddAttachmentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addAttachmentUC.Execute(c.Request.Context(), usecases.AddAttachmentCommand{
		DocumentID: id,
		FileID:     req.FileID,
		Principal:  p,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachment added")
}
