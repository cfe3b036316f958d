// Package files serves uploads and downloads of stage and library attachments.
package files

import (
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/files/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/utils"
)

const formField = "file"

type Handler struct {
	uploadUC usecases.UploadFileExecutor
	openUC   usecases.OpenFileExecutor
	logger   logger.Interface
}

func NewHandler(uploadUC usecases.UploadFileExecutor, openUC usecases.OpenFileExecutor, logger logger.Interface) *Handler {
	return &Handler{uploadUC: uploadUC, openUC: openUC, logger: logger}
}

// Upload stores a multipart file and returns its id.
// @Summary Upload a file
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /files [post]
func (h *Handler) Upload(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	header, err := c.FormFile(formField)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("file is required", err.Error()))
		return
	}
	f, err := header.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "error", err, "name", header.Filename)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read upload"))
		return
	}
	defer f.Close()

	result, err := h.uploadUC.Execute(c.Request.Context(), usecases.UploadFileCommand{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        f,
		Principal:   p,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "File uploaded successfully")
}

// Download streams the file body.
func (h *Handler) Download(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.openUC.Execute(c.Request.Context(), usecases.OpenFileQuery{FileID: c.Param("id"), Principal: p})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer result.Content.Close()

	contentType := result.File.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Content-Length", strconv.FormatInt(result.File.Size, 10))
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": result.File.Name}))
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, result.Content); err != nil {
		h.logger.Warnw("file download interrupted", "error", err, "file_id", result.File.ID)
	}
}
