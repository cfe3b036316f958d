package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorInfo represents error information in API response
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ListResponse represents a paginated list response
type ListResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

// SuccessResponse sends a successful response with custom status code
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// CreatedResponse sends a 201 with the created resource.
func CreatedResponse(c *gin.Context, data interface{}, message string) {
	SuccessResponse(c, http.StatusCreated, message, data)
}

// ErrorResponse sends an error envelope with an explicit status code.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &ErrorInfo{
			Type:    "error",
			Message: message,
		},
		Message: message,
	})
}

// ErrorResponseWithError classifies err and writes the matching envelope.
// Anything that is not an AppError is logged and answered with a generic 500
// so store or driver messages never reach the client.
func ErrorResponseWithError(c *gin.Context, err error) {
	if verrs := asValidationErrors(err); verrs != nil {
		err = verrs
	}

	appErr := errors.GetAppError(err)
	if appErr == nil {
		logger.Get().Error("unhandled error",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", err)
		appErr = errors.NewInternalError("Internal server error occurred")
	}

	info := ErrorInfo{
		Type:    string(appErr.Type),
		Message: appErr.Message,
	}
	if appErr.Type != errors.ErrorTypeInternal {
		info.Details = appErr.Details
	}

	c.JSON(appErr.Code, APIResponse{
		Success: false,
		Error:   &info,
		Message: appErr.Message,
	})
}

// ListSuccessResponse sends a successful list response with pagination
func ListSuccessResponse(c *gin.Context, items interface{}, total int64, page, pageSize int) {
	SuccessResponse(c, http.StatusOK, "", ListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: TotalPages(total, pageSize),
	})
}
