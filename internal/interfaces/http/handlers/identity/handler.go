// Package identity serves registration, login and user management.
package identity

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/identity/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/utils"
)

type Handler struct {
	registerUC       usecases.RegisterExecutor
	loginUC          usecases.LoginExecutor
	logoutUC         usecases.LogoutExecutor
	getCurrentUserUC usecases.GetCurrentUserExecutor
	createUserUC     usecases.CreateUserExecutor
	listUsersUC      usecases.ListUsersExecutor
	logger           logger.Interface
}

func NewHandler(
	registerUC usecases.RegisterExecutor,
	loginUC usecases.LoginExecutor,
	logoutUC usecases.LogoutExecutor,
	getCurrentUserUC usecases.GetCurrentUserExecutor,
	createUserUC usecases.CreateUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		registerUC:       registerUC,
		loginUC:          loginUC,
		logoutUC:         logoutUC,
		getCurrentUserUC: getCurrentUserUC,
		createUserUC:     createUserUC,
		listUsersUC:      listUsersUC,
		logger:           logger,
	}
}

// Register creates an organization together with its first admin.
// @Summary Register an organization
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Organization and admin"
// @Success 201 {object} utils.APIResponse{data=RegisterResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, RegisterResponse{
		User:                result.User,
		Organization:        result.Organization,
		ReconciledContracts: result.ReconciledContracts,
	}, "Registration successful")
}

// Login exchanges credentials for an access token.
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// Logout handles POST /auth/logout
func (h *Handler) Logout(c *gin.Context) {
	token := utils.BearerToken(c)
	if token == "" {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing authorization token"))
		return
	}

	if err := h.logoutUC.Execute(c.Request.Context(), token); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// Me handles GET /auth/me
func (h *Handler) Me(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCurrentUserUC.Execute(c.Request.Context(), p)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateUser handles POST /users
func (h *Handler) CreateUser(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateUserRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Email:     req.Email,
		Name:      req.Name,
		Password:  req.Password,
		Role:      req.Role,
		Principal: p,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// ListUsers handles GET /users
func (h *Handler) ListUsers(c *gin.Context) {
	p, err := authorization.GetPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page := utils.ParsePagination(c)
	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Role:      c.Query("role"),
		Page:      page.Page,
		PageSize:  page.PageSize,
		Principal: p,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, page.Page, page.PageSize)
}
