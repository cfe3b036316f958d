package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	tickethandlers "github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers/ticket"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/middleware"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/routes"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/utils"

	_ "github.com/automationyuli-li/RobotCare-sub001/docs"
)

// APIPrefix is the mount point of every versioned endpoint.
const APIPrefix = "/api/v1"

// SetupRoutes configures middlewares and all HTTP routes.
func (c *Container) SetupRoutes() {
	tickethandlers.RegisterValidators()

	r := c.engine
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(c.log))
	r.Use(middleware.Recovery(c.log))
	r.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	r.Use(middleware.SecurityHeaders())

	r.NoRoute(func(ctx *gin.Context) {
		utils.ErrorResponseWithError(ctx, errors.NewNotFoundError("route not found"))
	})
	r.NoMethod(func(ctx *gin.Context) {
		utils.ErrorResponseWithError(ctx, errors.NewMethodNotAllowedError("method not allowed"))
	})

	r.GET("/health", c.hdlrs.health.HealthCheck)
	if c.cfg.Server.Mode != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(APIPrefix)

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		IdentityHandler: c.hdlrs.identity,
		AuthMiddleware:  c.authMiddleware,
		RateLimiter:     c.authLimiter,
	})
	routes.SetupOrganizationRoutes(api, &routes.OrganizationRouteConfig{
		OrganizationHandler: c.hdlrs.organization,
		AuthMiddleware:      c.authMiddleware,
	})
	routes.SetupRobotRoutes(api, &routes.RobotRouteConfig{
		RobotHandler:   c.hdlrs.robot,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:   c.hdlrs.ticket,
		TimelineHandler: c.hdlrs.timeline,
		AuthMiddleware:  c.authMiddleware,
	})
	routes.SetupLibraryRoutes(api, &routes.LibraryRouteConfig{
		LibraryHandler: c.hdlrs.library,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupNotificationRoutes(api, &routes.NotificationRouteConfig{
		NotificationHandler: c.hdlrs.notification,
		AuthMiddleware:      c.authMiddleware,
	})
	routes.SetupFileRoutes(api, &routes.FileRouteConfig{
		FileHandler:    c.hdlrs.files,
		AuthMiddleware: c.authMiddleware,
	})
}
