package routes

import (
	"github.com/gin-gonic/gin"

	robothandlers "github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/middleware"
)

type RobotRouteConfig struct {
	RobotHandler   *robothandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRobotRoutes(api *gin.RouterGroup, config *RobotRouteConfig) {
	robots := api.Group("/robots")
	robots.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		robots.POST("", config.RobotHandler.CreateRobot)
		robots.GET("", config.RobotHandler.ListRobots)

		// Nested resources (must come BEFORE /:id to avoid conflicts)
		robots.POST("/:id/maintenance", config.RobotHandler.AddMaintenanceLog)
		robots.GET("/:id/maintenance", config.RobotHandler.ListMaintenanceLogs)
		robots.GET("/:id/timeline", config.RobotHandler.GetTimeline)

		// Generic parameterized routes (must come LAST)
		robots.GET("/:id", config.RobotHandler.GetRobot)
		robots.PATCH("/:id", config.RobotHandler.UpdateRobot)
		robots.DELETE("/:id", config.RobotHandler.DeleteRobot)
	}
}
