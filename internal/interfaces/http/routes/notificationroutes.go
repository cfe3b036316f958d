package routes

import (
	"github.com/gin-gonic/gin"

	notificationhandlers "github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers/notification"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *notificationhandlers.Handler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupNotificationRoutes(api *gin.RouterGroup, config *NotificationRouteConfig) {
	notifications := api.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", config.NotificationHandler.List)
		notifications.POST("/:id/read", config.NotificationHandler.MarkRead)
	}
}
