package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers/ticket"
	timelinehandlers "github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler   *tickethandlers.TicketHandler
	TimelineHandler *timelinehandlers.Handler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("",
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.TicketHandler.ListTickets)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.POST("/:id/assign",
			config.TicketHandler.AssignTicket)
		tickets.POST("/:id/comments",
			config.TicketHandler.AddComment)
		tickets.GET("/:id/stages",
			config.TicketHandler.ListStages)
		tickets.POST("/:id/stages",
			config.TicketHandler.UpsertStage)
		tickets.POST("/:id/stages/summary/complete",
			config.TicketHandler.CompleteSummary)
		tickets.POST("/:id/confirm",
			config.TicketHandler.Confirm)
		tickets.GET("/:id/timeline",
			config.TicketHandler.GetTimeline)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
		tickets.PATCH("/:id",
			config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			config.TicketHandler.DeleteTicket)
	}

	timeline := api.Group("/timeline")
	timeline.Use(config.AuthMiddleware.RequireAuth())
	{
		timeline.DELETE("/:id", config.TimelineHandler.DeleteEvent)
	}
}
