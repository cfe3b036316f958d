package routes

import (
	"github.com/gin-gonic/gin"

	organizationhandlers "github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers/organization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/middleware"
)

type OrganizationRouteConfig struct {
	OrganizationHandler *organizationhandlers.Handler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupOrganizationRoutes(api *gin.RouterGroup, config *OrganizationRouteConfig) {
	organizations := api.Group("/organizations")
	organizations.Use(config.AuthMiddleware.RequireAuth())
	{
		organizations.GET("/me", config.OrganizationHandler.GetMine)
		organizations.PATCH("/me", config.OrganizationHandler.UpdateMine)
	}

	contracts := api.Group("/contracts")
	contracts.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		contracts.GET("", config.OrganizationHandler.ListContracts)
		contracts.POST("/invite", config.OrganizationHandler.InviteCustomer)

		// State changes on a single contract
		contracts.POST("/:id/accept", config.OrganizationHandler.AcceptContract)
		contracts.POST("/:id/terminate", config.OrganizationHandler.TerminateContract)
	}
}
