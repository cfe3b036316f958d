package routes

import (
	"github.com/gin-gonic/gin"

	libraryhandlers "github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers/library"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/middleware"
)

type LibraryRouteConfig struct {
	LibraryHandler *libraryhandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupLibraryRoutes(api *gin.RouterGroup, config *LibraryRouteConfig) {
	library := api.Group("/library")
	library.Use(config.AuthMiddleware.RequireAuth())
	{
		library.POST("", config.LibraryHandler.CreateDocument)
		library.GET("", config.LibraryHandler.ListDocuments)

		library.POST("/:id/attachments", config.LibraryHandler.AddAttachment)

		library.GET("/:id", config.LibraryHandler.GetDocument)
		library.PATCH("/:id", config.LibraryHandler.UpdateDocument)
		library.DELETE("/:id", config.LibraryHandler.DeleteDocument)
	}
}
