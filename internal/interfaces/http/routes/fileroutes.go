package routes

import (
	"github.com/gin-gonic/gin"

	fileshandlers "github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers/files"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/middleware"
)

type FileRouteConfig struct {
	FileHandler    *fileshandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupFileRoutes(api *gin.RouterGroup, config *FileRouteConfig) {
	files := api.Group("/files")
	files.Use(config.AuthMiddleware.RequireAuth())
	{
		files.POST("", config.FileHandler.Upload)
		files.GET("/:id", config.FileHandler.Download)
	}
}
