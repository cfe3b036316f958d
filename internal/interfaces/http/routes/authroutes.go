package routes

import (
	"github.com/gin-gonic/gin"

	identityhandlers "github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers/identity"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	IdentityHandler *identityhandlers.Handler
	AuthMiddleware  *middleware.AuthMiddleware
	RateLimiter     *middleware.RateLimiter
}

func SetupAuthRoutes(api *gin.RouterGroup, config *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", config.RateLimiter.Limit(), config.IdentityHandler.Register)
		auth.POST("/login", config.RateLimiter.Limit(), config.IdentityHandler.Login)

		auth.POST("/logout", config.AuthMiddleware.RequireAuth(), config.IdentityHandler.Logout)
		auth.GET("/me", config.AuthMiddleware.RequireAuth(), config.IdentityHandler.Me)
	}

	users := api.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.POST("", config.IdentityHandler.CreateUser)
		users.GET("", config.IdentityHandler.ListUsers)
	}
}
