package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/identity/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/utils"
)

type AuthMiddleware struct {
	resolver usecases.ResolveSessionExecutor
	logger   logger.Interface
}

func NewAuthMiddleware(resolver usecases.ResolveSessionExecutor, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
		logger:   logger,
	}
}

// RequireAuth resolves the bearer token to a principal or answers 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.BearerToken(c)
		if token == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing authorization token"))
			c.Abort()
			return
		}

		p, err := m.resolver.Execute(c.Request.Context(), token)
		if err != nil {
			m.logger.Debugw("session resolution failed", "error", err, "path", c.Request.URL.Path)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		authorization.SetPrincipal(c, p)
		c.Next()
	}
}
