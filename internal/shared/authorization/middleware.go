package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/constants"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/utils"
)

// SetPrincipal stores the principal on the gin context.
func SetPrincipal(c *gin.Context, p *Principal) {
	c.Set(constants.ContextKeyPrincipal, p)
	c.Set(constants.ContextKeyUserID, p.UserID)
	c.Set(constants.ContextKeySessionID, p.SessionID)
	c.Set(constants.ContextKeyUserRole, p.Role.String())
}

// GetPrincipal returns the principal set by the auth middleware.
func GetPrincipal(c *gin.Context) (*Principal, error) {
	v, ok := c.Get(constants.ContextKeyPrincipal)
	if !ok {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	p, ok := v.(*Principal)
	if !ok || p == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	return p, nil
}

// RequireRole aborts with 403 unless the caller holds one of roles.
func RequireRole(roles ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := GetPrincipal(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}
		for _, r := range roles {
			if p.Role == r {
				c.Next()
				return
			}
		}
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("insufficient role"))
		c.Abort()
	}
}

// RequireAdmin aborts with 403 unless the caller is an organization admin.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(RoleServiceAdmin, RoleEndAdmin)
}
