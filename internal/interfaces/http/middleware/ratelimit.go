package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/utils"
)

// Limiter records one attempt for key and reports whether it is allowed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type RateLimiter struct {
	limiter Limiter
	scope   string
	logger  logger.Interface
}

// NewRateLimiter throttles per client IP under scope. A nil limiter lets
// every request through.
func NewRateLimiter(limiter Limiter, scope string, logger logger.Interface) *RateLimiter {
	return &RateLimiter{limiter: limiter, scope: scope, logger: logger}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.limiter == nil {
			c.Next()
			return
		}

		key := rl.scope + ":" + c.ClientIP()
		allowed, err := rl.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			// Fail open: a broken limiter store must not lock users out.
			rl.logger.Warnw("rate limiter unavailable", "error", err, "key", key)
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponseWithError(c, errors.NewTooManyRequestsError("rate limit exceeded, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
