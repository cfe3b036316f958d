package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/config"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/pubsub"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/middleware"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

// Container holds infrastructure components, repositories, use cases and
// handlers, wires them together and releases them on Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Optional broker connection, nil when broker.enabled is false
	publisher *pubsub.AMQPPublisher

	repos *repositories
	svcs  *collaborators
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware *middleware.AuthMiddleware
	authLimiter    *middleware.RateLimiter
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, broker, repositories, services
	c.repos = newRepositories(db)
	if err := c.initServices(); err != nil {
		return nil, err
	}

	// Section 2: Use cases
	c.initUseCases()

	// Section 3: Handlers and middlewares
	c.initHandlers()

	return c, nil
}

// Engine returns the gin engine; SetupRoutes must run first.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// SweepResult reports what one sweep removed or expired.
type SweepResult struct {
	SessionsDeleted  int64
	ContractsExpired int
}

// Sweep deletes expired sessions and expires contracts past their end date.
func (c *Container) Sweep(ctx context.Context, now time.Time) (*SweepResult, error) {
	sessions, err := c.ucs.cleanupSessions.Execute(ctx, now)
	if err != nil {
		return nil, err
	}
	contracts, err := c.ucs.expireContracts.Execute(ctx, now)
	if err != nil {
		return nil, err
	}
	return &SweepResult{SessionsDeleted: sessions, ContractsExpired: contracts}, nil
}

// Shutdown closes the broker and redis connections.
func (c *Container) Shutdown(ctx context.Context) {
	if c.publisher != nil {
		if err := c.publisher.Close(); err != nil {
			c.log.Warnw("failed to close broker connection", "error", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
	c.log.Infow("container shut down")
}
