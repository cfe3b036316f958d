package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/authz"
	identityuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/identity/usecases"
	notificationuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/notification/usecases"
	timelineuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/timeline/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/auth"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/cache"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/config"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/email"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/markdown"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/pubsub"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/ratelimit"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/services"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/storage"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/middleware"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

// collaborators holds the infrastructure collaborators shared by several use cases.
// Optional collaborators are untyped nil interfaces when disabled.
type collaborators struct {
	hasher     *auth.BcryptPasswordHasher
	tokens     *auth.JWTService
	cache      identityuc.SessionCache
	limiter    middleware.Limiter
	mailer     email.Sender
	publisher  notificationuc.Publisher
	blobs      *storage.BlobStore
	numbers    *services.TicketNumberGenerator
	renderer   *markdown.Renderer
	enforcer   *permission.Enforcer
	authorizer *authz.Authorizer
	txManager  *db.TransactionManager
	recorder   *timelineuc.RecordEventUseCase
	notifier   *notificationuc.Notifier
}

func (c *Container) initServices() error {
	cfg := c.cfg
	s := &collaborators{
		hasher:    auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost),
		tokens:    auth.NewJWTService(cfg.Auth.JWT.Secret),
		renderer:  markdown.NewRenderer(),
		txManager: db.NewTransactionManager(c.db),
		numbers:   services.NewTicketNumberGenerator(c.repos.ticket),
	}

	if cfg.Redis.Enabled {
		client, err := initRedis(cfg, c.log)
		if err != nil {
			return err
		}
		c.redis = client
		ttl := time.Duration(cfg.Redis.SessionCacheTTL) * time.Second
		s.cache = cache.NewRedisSessionCache(c.redis, ttl, c.log)
		s.limiter = ratelimit.NewRedisRateLimiter(c.redis, ratelimit.Limits{
			PerMinute: cfg.Auth.RateLimit.PerMinute,
			PerHour:   cfg.Auth.RateLimit.PerHour,
		})
	} else {
		c.log.Infow("redis disabled, session cache and login rate limiting are off")
	}

	mailer, err := email.NewSender(cfg.Email, c.log)
	if err != nil {
		return fmt.Errorf("failed to create email sender: %w", err)
	}
	s.mailer = mailer

	if cfg.Broker.Enabled {
		c.publisher = pubsub.NewAMQPPublisher(cfg.Broker.URL, cfg.Broker.Queue, c.log)
		s.publisher = c.publisher
	}

	blobs, err := storage.NewLocalBlobStore(cfg.Storage.Root)
	if err != nil {
		return fmt.Errorf("failed to open file storage: %w", err)
	}
	s.blobs = blobs

	policyDB := c.db
	if !cfg.Permission.Persist {
		policyDB = nil
	}
	enforcer, err := permission.NewEnforcer(policyDB, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	s.enforcer = enforcer
	s.authorizer = authz.NewAuthorizer(enforcer, c.repos.contract, c.log)

	s.recorder = timelineuc.NewRecordEventUseCase(c.repos.timeline, c.log)
	s.notifier = notificationuc.NewNotifier(c.repos.notification, s.mailer, s.publisher, c.log)

	c.svcs = s
	return nil
}

// initRedis connects to redis and fails when the server is unreachable.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.GetAddr(), err)
	}
	log.Infow("redis connected", "addr", cfg.Redis.GetAddr())
	return client, nil
}
