package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	identityuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/identity/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/biztime"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

const sessionKeyPrefix = "robotcare:session:"

// RedisSessionCache keeps resolved sessions in Redis so authenticated requests
// skip the session and user lookups. Redis failures degrade to a cache miss.
type RedisSessionCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

var _ identityuc.SessionCache = (*RedisSessionCache)(nil)

func NewRedisSessionCache(client *redis.Client, ttl time.Duration, log logger.Interface) *RedisSessionCache {
	return &RedisSessionCache{client: client, ttl: ttl, logger: log}
}

func (c *RedisSessionCache) Get(ctx context.Context, token string) (*identityuc.CachedSession, bool) {
	data, err := c.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warnw("session cache read failed", "error", err)
		}
		return nil, false
	}

	var s identityuc.CachedSession
	if err := json.Unmarshal(data, &s); err != nil {
		c.logger.Warnw("session cache entry is corrupt", "error", err)
		return nil, false
	}
	return &s, true
}

// Set stores s until the cache TTL or the session expiry, whichever comes first.
func (c *RedisSessionCache) Set(ctx context.Context, token string, s *identityuc.CachedSession) {
	ttl := c.ttl
	if remaining := s.ExpiresAt.Sub(biztime.NowUTC()); remaining < ttl {
		ttl = remaining
	}
	if ttl <= 0 {
		return
	}

	data, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, sessionKeyPrefix+token, data, ttl).Err(); err != nil {
		c.logger.Warnw("session cache write failed", "error", err)
	}
}

func (c *RedisSessionCache) Delete(ctx context.Context, token string) {
	if err := c.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		c.logger.Warnw("session cache delete failed", "error", err)
	}
}
