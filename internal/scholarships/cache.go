package scholarships

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"scholarship-matcher/internal/common/logger"
	"scholarship-matcher/internal/models"
)

// CacheKey is the redis key holding the cached scholarship list.
const CacheKey = "scholarships:active"

// CachedSource is a read-through redis cache in front of another Source.
// Cache failures never fail a List; they fall through to the wrapped source.
type CachedSource struct {
	next   Source
	rdb    redis.Cmdable
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedSource(next Source, rdb redis.Cmdable, ttl time.Duration, log logger.Logger) *CachedSource {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedSource{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "scholarship-cache"}),
	}
}

func (c *CachedSource) Name() string { return c.next.Name() + "+redis" }

func (c *CachedSource) List(ctx context.Context) ([]models.Scholarship, error) {
	cached, err := c.rdb.Get(ctx, CacheKey).Bytes()
	switch {
	case err == nil:
		var out []models.Scholarship
		if jsonErr := json.Unmarshal(cached, &out); jsonErr == nil {
			c.logger.Debug("scholarship cache hit", map[string]interface{}{"count": len(out)})
			return out, nil
		}
		c.logger.Warn("discarding corrupt scholarship cache entry", nil)
	case errors.Is(err, redis.Nil):
		c.logger.Debug("scholarship cache miss", nil)
	default:
		c.logger.Warn("scholarship cache read failed", map[string]interface{}{"error": err.Error()})
	}

	out, err := c.next.List(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(out)
	if err == nil {
		err = c.rdb.Set(ctx, CacheKey, payload, c.ttl).Err()
	}
	if err != nil {
		c.logger.Warn("scholarship cache write failed", map[string]interface{}{"error": err.Error()})
	}
	return out, nil
}

// Invalidate drops the cached list so the next List reloads it.
func (c *CachedSource) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, CacheKey).Err()
}
