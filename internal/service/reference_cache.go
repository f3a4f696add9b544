package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	CacheKeyProfessionals = "reference:profesionales"
	CacheKeyServices      = "reference:servicios"
	CacheKeyBranches      = "reference:sucursales"

	referenceCacheTTL = 10 * time.Minute
)

// ReferenceCache keeps reference lists in Redis. Cache failures are logged
// and swallowed; the database remains the source of truth.
type ReferenceCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewReferenceCache(redisClient *redis.Client, log *logrus.Logger) *ReferenceCache {
	return &ReferenceCache{
		redisClient: redisClient,
		log:         log,
	}
}

// Get unmarshals the cached value into dest, reporting whether it was found.
func (c *ReferenceCache) Get(ctx context.Context, key string, dest interface{}) bool {
	raw, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Failed to read cache key %s: %+v", key, err)
		}
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		c.log.Warnf("Failed to decode cache key %s: %+v", key, err)
		return false
	}

	return true
}

func (c *ReferenceCache) Set(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warnf("Failed to encode cache key %s: %+v", key, err)
		return
	}

	if err := c.redisClient.Set(ctx, key, raw, referenceCacheTTL).Err(); err != nil {
		c.log.Warnf("Failed to write cache key %s: %+v", key, err)
	}
}

// Invalidate drops the given keys, used after reference data changes.
func (c *ReferenceCache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
		c.log.Warnf("Failed to invalidate cache keys %v: %+v", keys, err)
	}
}
