package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const cacheKeyPrefix = "catalog:services:"

// Cache is a read-through cache for service listings.
// A nil redis client disables caching entirely.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewCache creates a catalog cache
func NewCache(redisClient *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: redisClient, ttl: ttl}
}

func cacheKey(category string) string {
	if category == "" {
		return cacheKeyPrefix + "all"
	}
	return cacheKeyPrefix + category
}

// Get returns the cached listing for a category, or nil on miss
func (c *Cache) Get(ctx context.Context, category string) []*ServiceResponse {
	if c == nil || c.redis == nil {
		return nil
	}

	data, err := c.redis.Get(ctx, cacheKey(category)).Bytes()
	if err != nil {
		return nil // miss or redis down, fall through to DB
	}

	var services []*ServiceResponse
	if err := json.Unmarshal(data, &services); err != nil {
		log.Warn().Err(err).Str("category", category).Msg("Corrupt catalog cache entry")
		c.redis.Del(ctx, cacheKey(category))
		return nil
	}
	return services
}

// Set stores a listing for a category
func (c *Cache) Set(ctx context.Context, category string, services []*ServiceResponse) {
	if c == nil || c.redis == nil {
		return
	}

	data, err := json.Marshal(services)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, cacheKey(category), data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to write catalog cache")
	}
}
