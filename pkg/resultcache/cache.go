package resultcache

import (
	"context"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/railmax/railmax/pkg/redis_client"
)

// Cache memoises small string lookups (latest available date, city
// coordinates) for a bounded time window. A nil Cache is valid and simply
// never hits.
type Cache struct {
	Cache *cache.Cache[string]
}

func (c *Cache) Setup(expiration time.Duration) {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(expiration))

	c.Cache = cache.New[string](redisStore)
}

// Get returns the cached value for key, or "" when absent or uncached.
func (c *Cache) Get(key string) string {
	if c == nil || c.Cache == nil {
		return ""
	}

	value, err := c.Cache.Get(context.Background(), key)
	if err != nil {
		return ""
	}

	return value
}

func (c *Cache) Set(key string, value string) {
	if c == nil || c.Cache == nil {
		return
	}

	c.Cache.Set(context.Background(), key, value)
}
