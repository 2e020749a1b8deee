package news

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores search results per query for a short TTL. A nil *Cache is a
// valid no-op cache, so callers never branch on whether Redis is configured.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache connects to Redis at addr and verifies the connection. An empty
// addr returns a nil cache (caching disabled).
func NewCache(addr string, ttl time.Duration) (*Cache, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return &Cache{client: client, ttl: ttl}, nil
}

func cacheKey(query string) string {
	return "news:q:" + query
}

// Get returns the cached articles for query, or ok=false on miss or any
// Redis/decode failure. Cache trouble must never fail a request.
func (c *Cache) Get(ctx context.Context, query string) ([]Article, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, cacheKey(query)).Bytes()
	if err != nil {
		return nil, false
	}

	var articles []Article
	if err := json.Unmarshal(raw, &articles); err != nil {
		return nil, false
	}
	return articles, true
}

// Set stores articles for query. Failures are ignored for the same reason.
func (c *Cache) Set(ctx context.Context, query string, articles []Article) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(articles)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, cacheKey(query), raw, c.ttl).Err()
}

// Close releases the Redis connection. Safe on a nil cache.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
