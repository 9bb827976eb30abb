package stats

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"cerb/pkg/platform/sentinel"
)

// Cache stores raw API response bodies keyed by request path.
// Get returns sentinel.ErrNotFound on a miss or expired entry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
}

type memoryEntry struct {
	body      []byte
	expiresAt time.Time
}

// MemoryCache is an in-process Cache for a single run.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache creates an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if !c.now().Before(entry.expiresAt) {
		delete(c.entries, key)
		return nil, sentinel.ErrNotFound
	}
	return entry.body, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, body []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{body: body, expiresAt: c.now().Add(ttl)}
	return nil
}

const redisKeyPrefix = "cerb:stats:"

// RedisCache shares responses between runs and machines.
type RedisCache struct {
	client redis.Cmdable
}

// NewRedisCache wraps a connected Redis client.
func NewRedisCache(client redis.Cmdable) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	body, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: redis get: %w", sentinel.ErrUnavailable, err)
	}
	return body, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, redisKeyPrefix+key, body, ttl).Err(); err != nil {
		return fmt.Errorf("%w: redis set: %w", sentinel.ErrUnavailable, err)
	}
	return nil
}
