package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"toolcrib/internal/config"

	"github.com/redis/go-redis/v9"
)

func New(config *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       0,
	})
}

func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}

// Cache is a typed read-through cache over redis. Implementations must treat
// a nil client as a no-op so code paths stay usable without redis.
type Cache[T any] interface {
	Get(ctx context.Context, key string) (*T, error)
	Set(ctx context.Context, key string, value *T) error
	Delete(ctx context.Context, key string) error
}

type jsonCache[T any] struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func NewJSONCache[T any](rdb *redis.Client, prefix string, ttl time.Duration) Cache[T] {
	return &jsonCache[T]{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (c *jsonCache[T]) key(key string) string {
	return c.prefix + ":" + key
}

// Get returns (nil, nil) on a cache miss.
func (c *jsonCache[T]) Get(ctx context.Context, key string) (*T, error) {
	if c.rdb == nil {
		return nil, nil
	}

	value, err := c.rdb.Get(ctx, c.key(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var out T
	if err := json.Unmarshal([]byte(value), &out); err != nil {
		return nil, fmt.Errorf("unmarshal cached %s: %w", c.prefix, err)
	}

	return &out, nil
}

func (c *jsonCache[T]) Set(ctx context.Context, key string, value *T) error {
	if c.rdb == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s for cache: %w", c.prefix, err)
	}

	return c.rdb.Set(ctx, c.key(key), data, c.ttl).Err()
}

func (c *jsonCache[T]) Delete(ctx context.Context, key string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, c.key(key)).Err()
}
