package geocache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-planner/pkg/log"
)

// Redis is a cache shared between service instances. Values are stored as JSON.
type Redis[V any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	l      log.Logger
}

// NewRedis creates a Redis-backed cache. Keys are namespaced with prefix.
func NewRedis[V any](client *redis.Client, prefix string, ttl time.Duration, l log.Logger) *Redis[V] {
	return &Redis[V]{client: client, prefix: prefix, ttl: ttl, l: l}
}

func (c *Redis[V]) Get(ctx context.Context, key string) (V, bool) {
	var zero V

	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.l.Warnf(ctx, "geocache.Redis.Get: %v", err)
		}
		return zero, false
	}

	var v V
	if err := json.Unmarshal(raw, &v); err != nil {
		c.l.Warnf(ctx, "geocache.Redis.Get: decode %q: %v", key, err)
		return zero, false
	}
	return v, true
}

func (c *Redis[V]) Set(ctx context.Context, key string, value V) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.l.Warnf(ctx, "geocache.Redis.Set: encode %q: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, raw, c.ttl).Err(); err != nil {
		c.l.Warnf(ctx, "geocache.Redis.Set: %v", err)
	}
}

// NewRedisClient opens a client and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}
	return rdb, nil
}
