// Package redis stores expiring search results in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	infraerrors "github.com/angristan/todo-music-api/internal/infra/errors"
	"github.com/redis/go-redis/v9"
)

const (
	redisService = "redis"

	operationTimeout = 5 * time.Second
)

var ErrMissingTTL = errors.New("cache entries need a positive ttl")

type RedisCache struct {
	redisClient *redis.Client
}

func NewCache(redisClient *redis.Client) *RedisCache {
	return &RedisCache{redisClient: redisClient}
}

// NewClient parses a redis:// URL and checks the server answers.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, infraerrors.NewUpstreamError(redisService, "ping", err)
	}

	return client, nil
}

// Get reports found=false when the key is absent or expired.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	value, err := c.redisClient.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, false, nil
	case err != nil:
		return nil, false, infraerrors.NewUpstreamError(redisService, "get", err)
	}

	return value, true, nil
}

// Set stores value under key. Entries never outlive ttl.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("%w: %s", ErrMissingTTL, key)
	}

	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	if err := c.redisClient.Set(ctx, key, value, ttl).Err(); err != nil {
		return infraerrors.NewUpstreamError(redisService, "set", err)
	}

	return nil
}
