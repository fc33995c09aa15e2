package pricecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mortgage-advisory-engine/internal/models"
)

// RedisCache is a Cache backed by a Redis instance. Datasets are stored
// as JSON blobs.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(ctx context.Context, addr string, ttl time.Duration) (*RedisCache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]models.GeoZone, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read price cache: %w", err)
	}

	var zones []models.GeoZone
	if err := json.Unmarshal(payload, &zones); err != nil {
		return nil, fmt.Errorf("failed to decode cached zones: %w", err)
	}

	return zones, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, zones []models.GeoZone) error {
	payload, err := json.Marshal(zones)
	if err != nil {
		return fmt.Errorf("failed to encode zones: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write price cache: %w", err)
	}

	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
