// Package rediscache implements pkg/cache on top of Redis.
package rediscache

import (
	"brandkit/pkg/cache"
	"brandkit/pkg/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const availabilityKeyPrefix = "brandkit:availability:"

// Options configure the Redis connection and entry lifetime.
type Options struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Cache is a Redis backed cache.Availability.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ cache.Availability = (*Cache)(nil)

// New connects to Redis and verifies the connection.
func New(ctx context.Context, opts Options) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return NewWithClient(client, opts.TTL), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &Cache{client: client, ttl: ttl}
}

// GetAvailability implements cache.Availability.
func (c *Cache) GetAvailability(ctx context.Context, domains []string) (map[string]domain.Availability, error) {
	out := make(map[string]domain.Availability, len(domains))
	if len(domains) == 0 {
		return out, nil
	}

	keys := make([]string, len(domains))
	for i, d := range domains {
		keys[i] = availabilityKeyPrefix + d
	}
	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("could not read availability: %w", err)
	}

	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var a domain.Availability
		if err := json.Unmarshal([]byte(s), &a); err != nil {
			// a corrupt entry is a miss
			continue
		}
		out[domains[i]] = a
	}

	return out, nil
}

// SetAvailability implements cache.Availability.
func (c *Cache) SetAvailability(ctx context.Context, entries []domain.Availability) error {
	if len(entries) == 0 {
		return nil
	}

	_, err := c.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		for _, e := range entries {
			b, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("could not marshal availability: %w", err)
			}
			p.Set(ctx, availabilityKeyPrefix+e.Domain, b, c.ttl)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("could not store availability: %w", err)
	}

	return nil
}

// Close closes the underlying connection pool.
func (c *Cache) Close() error {
	return c.client.Close() //nolint: wrapcheck
}
