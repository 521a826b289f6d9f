// Package cache provides a tiny Redis client wrapper that publishes the
// latest action produced by each block instance, so co-simulation peers
// can poll the newest value without holding a stream open.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps a Redis client for action snapshot storage
type Cache struct {
	client *redis.Client
}

// New creates a new Cache instance connected to the specified Redis address
// If addr is empty, defaults to localhost:6379
func New(addr string) (*Cache, error) {
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // No password by default
		DB:       0,  // Default DB
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	return &Cache{client: client}, nil
}

// SetAction stores the latest action vector for a block instance with the
// specified TTL.
func (c *Cache) SetAction(ctx context.Context, instanceID string, action []float64, ttl time.Duration) error {
	if c.client == nil {
		return fmt.Errorf("cache client is nil")
	}

	data, err := json.Marshal(action)
	if err != nil {
		return fmt.Errorf("failed to marshal action for instance %s: %w", instanceID, err)
	}

	key := fmt.Sprintf("block:%s:action", instanceID)
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set action for instance %s: %w", instanceID, err)
	}
	return nil
}

// GetAction retrieves the latest action vector for a block instance.
// Returns (nil, nil) when no snapshot exists.
func (c *Cache) GetAction(ctx context.Context, instanceID string) ([]float64, error) {
	if c.client == nil {
		return nil, fmt.Errorf("cache client is nil")
	}

	key := fmt.Sprintf("block:%s:action", instanceID)
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil // No snapshot yet
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get action for instance %s: %w", instanceID, err)
	}

	var action []float64
	if err := json.Unmarshal([]byte(data), &action); err != nil {
		return nil, fmt.Errorf("failed to unmarshal action for instance %s: %w", instanceID, err)
	}
	return action, nil
}

// Close closes the Redis connection
func (c *Cache) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
