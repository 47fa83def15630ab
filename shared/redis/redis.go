package redis

import (
	"context"
	"time"

	"alumni-network/backend/pkg/config"

	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

// Client is a thin wrapper around go-redis used for directory caching.
// Every operation degrades gracefully: callers treat any error as a cache
// miss and fall back to the database.
type Client struct {
	client *redis.Client
}

// NewClient creates a Redis client from the application configuration
func NewClient() *Client {
	cfg := config.Get()
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return &Client{client: client}
}

// Set stores a value with an expiration
func (r *Client) Set(key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key
func (r *Client) Get(key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

// Del removes a key
func (r *Client) Del(key string) error {
	return r.client.Del(ctx, key).Err()
}

// Ping checks connectivity to the Redis server
func (r *Client) Ping() error {
	return r.client.Ping(ctx).Err()
}
