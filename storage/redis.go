package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis stores each slot under its key in a Redis instance.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to the given Redis URL and pings it once.
func NewRedis(ctx context.Context, redisURL string) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &Redis{client: client}, nil
}

func (r *Redis) Read(ctx context.Context, key string) (string, error) {
	raw, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read slot %s: %w", key, err)
	}
	return raw, nil
}

func (r *Redis) Write(ctx context.Context, key, raw string) error {
	// Carts live until cleared; no TTL.
	return r.client.Set(ctx, key, raw, 0).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}
