package storage

import (
	"context"
	"errors"
	"fmt"
	"rosea_server/structs"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists each key as a plain Redis string value with no TTL.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg *structs.RedisConfig) (*RedisStore, error) {
	if cfg == nil || cfg.Address == "" {
		return nil, errors.New("redis address is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,

		// Connection pool settings
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdleConns,
		PoolTimeout:     cfg.PoolTimeout,
		ConnMaxIdleTime: cfg.IdleTimeout,

		// Timeouts
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,

		MaxRetries: cfg.MaxRetries,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return raw, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return withRetry(ctx, func() error {
		return r.client.Set(ctx, key, value, 0).Err()
	})
}

func (r *RedisStore) Remove(ctx context.Context, key string) error {
	return withRetry(ctx, func() error {
		return r.client.Del(ctx, key).Err()
	})
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
