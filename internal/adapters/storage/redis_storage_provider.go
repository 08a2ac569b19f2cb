package storage

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"guardianclima.app/internal/ports"
	"guardianclima.app/pkg/errors"
)

// RedisStorageProvider implements ports.StorageProvider using Redis
type RedisStorageProvider struct {
	client *redis.Client
}

// NewRedisStorageProvider connects to Redis and verifies the connection
func NewRedisStorageProvider(cfg *ports.RedisConfig) (*RedisStorageProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewStorageError("failed to connect to Redis", err)
	}

	return &RedisStorageProvider{client: client}, nil
}

func (r *RedisStorageProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("storage key cannot be empty")
	}

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NewNotFoundError("key not found")
		}
		return nil, errors.NewStorageError("redis get operation failed", err)
	}

	return val, nil
}

// Set stores a value. A zero ttl keeps the key until it is deleted.
func (r *RedisStorageProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("storage key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("storage value cannot be nil")
	}
	if ttl < 0 {
		return errors.NewValidationError("storage TTL cannot be negative")
	}

	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.NewStorageError("redis set operation failed", err)
	}

	return nil
}

func (r *RedisStorageProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("storage key cannot be empty")
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return errors.NewStorageError("redis delete operation failed", err)
	}

	return nil
}

func (r *RedisStorageProvider) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("storage key cannot be empty")
	}

	count, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, errors.NewStorageError("redis exists operation failed", err)
	}

	return count > 0, nil
}

// Ping checks if the Redis connection is alive
func (r *RedisStorageProvider) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewStorageError("redis ping failed", err)
	}
	return nil
}

func (r *RedisStorageProvider) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewStorageError("failed to close Redis connection", err)
	}
	return nil
}
