package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/mkale/transitmate/internal/pkg/database"
)

// RedisStore implements Store on top of a Redis connection
type RedisStore struct {
	client *database.RedisClient
}

// NewRedisStore creates a Redis-backed store
func NewRedisStore(client *database.RedisClient) *RedisStore {
	return &RedisStore{client: client}
}

// Get retrieves the value for key, ErrNotFound when absent
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.GetClient().Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return val, nil
}

// Set stores the value for key without expiration
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.GetClient().Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Delete removes key; deleting an absent key is not an error
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.GetClient().Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
