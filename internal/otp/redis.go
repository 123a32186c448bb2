package otp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "otp:"

// RedisStore keeps pending codes in Redis with TTL-based eviction.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore. A non-positive ttl falls back to DefaultTTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Set(ctx context.Context, phone, code string) error {
	if err := s.client.Set(ctx, keyPrefix+phone, code, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, phone string) (string, error) {
	code, err := s.client.Get(ctx, keyPrefix+phone).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read OTP: %w", err)
	}
	return code, nil
}

func (s *RedisStore) Delete(ctx context.Context, phone string) error {
	if err := s.client.Del(ctx, keyPrefix+phone).Err(); err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}
	return nil
}
