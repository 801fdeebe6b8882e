package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/MichalMitros/syntara-client/internal/platform"
	"github.com/go-redis/redis/v8"
	"github.com/samber/lo"
)

// DefaultRedisPrefix is prefix of keys stored by Redis storage.
const DefaultRedisPrefix = "syntara:"

// Redis is key-value storage for client state kept in Redis strings.
type Redis struct {
	client redis.Cmdable
	prefix string
}

// NewRedis returns new Redis storing keys with provided prefix.
func NewRedis(client redis.Cmdable, prefix string) Redis {
	return Redis{
		client: client,
		prefix: prefix,
	}
}

// Get returns value stored under key.
// It returns platform.ErrKeyNotFound if key is not stored.
func (r Redis) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", platform.ErrKeyNotFound
	}

	if err != nil {
		return "", fmt.Errorf("can't get %q from redis: %w", key, err)
	}

	return value, nil
}

// Set stores value under key without expiration.
func (r Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("can't set %q in redis: %w", key, err)
	}

	return nil
}

// Delete removes provided keys. Missing keys are ignored.
func (r Redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := lo.Map(keys, func(key string, _ int) string { return r.prefix + key })
	if err := r.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("can't delete keys from redis: %w", err)
	}

	return nil
}
