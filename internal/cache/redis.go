// Package cache provides caching functionality using Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"movie-catalog/internal/logging"
)

// UserTTL is how long a user profile stays cached.
const UserTTL = 15 * time.Minute

//go:generate mockgen -destination=mocks/mock_cache.go -package=mocks movie-catalog/internal/cache Cache

// Cache stores JSON-encoded values under string keys.
type Cache interface {
	// Set stores a value in cache with TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get decodes the value into dest. Returns false if the key doesn't exist.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Delete removes a key from cache.
	Delete(ctx context.Context, key string) error
}

var _ Cache = (*Redis)(nil)

// Redis is the Cache backed by a Redis server.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to uri, given either as host:port or as a redis:// URL,
// and pings the server.
func NewRedis(ctx context.Context, uri string) (*Redis, error) {
	opt, err := redisOptions(uri)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", opt.Addr, err)
	}

	logging.Info().Str("addr", opt.Addr).Msg("Connected to Redis")
	return &Redis{client: client}, nil
}

func redisOptions(uri string) (*redis.Options, error) {
	if !strings.Contains(uri, "://") {
		uri = "redis://" + uri
	}
	opt, err := redis.ParseURL(uri)
	if err != nil {
		return nil, fmt.Errorf("parse redis uri: %w", err)
	}
	return opt, nil
}

// Close closes the Redis connection.
func (r *Redis) Close() {
	if err := r.client.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing Redis connection")
		return
	}
	logging.Info().Msg("Disconnected from Redis")
}

// Set stores a value in cache with TTL.
func (r *Redis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

// Get decodes the cached value into dest.
func (r *Redis) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Delete removes a key from cache.
func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// UserCacheKey is the key a user profile is cached under.
func UserCacheKey(userID string) string {
	return "user:" + userID
}
