// Package sessioncache persists a single in-progress self-schedule
// document per user in Redis. Writes replace the whole value and expire
// after eight hours; there is no delete path.
package sessioncache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// TTL is the absolute expiration applied to every cache write.
const TTL = 28800 * time.Second

// okReply is the success sentinel returned by the SET primitive.
const okReply = "OK"

// ErrMiss signals an absent key at the KV layer.
var ErrMiss = errors.New("cache miss")

// KV is the key-value primitive the store runs on. SetEX must return the
// server's literal reply string so the store can check the success
// sentinel.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	SetEX(ctx context.Context, key, value string, ttl time.Duration) (string, error)
}

// RedisKV implements KV over go-redis.
type RedisKV struct {
	c *redis.Client
}

// NewRedisKV wraps an existing redis client.
func NewRedisKV(c *redis.Client) *RedisKV { return &RedisKV{c: c} }

// Get returns the raw value for key, or ErrMiss when the key is absent.
func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.c.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrMiss
		}
		return "", err
	}
	return val, nil
}

// SetEX writes value with an absolute expiry and returns the server reply.
func (r *RedisKV) SetEX(ctx context.Context, key, value string, ttl time.Duration) (string, error) {
	return r.c.Set(ctx, key, value, ttl).Result()
}

// Store reads and writes OSSUserCache documents keyed by user id.
type Store struct {
	kv     KV
	logger zerolog.Logger
}

// NewStore builds a session cache store over the given KV.
func NewStore(kv KV, logger zerolog.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

// FetchCache returns the cached document for userID, or nil when no
// entry exists. A stored value that fails to parse as JSON is an error;
// corruption is surfaced, not recovered.
func (s *Store) FetchCache(ctx context.Context, userID string) (*OSSUserCache, error) {
	raw, err := s.kv.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("sessioncache: read %q: %w", userID, err)
	}

	var cache OSSUserCache
	if err := json.Unmarshal([]byte(raw), &cache); err != nil {
		return nil, fmt.Errorf("sessioncache: parse cached value for %q: %w", userID, err)
	}
	return &cache, nil
}

// SetCache serializes cache and writes it under userID with the fixed
// TTL. A reply other than the store's success sentinel fails with the
// literal reply text in the error.
func (s *Store) SetCache(ctx context.Context, userID string, cache *OSSUserCache) error {
	payload, err := json.Marshal(cache)
	if err != nil {
		return fmt.Errorf("sessioncache: serialize cache for %q: %w", userID, err)
	}

	reply, err := s.kv.SetEX(ctx, userID, string(payload), TTL)
	if err != nil {
		return fmt.Errorf("sessioncache: write %q: %w", userID, err)
	}
	if reply != okReply {
		return fmt.Errorf("sessioncache: unexpected write response: %s", reply)
	}

	s.logger.Debug().Str("user_id", userID).Msg("session cache updated")
	return nil
}
