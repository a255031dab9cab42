package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis is a Store backed by a shared Redis instance. Backend failures are
// reported as misses on reads and swallowed on writes: the cache must never
// block a read path from reaching the supplier, and must never serve
// corrupted data.
type Redis struct {
	client *redis.Client
	logger *zap.SugaredLogger
}

// NewRedis wraps an already-connected client.
func NewRedis(client *redis.Client, logger *zap.Logger) *Redis {
	return &Redis{client: client, logger: logger.Sugar()}
}

func (r *Redis) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warnw("cache read failed, treating as miss", "key", key, "error", err)
		}
		return ErrMiss
	}
	if err := json.Unmarshal(data, dest); err != nil {
		r.logger.Warnw("cache entry corrupted, treating as miss", "key", key, "error", err)
		return ErrMiss
	}
	return nil
}

func (r *Redis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		r.logger.Warnw("cache write failed", "key", key, "error", err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *Redis) Flush(ctx context.Context) error {
	return r.client.FlushDB(ctx).Err()
}

// Ping checks backend reachability for the readiness probe.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
