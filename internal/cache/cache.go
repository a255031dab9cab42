// Package cache implements the TTL cache backing the stats and leaderboard
// reads. The cache is never a source of truth: any backend failure degrades
// to a miss and the read path falls through to the supplier.
package cache

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"
)

// ErrMiss is returned when a key is absent or its TTL has elapsed.
var ErrMiss = errors.New("cache: miss")

// Store is the minimal TTL key-value contract. Values are serialized to JSON
// by implementations; dest must be a pointer.
type Store interface {
	// Get loads the value for key into dest. Returns ErrMiss when the key
	// is absent, expired, or the backend is unavailable.
	Get(ctx context.Context, key string, dest interface{}) error

	// Set stores value under key with an absolute expiry of now+ttl,
	// overwriting any prior entry.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys unconditionally.
	Delete(ctx context.Context, keys ...string) error

	// Flush clears every entry. Used only for full logout/reset.
	Flush(ctx context.Context) error
}

// Loader wraps a Store with same-key in-flight deduplication so concurrent
// misses for one key trigger a single supplier call.
type Loader struct {
	store Store
	group singleflight.Group
}

// NewLoader creates a Loader over the given store.
func NewLoader(store Store) *Loader {
	return &Loader{store: store}
}

// Store returns the underlying store, for invalidation paths.
func (l *Loader) Store() Store {
	return l.store
}

// Delete is a convenience passthrough for invalidation fan-out.
func (l *Loader) Delete(ctx context.Context, keys ...string) error {
	return l.store.Delete(ctx, keys...)
}

// Flush clears the underlying store.
func (l *Loader) Flush(ctx context.Context) error {
	return l.store.Flush(ctx)
}

// GetOrCompute returns the cached value for key, or invokes supplier on a
// miss, memoizes the result for ttl, and returns it. Supplier errors are
// never cached and propagate to the caller. A failed cache write does not
// fail the read: the computed value is still returned.
func GetOrCompute[T any](ctx context.Context, l *Loader, key string, ttl time.Duration, supplier func(ctx context.Context) (T, error)) (T, error) {
	var cached T
	if err := l.store.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	v, err, _ := l.group.Do(key, func() (interface{}, error) {
		// Re-check: another flight may have stored the value while we
		// waited for the group slot.
		var again T
		if err := l.store.Get(ctx, key, &again); err == nil {
			return again, nil
		}

		computed, err := supplier(ctx)
		if err != nil {
			return nil, err
		}
		// Last write wins; recomputation is idempotent so a racing
		// overwrite is harmless.
		_ = l.store.Set(ctx, key, computed, ttl)
		return computed, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
