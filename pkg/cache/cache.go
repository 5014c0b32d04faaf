package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache layer. Implementations
// must treat a miss as (false, nil), leaving dest untouched, so callers can
// fall back to the database without inspecting errors.
type Cache interface {
	// Get unmarshals the cached value into dest. The bool reports a hit.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
