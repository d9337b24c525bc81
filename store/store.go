// Package store defines the storage abstraction used by nscache.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly
// the same []byte that was previously passed to Set or Add for a key (no
// prepended/appended metadata, no re-encoding, no mutation). If a store
// performs internal transforms (e.g., compression), they MUST be fully
// reversed so that the bytes returned by Get are identical to the bytes
// provided to Set.
//
// Important: the facade owns every key it derives (both epoch keys and
// physical entry keys). External code MUST NOT write values under the
// configured prefix or to epoch keys; foreign writes can silently split a
// namespace.
package store

import (
	"context"
	"time"
)

// Store is a minimal byte store with TTLs and an atomic add-if-absent
// primitive. Must be safe for concurrent use.
type Store interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL, overwriting any existing entry.
	// ttl <= 0 means no expiry where the store supports that.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Add stores value with the given TTL only if no entry exists for key.
	// Returns (true, nil) when the insert won, (false, nil) when an entry
	// already existed. The insert-if-absent check MUST be atomic: when
	// concurrent callers race on the same key, exactly one wins.
	Add(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
