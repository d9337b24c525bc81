package nscache

import (
	"context"
	"time"

	c "github.com/unkn0wn-root/nscache/codec"
	st "github.com/unkn0wn-root/nscache/store"
)

// Store and Codec are re-exported so most callers only import the root package.
type (
	Store        = st.Store
	Codec[V any] = c.Codec[V]
)

// Cache is the namespaced cache facade. V is the caller's value type;
// serialization is handled by a pluggable Codec[V].
//
// Logical (namespace, key) pairs are mapped onto the flat key space of the
// underlying Store through a per-namespace epoch token, so DeleteNamespace
// can invalidate every key of a namespace in O(1) without the store
// supporting wildcard deletes.
//
// All operations are fail-open: a failing store degrades Get to a miss and
// Set/Delete to no-ops. The returned error reports what was absorbed so
// callers can tell a miss from an outage, but ignoring it is the intended
// default. DeleteNamespace is the exception: its error is meaningful, since
// a failed rotation leaves supposedly invalidated entries reachable.
type Cache[V any] interface {
	Enabled() bool
	Close(context.Context) error

	Get(ctx context.Context, namespace, key string) (v V, ok bool, err error)
	Set(ctx context.Context, namespace, key string, value V, ttl time.Duration) error
	Delete(ctx context.Context, namespace, key string) error

	// DeleteNamespace rotates the namespace's epoch token, making every
	// previously written entry of the namespace permanently unreachable.
	DeleteNamespace(ctx context.Context, namespace string) error
}

// Options tune the facade. Only Store and Codec are required; others have
// sensible defaults.
type Options[V any] struct {
	// Required
	Store Store
	Codec Codec[V]

	Prefix     string        // physical key prefix; "" => "app"
	DefaultTTL time.Duration // value entries; 0 => 24h
	EpochTTL   time.Duration // epoch token keys; 0 => 24h (independent of DefaultTTL)
	Logger     Logger        // if nil, NopLogger is used
	Hooks      Hooks         // if nil, NopHooks is used
	Disabled   bool          // default false (enabled)
}

func New[V any](opts Options[V]) (Cache[V], error) {
	return newCache[V](opts)
}
