package nscache

import (
	"context"
	"fmt"
	"time"
)

const (
	defaultPrefix   = "app"
	defaultTTL      = 24 * time.Hour
	defaultEpochTTL = 24 * time.Hour
)

type cache[V any] struct {
	store Store
	codec Codec[V]
	log   Logger
	hooks Hooks

	enabled bool

	prefix     string
	defaultTTL time.Duration
	epochTTL   time.Duration

	now func() time.Time
}

func newCache[V any](opts Options[V]) (*cache[V], error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("nscache: store is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("nscache: codec is required")
	}

	c := &cache[V]{
		store: opts.Store,
		codec: opts.Codec,
		now:   time.Now,
	}

	// defaults
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	c.prefix = coalesce[string](opts.Prefix, defaultPrefix)
	c.defaultTTL = coalesce[time.Duration](opts.DefaultTTL, defaultTTL)
	c.epochTTL = coalesce[time.Duration](opts.EpochTTL, defaultEpochTTL)

	c.enabled = !opts.Disabled

	return c, nil
}

func (c *cache[V]) Enabled() bool { return c.enabled }

func (c *cache[V]) Close(ctx context.Context) error {
	if c.store != nil {
		return c.store.Close(ctx)
	}
	return nil
}

func (c *cache[V]) Get(ctx context.Context, namespace, key string) (V, bool, error) {
	var zero V
	if !c.enabled {
		return zero, false, nil
	}
	pk, err := c.physicalKey(ctx, namespace, key)
	if err != nil {
		// unresolved epoch => namespace-wide miss
		return zero, false, err
	}
	raw, ok, err := c.store.Get(ctx, pk)
	if err != nil {
		c.hooks.StoreError("get", pk, err)
		return zero, false, &StoreError{Op: "get", Key: pk, Err: err}
	}
	if !ok {
		return zero, false, nil
	}
	v, err := c.codec.Decode(raw)
	if err != nil {
		_ = c.store.Del(ctx, pk) // self-heal corrupt
		c.log.Debug("dropped undecodable entry", Fields{"namespace": namespace, "key": key, "err": err})
		return zero, false, nil
	}
	return v, true, nil
}

func (c *cache[V]) Set(ctx context.Context, namespace, key string, value V, ttl time.Duration) error {
	if !c.enabled {
		return nil
	}
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	pk, err := c.physicalKey(ctx, namespace, key)
	if err != nil {
		// unresolved epoch => dropped write
		return err
	}
	payload, err := c.codec.Encode(value)
	if err != nil {
		return err
	}
	if err := c.store.Set(ctx, pk, payload, ttl); err != nil {
		c.hooks.StoreError("set", pk, err)
		c.log.Debug("Set dropped (store error)", Fields{"namespace": namespace, "key": key, "err": err})
		return &StoreError{Op: "set", Key: pk, Err: err}
	}
	return nil
}

func (c *cache[V]) Delete(ctx context.Context, namespace, key string) error {
	if !c.enabled {
		return nil
	}
	pk, err := c.physicalKey(ctx, namespace, key)
	if err != nil {
		return err
	}
	if err := c.store.Del(ctx, pk); err != nil {
		c.hooks.StoreError("del", pk, err)
		return &StoreError{Op: "del", Key: pk, Err: err}
	}
	return nil
}

// DeleteNamespace overwrites the namespace's epoch token unconditionally (no
// compare-and-swap): the fresh token mixes current wall-clock millis, so no
// future resolution can reproduce the old one and every physical key derived
// from it becomes unreachable. Orphaned entries are left for the store's own
// eviction to reclaim; that is the trade for O(1) invalidation.
func (c *cache[V]) DeleteNamespace(ctx context.Context, namespace string) error {
	if !c.enabled {
		return nil
	}
	ek := c.epochKey(namespace)
	fresh := c.deriveEpoch(namespace)
	if err := c.store.Set(ctx, ek, []byte(fresh), c.epochTTL); err != nil {
		c.hooks.StoreError("set", ek, err)
		return &StoreError{Op: "set", Key: ek, Err: err}
	}
	c.hooks.EpochRotated(namespace)
	c.log.Debug("namespace epoch rotated", Fields{"namespace": namespace})
	return nil
}
