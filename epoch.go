package nscache

import (
	"context"
	"strconv"

	"github.com/unkn0wn-root/nscache/internal/keys"
)

// resolveEpoch returns the namespace's current epoch token, creating one
// lazily on first access.
//
// Creation goes through the store's atomic add-if-absent followed by a
// mandatory re-read: when several callers miss simultaneously and race to
// insert, exactly one Add wins, and the re-read makes every loser adopt the
// winning token instead of its own locally derived one. Skipping the re-read
// would hand concurrent callers divergent tokens for the same namespace,
// populating physical keys DeleteNamespace can never reach.
//
// If the store errors at any step the epoch is unresolved and the error is
// returned; callers degrade fail-open (miss / dropped write). We never fall
// back to an unshared local token here: resolution must either converge or
// fail visibly.
func (c *cache[V]) resolveEpoch(ctx context.Context, namespace string) (string, error) {
	ek := c.epochKey(namespace)

	raw, ok, err := c.store.Get(ctx, ek)
	if err != nil {
		c.hooks.EpochResolveError(namespace, err)
		return "", &StoreError{Op: "get", Key: ek, Err: err}
	}
	if ok {
		return string(raw), nil
	}

	fresh := c.deriveEpoch(namespace)
	if _, err := c.store.Add(ctx, ek, []byte(fresh), c.epochTTL); err != nil {
		c.hooks.EpochResolveError(namespace, err)
		return "", &StoreError{Op: "add", Key: ek, Err: err}
	}

	raw, ok, err = c.store.Get(ctx, ek)
	if err != nil {
		c.hooks.EpochResolveError(namespace, err)
		return "", &StoreError{Op: "get", Key: ek, Err: err}
	}
	if !ok {
		// evicted between Add and re-read; use the token we just inserted
		return fresh, nil
	}
	return string(raw), nil
}

// deriveEpoch builds a fresh opaque token from the namespace and the current
// wall clock in milliseconds. The namespace is mixed in so two namespaces
// rotated in the same millisecond still get distinct tokens.
func (c *cache[V]) deriveEpoch(namespace string) string {
	return keys.Hash(namespace + strconv.FormatInt(c.now().UnixMilli(), 10))
}

// epochKey is where the namespace's current token lives in the store.
func (c *cache[V]) epochKey(namespace string) string {
	return keys.Hash(c.prefix + ":namespace:" + namespace)
}

// physicalKey maps a logical (namespace, key) pair onto the store's flat key
// space: prefix, current epoch token, and a digest of the logical key. The
// digest keeps keys fixed-length and charset-safe for any store.
func (c *cache[V]) physicalKey(ctx context.Context, namespace, key string) (string, error) {
	epoch, err := c.resolveEpoch(ctx, namespace)
	if err != nil {
		return "", err
	}
	return c.prefix + ":" + epoch + ":" + keys.Hash(key), nil
}
