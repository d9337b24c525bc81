package nscache

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The cache calls them on hot paths.
type Hooks interface {
	// A store operation failed and was absorbed fail-open.
	// op ∈ {"get", "set", "del"}. key is the derived physical key.
	StoreError(op, key string, err error)

	// Epoch resolution failed; the caller's operation degraded to a
	// namespace-wide miss (Get) or a dropped write (Set/Delete).
	EpochResolveError(namespace string, err error)

	// A namespace epoch was rotated by DeleteNamespace (bulk invalidation).
	EpochRotated(namespace string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) StoreError(string, string, error)   {}
func (NopHooks) EpochResolveError(string, error)    {}
func (NopHooks) EpochRotated(string)                 {}
