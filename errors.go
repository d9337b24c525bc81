package nscache

import (
	"fmt"
)

// StoreError reports an underlying store failure that the facade absorbed
// fail-open. Op is the store operation that failed ("get", "set", "add",
// "del"); Key is the physical (derived) key, not the caller's logical key.
type StoreError struct {
	Op  string
	Key string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("nscache: store %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
