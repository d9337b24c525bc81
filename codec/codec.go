// Package codec provides pluggable value serialization for the cache facade.
// The facade stores codec output verbatim; a decode failure on read is
// treated as a corrupt entry and self-healed (deleted), never surfaced.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
