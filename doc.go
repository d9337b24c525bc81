// Package nscache implements a namespaced facade over a flat key-value byte
// store. A flat store cannot delete by wildcard; nscache emulates grouped,
// bulk-invalidatable namespaces with one level of indirection: every physical
// key embeds the namespace's current epoch token, and rotating the token
// (DeleteNamespace) orphans the whole namespace in O(1). Orphans are left to
// the store's own eviction.
//
// Components:
//   - Store: byte store with TTL and atomic add-if-absent
//     (e.g. Redis, Ristretto, BigCache, in-process memory).
//   - Codec[V]: (de)serializes V <-> []byte.
//
// Keys:
//
//	hash(prefix:namespace:<ns>)      - epoch token for <ns> (24h TTL)
//	<prefix>:<epoch>:hash(<key>)     - value entries
//
// The facade is fail-open: store outages degrade reads to misses and writes
// to no-ops, never to application errors. Errors are still returned so
// callers can tell a miss from an outage; ignoring them is the intended
// default. Epoch-key eviction is equivalent to an implicit namespace-wide
// invalidation, so correctness never depends on the token surviving.
package nscache
