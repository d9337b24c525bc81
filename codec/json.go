package codec

import "encoding/json"

// JSON is the default codec for struct values; slower and larger than
// Msgpack/CBOR but trivially debuggable in the store.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
