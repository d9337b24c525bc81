package keys

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a fixed-length, charset-safe 16-hex-char digest of s.
// xxhash is non-cryptographic; it is used for key-space normalization only
// (fixed-length keys safe for any byte store), never for secrecy.
func Hash(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}
