package keys

import "testing"

func TestHashShapeAndStability(t *testing.T) {
	// xxhash of the empty string; pins the digest format to 16 hex chars.
	if got := Hash(""); got != "ef46db3751d8e999" {
		t.Fatalf("Hash(\"\") = %q", got)
	}
	if Hash("a") != Hash("a") {
		t.Fatalf("Hash not deterministic")
	}
	if Hash("a") == Hash("b") {
		t.Fatalf("distinct inputs collided")
	}
	for _, in := range []string{"a", "namespace:user", "a much longer input with spaces"} {
		if len(Hash(in)) != 16 {
			t.Fatalf("Hash(%q) not 16 chars: %q", in, Hash(in))
		}
	}
}
