package registry

import (
	"testing"

	"pgregory.net/rapid"
)

func TestCanonicalTypeToType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want typeToTypeKey
	}{
		{"post", "car", typeToTypeKey{low: "car", high: "post", name: "basic"}},
		{"car", "post", typeToTypeKey{low: "car", high: "post", name: "basic"}},
		{"post", "post", typeToTypeKey{low: "post", high: "post", name: "basic"}},
		// Byte-wise ordering: upper case sorts before lower case.
		{"post", "Post", typeToTypeKey{low: "Post", high: "post", name: "basic"}},
	}

	for _, tt := range tests {
		if got := canonicalTypeToType(tt.a, tt.b, "basic"); got != tt.want {
			t.Errorf("canonicalTypeToType(%q, %q) = %+v, want %+v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCanonicalTypeToType_OrderIndependent(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.String().Draw(rt, "a")
		b := rapid.String().Draw(rt, "b")
		name := rapid.String().Draw(rt, "name")

		k1 := canonicalTypeToType(a, b, name)
		k2 := canonicalTypeToType(b, a, name)
		if k1 != k2 {
			rt.Fatalf("key(%q,%q) = %v, key(%q,%q) = %v", a, b, k1, b, a, k2)
		}
		if k1.low > k1.high {
			rt.Fatalf("key %v is not ordered", k1)
		}
	})
}

func TestKeyStrings(t *testing.T) {
	t.Parallel()

	if got := canonicalTypeToType("post", "car", "basic").String(); got != "car<->post#basic" {
		t.Errorf("String() = %q", got)
	}
	if got := (typeToActorKey{typ: "post", role: "owner"}).String(); got != "post@owner" {
		t.Errorf("String() = %q", got)
	}
}
