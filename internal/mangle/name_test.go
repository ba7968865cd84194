package mangle

import "testing"

func TestShortNameSequence(t *testing.T) {
	tests := []struct {
		i    int
		want string
	}{
		{0, "a"},
		{1, "b"},
		{25, "z"},
		{26, "A"},
		{52, "_"},
		{53, "$"},
		{54, "aa"},
		{55, "ba"},
	}
	for _, tt := range tests {
		if got := shortName(tt.i); got != tt.want {
			t.Errorf("shortName(%d) = %q, want %q", tt.i, got, tt.want)
		}
	}
}

func TestShortNameUnique(t *testing.T) {
	seen := make(map[string]struct{}, 4000)
	for i := 0; i < 4000; i++ {
		name := shortName(i)
		if _, dup := seen[name]; dup {
			t.Fatalf("shortName(%d) = %q already produced", i, name)
		}
		seen[name] = struct{}{}
	}
}

func TestReservedCoversShortKeywords(t *testing.T) {
	for _, kw := range []string{"do", "if", "in", "of", "as"} {
		if !reserved[kw] {
			t.Errorf("%q missing from the reserved set", kw)
		}
	}
}
