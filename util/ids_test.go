package util

import (
	"strings"
	"testing"
)

func TestNewID(t *testing.T) {
	id := NewID()
	if len(id) != 36 || strings.Count(id, "-") != 4 {
		t.Fatalf("expected RFC4122 UUID shape, got %q", id)
	}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		v := NewID()
		if seen[v] {
			t.Fatalf("duplicate id generated: %s", v)
		}
		seen[v] = true
	}
}
