package store

import "testing"

func TestNewStore(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		s, err := NewStore("memory", "")
		if err != nil || s == nil {
			t.Fatalf("expected memory store, got %v", err)
		}
		if _, ok := s.(*MemoryStore); !ok {
			t.Fatalf("expected *MemoryStore, got %T", s)
		}
	})

	t.Run("mem alias", func(t *testing.T) {
		if _, err := NewStore("mem", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("file", func(t *testing.T) {
		s, err := NewStore("file", t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := s.(*FileStore); !ok {
			t.Fatalf("expected *FileStore, got %T", s)
		}
	})

	t.Run("file without dir", func(t *testing.T) {
		if _, err := NewStore("file", ""); err == nil {
			t.Fatal("expected error for missing dir")
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		if _, err := NewStore("bolt", ""); err == nil {
			t.Fatal("expected error for unknown kind")
		}
	})
}
