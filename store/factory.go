package store

import "fmt"

// NewStore constructs a Store by kind: "memory" or "file". For the file
// store, provide the data directory in dir; for memory, dir is ignored.
func NewStore(kind, dir string) (Store, error) {
	switch kind {
	case "memory", "mem":
		return NewMemoryStore(), nil
	case "file":
		if dir == "" {
			return nil, fmt.Errorf("data directory required for file store")
		}
		return NewFileStore(dir)
	default:
		return nil, fmt.Errorf("unknown store kind: %s", kind)
	}
}
