package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"stockledger/domain"
)

// FileStore is a JSON file-backed implementation of Store. Each collection
// is kept in its own file under dir, named after its storage key. Writes go
// through a temp file plus rename; there is no transaction spanning two
// collections.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// compile-time assertion
var _ Store = (*FileStore)(nil)

// NewFileStore constructs a FileStore rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// load reads the file for key into out. A missing or empty file is treated
// as an empty collection.
func (s *FileStore) load(key string, out interface{}) error {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, out)
}

func (s *FileStore) save(key string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

func (s *FileStore) Products(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var list []domain.Product
	if err := s.load(KeyProducts, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *FileStore) SetProducts(ctx context.Context, products []domain.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(KeyProducts, products)
}

func (s *FileStore) Orders(ctx context.Context) ([]domain.SalesOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var list []domain.SalesOrder
	if err := s.load(KeyOrders, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *FileStore) SetOrders(ctx context.Context, orders []domain.SalesOrder) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(KeyOrders, orders)
}

func (s *FileStore) InventoryLog(ctx context.Context) ([]domain.InventoryLogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var list []domain.InventoryLogEntry
	if err := s.load(KeyInventoryLog, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *FileStore) SetInventoryLog(ctx context.Context, entries []domain.InventoryLogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(KeyInventoryLog, entries)
}

func (s *FileStore) Customers(ctx context.Context) ([]domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var list []domain.Customer
	if err := s.load(KeyCustomers, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *FileStore) SetCustomers(ctx context.Context, customers []domain.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(KeyCustomers, customers)
}
