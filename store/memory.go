package store

import (
	"context"
	"sync"

	"stockledger/domain"
)

// MemoryStore is a thread-safe in-memory implementation of Store.
// MaxEntries, when positive, caps the length of any stored collection and
// makes writes beyond it fail with a StorageCapacityError.
type MemoryStore struct {
	mu         sync.RWMutex
	products   []domain.Product
	orders     []domain.SalesOrder
	logEntries []domain.InventoryLogEntry
	customers  []domain.Customer
	maxEntries int
}

// compile-time assertion that MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore constructs an unbounded MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewBoundedMemoryStore constructs a MemoryStore that rejects collections
// longer than maxEntries.
func NewBoundedMemoryStore(maxEntries int) *MemoryStore {
	return &MemoryStore{maxEntries: maxEntries}
}

func (s *MemoryStore) checkCapacity(key string, n int) error {
	if s.maxEntries > 0 && n > s.maxEntries {
		return domain.NewStorageCapacityError(key, s.maxEntries)
	}
	return nil
}

func (s *MemoryStore) Products(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *MemoryStore) SetProducts(ctx context.Context, products []domain.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.checkCapacity(KeyProducts, len(products)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make([]domain.Product, len(products))
	copy(s.products, products)
	return nil
}

func (s *MemoryStore) Orders(ctx context.Context) ([]domain.SalesOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.SalesOrder, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *MemoryStore) SetOrders(ctx context.Context, orders []domain.SalesOrder) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.checkCapacity(KeyOrders, len(orders)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make([]domain.SalesOrder, len(orders))
	copy(s.orders, orders)
	return nil
}

func (s *MemoryStore) InventoryLog(ctx context.Context) ([]domain.InventoryLogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.InventoryLogEntry, len(s.logEntries))
	copy(out, s.logEntries)
	return out, nil
}

func (s *MemoryStore) SetInventoryLog(ctx context.Context, entries []domain.InventoryLogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.checkCapacity(KeyInventoryLog, len(entries)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logEntries = make([]domain.InventoryLogEntry, len(entries))
	copy(s.logEntries, entries)
	return nil
}

func (s *MemoryStore) Customers(ctx context.Context) ([]domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Customer, len(s.customers))
	copy(out, s.customers)
	return out, nil
}

func (s *MemoryStore) SetCustomers(ctx context.Context, customers []domain.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.checkCapacity(KeyCustomers, len(customers)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = make([]domain.Customer, len(customers))
	copy(s.customers, customers)
	return nil
}
