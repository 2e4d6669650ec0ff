// Package store provides storage backends for the stock ledger.
//
// The contract follows the persistence boundary of the system: four
// independently keyed collections, each read and written as a whole
// sequence. There is no cross-collection transaction; callers that update
// several collections perform sequential writes and accept that an
// interruption between them can desynchronize the stores.
package store

import (
	"context"

	"stockledger/domain"
)

// Storage keys, one per collection.
const (
	KeyProducts     = "inventory_products"
	KeyOrders       = "sales_history"
	KeyInventoryLog = "inventory_log"
	KeyCustomers    = "customers"
)

// Store is the persistence interface consumed by the engine. Get methods
// return an empty sequence when nothing has been stored under the key yet.
type Store interface {
	Products(ctx context.Context) ([]domain.Product, error)
	SetProducts(ctx context.Context, products []domain.Product) error
	Orders(ctx context.Context) ([]domain.SalesOrder, error)
	SetOrders(ctx context.Context, orders []domain.SalesOrder) error
	InventoryLog(ctx context.Context) ([]domain.InventoryLogEntry, error)
	SetInventoryLog(ctx context.Context, entries []domain.InventoryLogEntry) error
	Customers(ctx context.Context) ([]domain.Customer, error)
	SetCustomers(ctx context.Context, customers []domain.Customer) error
}

// Snapshot is a single backup object containing all four collections.
// A nil collection means "absent": importing such a snapshot leaves the
// corresponding store untouched.
type Snapshot struct {
	Products     []domain.Product           `json:"products,omitempty"`
	Orders       []domain.SalesOrder        `json:"sales,omitempty"`
	InventoryLog []domain.InventoryLogEntry `json:"inventoryLog,omitempty"`
	Customers    []domain.Customer          `json:"customers,omitempty"`
}
