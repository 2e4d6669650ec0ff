// Package engine implements the inventory ledger and order-transaction
// core: the product catalog, the append-only inventory audit log, the
// sales-order ledger, and the derived customer aggregates.
//
// The engine owns the in-memory collections and synchronously persists
// each collection it touches. Operations run to completion one at a time;
// there is no internal queueing or batching. When only the durable write
// fails, the in-memory mutation is kept as the source of truth: the
// operation returns its result together with the storage error so callers
// can surface a warning instead of failing.
package engine

import (
	"context"
	"log/slog"
	"time"

	"stockledger/domain"
	"stockledger/store"
	"stockledger/util"
)

// Engine is the single mutation authority for all four collections. Only
// order transactions and catalog add/remove may change product quantities.
type Engine struct {
	st  store.Store
	log *slog.Logger

	products   []domain.Product
	orders     []domain.SalesOrder
	logEntries []domain.InventoryLogEntry
	customers  []domain.Customer

	now   func() time.Time
	newID func() string
}

// New constructs an Engine backed by st and loads all four collections.
func New(ctx context.Context, st store.Store) (*Engine, error) {
	e := &Engine{
		st:    st,
		log:   slog.Default(),
		now:   time.Now,
		newID: util.NewID,
	}
	var err error
	if e.products, err = st.Products(ctx); err != nil {
		return nil, err
	}
	if e.orders, err = st.Orders(ctx); err != nil {
		return nil, err
	}
	if e.logEntries, err = st.InventoryLog(ctx); err != nil {
		return nil, err
	}
	if e.customers, err = st.Customers(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) persistProducts(ctx context.Context) error {
	if err := e.st.SetProducts(ctx, e.products); err != nil {
		e.log.Warn("persisting products failed, in-memory state kept", "error", err)
		return domain.NewPersistenceError(err)
	}
	return nil
}

func (e *Engine) persistOrders(ctx context.Context) error {
	if err := e.st.SetOrders(ctx, e.orders); err != nil {
		e.log.Warn("persisting orders failed, in-memory state kept", "error", err)
		return domain.NewPersistenceError(err)
	}
	return nil
}

func (e *Engine) persistInventoryLog(ctx context.Context) error {
	if err := e.st.SetInventoryLog(ctx, e.logEntries); err != nil {
		e.log.Warn("persisting inventory log failed, in-memory state kept", "error", err)
		return domain.NewPersistenceError(err)
	}
	return nil
}

func (e *Engine) persistCustomers(ctx context.Context) error {
	if err := e.st.SetCustomers(ctx, e.customers); err != nil {
		e.log.Warn("persisting customers failed, in-memory state kept", "error", err)
		return domain.NewPersistenceError(err)
	}
	return nil
}

// Products returns a copy of the catalog in insertion order.
func (e *Engine) Products() []domain.Product {
	out := make([]domain.Product, len(e.products))
	copy(out, e.products)
	return out
}

// Product returns the catalog product with the given id.
func (e *Engine) Product(id string) (domain.Product, error) {
	for _, p := range e.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.NewProductNotFoundError(id)
}

// Orders returns a copy of the ledger in insertion order. Any chronological
// display sorting is the caller's concern.
func (e *Engine) Orders() []domain.SalesOrder {
	out := make([]domain.SalesOrder, len(e.orders))
	copy(out, e.orders)
	return out
}

// Order returns the ledger order with the given id.
func (e *Engine) Order(id string) (domain.SalesOrder, error) {
	for _, o := range e.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.SalesOrder{}, domain.NewOrderNotFoundError(id)
}

// InventoryLog returns a copy of the audit log in append order.
func (e *Engine) InventoryLog() []domain.InventoryLogEntry {
	out := make([]domain.InventoryLogEntry, len(e.logEntries))
	copy(out, e.logEntries)
	return out
}

// Overview is the dashboard view: the most recent entries of each
// collection, newest last.
type Overview struct {
	RecentOrders    []domain.SalesOrder        `json:"recentSales"`
	LatestProducts  []domain.Product           `json:"latestProducts"`
	RecentLog       []domain.InventoryLogEntry `json:"recentInventory"`
	RecentCustomers []domain.Customer          `json:"recentCustomers"`
}

// Recent returns the last n entries of every collection.
func (e *Engine) Recent(n int) Overview {
	return Overview{
		RecentOrders:    tail(e.orders, n),
		LatestProducts:  tail(e.products, n),
		RecentLog:       tail(e.logEntries, n),
		RecentCustomers: tail(e.customers, n),
	}
}

func tail[T any](list []T, n int) []T {
	if n > len(list) {
		n = len(list)
	}
	out := make([]T, n)
	copy(out, list[len(list)-n:])
	return out
}
