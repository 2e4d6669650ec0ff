package engine

import (
	"context"
	"errors"

	"stockledger/domain"
	"stockledger/store"
)

// Export returns a backup snapshot of all four collections.
func (e *Engine) Export() store.Snapshot {
	return store.Snapshot{
		Products:     e.Products(),
		Orders:       e.Orders(),
		InventoryLog: e.InventoryLog(),
		Customers:    e.Customers(),
	}
}

// Import replaces collections from a snapshot. The merge is non-destructive
// per field: a nil collection in the snapshot leaves the corresponding
// store untouched. Imported products are validated before anything is
// replaced.
func (e *Engine) Import(ctx context.Context, snap store.Snapshot) error {
	for _, p := range snap.Products {
		if err := domain.ValidateProduct(p); err != nil {
			return err
		}
	}

	var err error
	if snap.Products != nil {
		e.products = snap.Products
		err = errors.Join(err, e.persistProducts(ctx))
	}
	if snap.Orders != nil {
		e.orders = snap.Orders
		err = errors.Join(err, e.persistOrders(ctx))
	}
	if snap.InventoryLog != nil {
		e.logEntries = snap.InventoryLog
		err = errors.Join(err, e.persistInventoryLog(ctx))
	}
	if snap.Customers != nil {
		e.customers = snap.Customers
		err = errors.Join(err, e.persistCustomers(ctx))
	}
	return err
}

// ClearAll wipes all four collections, in memory and in the store.
func (e *Engine) ClearAll(ctx context.Context) error {
	e.products = nil
	e.orders = nil
	e.logEntries = nil
	e.customers = nil
	return errors.Join(
		e.persistProducts(ctx),
		e.persistOrders(ctx),
		e.persistInventoryLog(ctx),
		e.persistCustomers(ctx),
	)
}
