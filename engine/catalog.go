package engine

import (
	"context"
	"errors"
	"time"

	"stockledger/domain"
)

// AddProduct creates a catalog product and appends the matching "add" audit
// entry. The sale price defaults to the unit cost. On a persistence failure
// the product is still returned; memory stays authoritative.
func (e *Engine) AddProduct(ctx context.Context, req domain.AddProductRequest) (domain.Product, error) {
	if err := domain.ValidateStruct(req); err != nil {
		return domain.Product{}, err
	}

	p := domain.Product{
		ID:            e.newID(),
		Name:          req.Name,
		UnitCost:      req.UnitCost,
		UnitSalePrice: req.UnitCost,
		Quantity:      req.Quantity,
	}
	e.products = append(e.products, p)
	e.logEntries = append(e.logEntries, domain.InventoryLogEntry{
		ID:          e.newID(),
		Date:        e.now(),
		ProductName: p.Name,
		Quantity:    p.Quantity,
		UnitCost:    p.UnitCost,
		Action:      domain.ActionAdd,
	})

	start := time.Now()
	err := errors.Join(e.persistProducts(ctx), e.persistInventoryLog(ctx))
	e.log.Info("product added",
		"product_id", p.ID,
		"quantity", p.Quantity,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return p, err
}

// UpdateProduct applies a per-field edit to a product and re-validates the
// result. Stock quantity is not editable here; it changes only through
// order transactions.
func (e *Engine) UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) (domain.Product, error) {
	idx := -1
	for i, p := range e.products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Product{}, domain.NewProductNotFoundError(id)
	}

	p := e.products[idx]
	if req.SetName {
		p.Name = req.Name
	}
	if req.SetUnitCost {
		p.UnitCost = req.UnitCost
	}
	if req.SetUnitSalePrice {
		p.UnitSalePrice = req.UnitSalePrice
	}
	if err := domain.ValidateProduct(p); err != nil {
		return domain.Product{}, err
	}

	e.products[idx] = p
	return p, e.persistProducts(ctx)
}

// RemoveProduct deletes a product from the catalog and appends a "remove"
// audit entry capturing its last known quantity and cost. Outstanding
// orders referencing the product are not checked; their snapshots keep the
// history readable.
func (e *Engine) RemoveProduct(ctx context.Context, id string) error {
	idx := -1
	for i, p := range e.products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.NewProductNotFoundError(id)
	}

	p := e.products[idx]
	e.products = append(e.products[:idx], e.products[idx+1:]...)
	e.logEntries = append(e.logEntries, domain.InventoryLogEntry{
		ID:          e.newID(),
		Date:        e.now(),
		ProductName: p.Name,
		Quantity:    p.Quantity,
		UnitCost:    p.UnitCost,
		Action:      domain.ActionRemove,
	})

	err := errors.Join(e.persistProducts(ctx), e.persistInventoryLog(ctx))
	e.log.Info("product removed", "product_id", id, "last_quantity", p.Quantity)
	return err
}
