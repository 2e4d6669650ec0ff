// Package domain defines core business types and interfaces.
package domain

import "github.com/shopspring/decimal"

// Product represents a sellable catalog product and its stock level.
// Quantity is signed: orders may overdraw stock below zero (backorder).
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	UnitCost      decimal.Decimal `json:"price"`
	UnitSalePrice decimal.Decimal `json:"salesPrice"`
	Quantity      int             `json:"quantity"`
}

// AddProductRequest carries the caller-supplied fields for a catalog add.
// The new product's sale price defaults to its unit cost.
type AddProductRequest struct {
	Name     string          `validate:"required"`
	UnitCost decimal.Decimal `validate:"dgte0"`
	Quantity int             `validate:"gte=0"`
}

// UpdateProductRequest is a discriminated per-field edit: only fields whose
// Set flag is true are applied, and the whole product is re-validated after.
type UpdateProductRequest struct {
	SetName          bool
	Name             string
	SetUnitCost      bool
	UnitCost         decimal.Decimal
	SetUnitSalePrice bool
	UnitSalePrice    decimal.Decimal
}

// ValidateProduct checks invariants that must hold for any stored product.
// Stock quantity is deliberately unchecked; see Product.
func ValidateProduct(p Product) error {
	if p.ID == "" {
		return NewValidationError("id", "cannot be empty", p.ID)
	}
	if p.Name == "" {
		return NewValidationError("name", "cannot be empty", p.Name)
	}
	if p.UnitCost.IsNegative() {
		return NewValidationError("price", "must be non-negative", p.UnitCost)
	}
	if p.UnitSalePrice.IsNegative() {
		return NewValidationError("salesPrice", "must be non-negative", p.UnitSalePrice)
	}
	return nil
}
