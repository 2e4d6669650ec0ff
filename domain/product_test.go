package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name        string
		product     Product
		expectError bool
		errField    string
	}{
		{
			name: "valid product",
			product: Product{
				ID:            "1",
				Name:          "Widget",
				UnitCost:      decimal.NewFromInt(10),
				UnitSalePrice: decimal.NewFromInt(12),
				Quantity:      5,
			},
			expectError: false,
		},
		{
			name: "empty id",
			product: Product{
				Name:     "Widget",
				UnitCost: decimal.NewFromInt(10),
			},
			expectError: true,
			errField:    "id",
		},
		{
			name: "empty name",
			product: Product{
				ID:       "2",
				UnitCost: decimal.NewFromInt(10),
			},
			expectError: true,
			errField:    "name",
		},
		{
			name: "negative cost",
			product: Product{
				ID:       "3",
				Name:     "Book",
				UnitCost: decimal.NewFromInt(-1),
			},
			expectError: true,
			errField:    "price",
		},
		{
			name: "negative sale price",
			product: Product{
				ID:            "4",
				Name:          "Pen",
				UnitCost:      decimal.NewFromInt(1),
				UnitSalePrice: decimal.NewFromInt(-2),
			},
			expectError: true,
			errField:    "salesPrice",
		},
		{
			name: "negative quantity is allowed as backorder",
			product: Product{
				ID:       "5",
				Name:     "Cable",
				UnitCost: decimal.NewFromInt(1),
				Quantity: -3,
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProduct(tt.product)

			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}

				ve, ok := err.(*ValidationError)
				if !ok {
					t.Fatalf("expected ValidationError, got %T", err)
				}

				if ve.Field != tt.errField {
					t.Fatalf(
						"expected error field %q, got %q",
						tt.errField,
						ve.Field,
					)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
