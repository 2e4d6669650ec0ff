package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderKind classifies a sales order. An order is a return iff at least one
// of its lines has a negative quantity; the flag is order-level, not per-line.
type OrderKind string

const (
	KindSale   OrderKind = "sale"
	KindReturn OrderKind = "return"
)

// OrderItem is one line within a sales order. ProductName and UnitPrice are
// snapshots taken at order-creation time, so later catalog edits never
// retroactively alter historical orders. A negative Quantity means this line
// returns stock.
type OrderItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"price"`
}

// SalesOrder is one sale or return transaction against a store. Orders are
// immutable after creation except for removal from the ledger.
type SalesOrder struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	StoreName string          `json:"storeName"`
	Items     []OrderItem     `json:"items"`
	Kind      OrderKind       `json:"type"`
	Total     decimal.Decimal `json:"total"`
}

// OrderLineRequest is one caller-supplied line for order creation. Quantity
// may be negative to return stock; UnitPrice is the price this line is
// transacted at, independent of the product's current sale price.
type OrderLineRequest struct {
	ProductID string `validate:"required"`
	Quantity  int
	UnitPrice decimal.Decimal `validate:"dgte0"`
}

// CreateOrderRequest carries the caller-supplied fields for order creation.
// CustomerID, when set, attaches the new order to that customer.
type CreateOrderRequest struct {
	StoreName  string `validate:"required"`
	CustomerID string
	Lines      []OrderLineRequest `validate:"min=1,dive"`
}
