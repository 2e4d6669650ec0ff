package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a registry entry. Orders are referenced by id against the
// order ledger rather than embedded; ids that no longer resolve (the order
// was deleted) are skipped during aggregation.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	OrderIDs  []string  `json:"orderIds"`
	CreatedAt time.Time `json:"createdAt"`
}

// CustomerSummary holds the derived aggregates for one customer, recomputed
// from the order ledger on every read.
type CustomerSummary struct {
	CustomerID    string          `json:"customerId"`
	Name          string          `json:"name"`
	TotalOrders   int             `json:"totalOrders"`
	TotalSpending decimal.Decimal `json:"totalSpending"`
	LastOrderDate time.Time       `json:"lastOrderDate"`
}

// AddCustomerRequest carries the caller-supplied fields for a customer add.
type AddCustomerRequest struct {
	Name  string `validate:"required"`
	Email string `validate:"omitempty,email"`
}
