package engine

import (
	"context"

	"github.com/shopspring/decimal"

	"stockledger/domain"
)

// AddCustomer registers a customer with an empty order list.
func (e *Engine) AddCustomer(ctx context.Context, req domain.AddCustomerRequest) (domain.Customer, error) {
	if err := domain.ValidateStruct(req); err != nil {
		return domain.Customer{}, err
	}

	c := domain.Customer{
		ID:        e.newID(),
		Name:      req.Name,
		Email:     req.Email,
		OrderIDs:  []string{},
		CreatedAt: e.now(),
	}
	e.customers = append(e.customers, c)
	return c, e.persistCustomers(ctx)
}

// Customers returns a copy of the customer registry in insertion order.
func (e *Engine) Customers() []domain.Customer {
	out := make([]domain.Customer, len(e.customers))
	copy(out, e.customers)
	return out
}

// Customer returns the registered customer with the given id.
func (e *Engine) Customer(id string) (domain.Customer, error) {
	for _, c := range e.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Customer{}, domain.NewCustomerNotFoundError(id)
}

// CustomerSummary recomputes a customer's aggregates from the order ledger.
// Order ids that no longer resolve (the order was deleted) are skipped.
// The walk is O(orders) on every read; nothing is cached.
func (e *Engine) CustomerSummary(id string) (domain.CustomerSummary, error) {
	c, err := e.Customer(id)
	if err != nil {
		return domain.CustomerSummary{}, err
	}

	byID := make(map[string]domain.SalesOrder, len(e.orders))
	for _, o := range e.orders {
		byID[o.ID] = o
	}

	summary := domain.CustomerSummary{
		CustomerID:    c.ID,
		Name:          c.Name,
		TotalSpending: decimal.Zero,
	}
	for _, orderID := range c.OrderIDs {
		o, ok := byID[orderID]
		if !ok {
			continue
		}
		summary.TotalOrders++
		summary.TotalSpending = summary.TotalSpending.Add(o.Total)
		if o.Date.After(summary.LastOrderDate) {
			summary.LastOrderDate = o.Date
		}
	}
	return summary, nil
}
