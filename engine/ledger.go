package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"stockledger/domain"
)

// CreateOrder records a sale or return transaction and adjusts catalog
// stock. Every line must reference a product currently in the catalog; the
// product's name is snapshotted into the stored line. The order is a return
// iff any line has a negative quantity, in which case the total's sign is
// flipped: the signed sum is already negative for return lines, so the
// stored total reads as a positive "value returned" while the per-line
// stock adjustment still uses the unnegated quantity.
//
// Stock is decremented by each line's quantity with no floor at zero;
// overdrawing into negative stock is treated as backorder. The ledger is
// persisted before the catalog; the two writes are independent.
func (e *Engine) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.SalesOrder, error) {
	if err := domain.ValidateStruct(req); err != nil {
		return domain.SalesOrder{}, err
	}

	custIdx := -1
	if req.CustomerID != "" {
		for i, c := range e.customers {
			if c.ID == req.CustomerID {
				custIdx = i
				break
			}
		}
		if custIdx < 0 {
			return domain.SalesOrder{}, domain.NewCustomerNotFoundError(req.CustomerID)
		}
	}

	items := make([]domain.OrderItem, 0, len(req.Lines))
	sum := decimal.Zero
	isReturn := false
	for _, line := range req.Lines {
		p, err := e.Product(line.ProductID)
		if err != nil {
			return domain.SalesOrder{}, err
		}
		items = append(items, domain.OrderItem{
			ProductID:   line.ProductID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
		})
		sum = sum.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
		if line.Quantity < 0 {
			isReturn = true
		}
	}

	kind := domain.KindSale
	total := sum
	if isReturn {
		kind = domain.KindReturn
		total = sum.Neg()
	}

	order := domain.SalesOrder{
		ID:        e.newID(),
		Date:      e.now(),
		StoreName: req.StoreName,
		Items:     items,
		Kind:      kind,
		Total:     total,
	}
	e.orders = append(e.orders, order)

	for _, item := range items {
		for i := range e.products {
			if e.products[i].ID == item.ProductID {
				e.products[i].Quantity -= item.Quantity
				break
			}
		}
	}

	if custIdx >= 0 {
		e.customers[custIdx].OrderIDs = append(e.customers[custIdx].OrderIDs, order.ID)
	}

	start := time.Now()
	err := errors.Join(e.persistOrders(ctx), e.persistProducts(ctx))
	if custIdx >= 0 {
		err = errors.Join(err, e.persistCustomers(ctx))
	}
	e.log.Info("order created",
		"order_id", order.ID,
		"kind", string(order.Kind),
		"lines", len(items),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return order, err
}

// ReturnOrder synthesizes a return for an existing order: a second,
// independent order against the same store whose lines are the exact
// negation of the original's. The original order is left untouched.
func (e *Engine) ReturnOrder(ctx context.Context, orderID string) (domain.SalesOrder, error) {
	orig, err := e.Order(orderID)
	if err != nil {
		return domain.SalesOrder{}, err
	}

	lines := make([]domain.OrderLineRequest, 0, len(orig.Items))
	for _, item := range orig.Items {
		lines = append(lines, domain.OrderLineRequest{
			ProductID: item.ProductID,
			Quantity:  -item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return e.CreateOrder(ctx, domain.CreateOrderRequest{
		StoreName: orig.StoreName,
		Lines:     lines,
	})
}

// DeleteOrder reverses the stock effect of an order and removes it from the
// ledger. Reconciliation is the exact inverse of creation: each line's
// quantity is added back, so sale lines restore stock and return lines
// (negative quantities) take their increase away again. Lines whose product
// no longer exists in the catalog are skipped: the order is deleted anyway
// and the unreconciled stock is accepted as lost.
func (e *Engine) DeleteOrder(ctx context.Context, orderID string) error {
	idx := -1
	for i, o := range e.orders {
		if o.ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.NewOrderNotFoundError(orderID)
	}

	order := e.orders[idx]
	for _, item := range order.Items {
		found := false
		for i := range e.products {
			if e.products[i].ID == item.ProductID {
				e.products[i].Quantity += item.Quantity
				found = true
				break
			}
		}
		if !found {
			e.log.Debug("skipping reconciliation for missing product",
				"order_id", orderID, "product_id", item.ProductID)
		}
	}

	e.orders = append(e.orders[:idx], e.orders[idx+1:]...)
	err := errors.Join(e.persistOrders(ctx), e.persistProducts(ctx))
	e.log.Info("order deleted", "order_id", orderID, "kind", string(order.Kind))
	return err
}

// ShareOrder renders a human-readable order summary. Pure formatting, no
// state change.
func ShareOrder(order domain.SalesOrder) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order Details:\n\n")
	fmt.Fprintf(&b, "Store: %s\n", order.StoreName)
	fmt.Fprintf(&b, "Date: %s\n", order.Date.Format("1/2/2006, 3:04:05 PM"))
	fmt.Fprintf(&b, "Type: %s\n", order.Kind)
	fmt.Fprintf(&b, "Total: ₪%s\n\n", order.Total.StringFixed(2))
	b.WriteString("Items:")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "\n- %s: %d x ₪%s", item.ProductName, item.Quantity, item.UnitPrice.StringFixed(2))
	}
	return b.String()
}
