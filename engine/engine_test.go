package engine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockledger/domain"
	"stockledger/store"
)

// newTestEngine builds an engine over st with deterministic ids (id-1,
// id-2, ...) and a clock that advances one minute per call.
func newTestEngine(t *testing.T, st store.Store) *Engine {
	t.Helper()
	e, err := New(context.Background(), st)
	require.NoError(t, err)

	n := 0
	e.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	base := time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)
	tick := 0
	e.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	return e
}

func mustAddProduct(t *testing.T, e *Engine, name string, cost int64, qty int) domain.Product {
	t.Helper()
	p, err := e.AddProduct(context.Background(), domain.AddProductRequest{
		Name:     name,
		UnitCost: decimal.NewFromInt(cost),
		Quantity: qty,
	})
	require.NoError(t, err)
	return p
}

func TestNew_LoadsExistingCollections(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.SetProducts(ctx, []domain.Product{{ID: "p1", Name: "Widget", Quantity: 5}}))
	require.NoError(t, st.SetOrders(ctx, []domain.SalesOrder{{ID: "o1", StoreName: "S", Kind: domain.KindSale}}))

	e := newTestEngine(t, st)
	assert.Len(t, e.Products(), 1)
	assert.Len(t, e.Orders(), 1)

	p, err := e.Product("p1")
	require.NoError(t, err)
	assert.Equal(t, "Widget", p.Name)
}

// The full walk-through: add product, sell, return, delete the sale.
func TestScenario_SellReturnDelete(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, store.NewMemoryStore())

	// catalog empty -> add Widget (cost 10, qty 5)
	widget := mustAddProduct(t, e, "Widget", 10, 5)
	require.Len(t, e.Products(), 1)
	assert.Equal(t, 5, widget.Quantity)
	log := e.InventoryLog()
	require.Len(t, log, 1)
	assert.Equal(t, domain.ActionAdd, log[0].Action)

	// sell 2 at 12
	sale, err := e.CreateOrder(ctx, domain.CreateOrderRequest{
		StoreName: "Store A",
		Lines: []domain.OrderLineRequest{
			{ProductID: widget.ID, Quantity: 2, UnitPrice: decimal.NewFromInt(12)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.KindSale, sale.Kind)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(24)), "total = %s", sale.Total)

	p, _ := e.Product(widget.ID)
	assert.Equal(t, 3, p.Quantity)

	// return the sale: a second order with negated lines, positive total
	ret, err := e.ReturnOrder(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KindReturn, ret.Kind)
	assert.Equal(t, -2, ret.Items[0].Quantity)
	assert.True(t, ret.Total.Equal(decimal.NewFromInt(24)), "total = %s", ret.Total)

	p, _ = e.Product(widget.ID)
	assert.Equal(t, 5, p.Quantity)

	// original order is untouched and still in the ledger
	orig, err := e.Order(sale.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, orig.Items[0].Quantity)
	assert.Len(t, e.Orders(), 2)

	// delete the sale order: its stock effect is reversed
	require.NoError(t, e.DeleteOrder(ctx, sale.ID))
	p, _ = e.Product(widget.ID)
	assert.Equal(t, 7, p.Quantity)
	assert.Len(t, e.Orders(), 1)

	// the audit log saw none of this: catalog-level events only
	assert.Len(t, e.InventoryLog(), 1)
}

func TestPersistenceFailure_MemoryStaysAuthoritative(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, store.NewBoundedMemoryStore(1))

	mustAddProduct(t, e, "First", 1, 1)

	// the second add overflows the store; the mutation must survive
	p, err := e.AddProduct(ctx, domain.AddProductRequest{
		Name:     "Second",
		UnitCost: decimal.NewFromInt(2),
		Quantity: 2,
	})
	require.Error(t, err)
	assert.True(t, domain.IsPersistenceError(err))
	assert.True(t, domain.IsStorageCapacityError(err))
	assert.NotEmpty(t, p.ID, "result is still returned on a persist failure")

	assert.Len(t, e.Products(), 2, "in-memory state is the source of truth")
	assert.Len(t, e.InventoryLog(), 2)
}

func TestRecent_TailsEveryCollection(t *testing.T) {
	e := newTestEngine(t, store.NewMemoryStore())
	for i := 0; i < 5; i++ {
		mustAddProduct(t, e, fmt.Sprintf("P%d", i), 1, 1)
	}

	ov := e.Recent(3)
	require.Len(t, ov.LatestProducts, 3)
	assert.Equal(t, "P4", ov.LatestProducts[2].Name)
	assert.Len(t, ov.RecentLog, 3)
	assert.Empty(t, ov.RecentOrders)
	assert.Empty(t, ov.RecentCustomers)

	// asking for more than exists returns everything
	assert.Len(t, e.Recent(100).LatestProducts, 5)
}

func TestAccessors_ReturnCopies(t *testing.T) {
	e := newTestEngine(t, store.NewMemoryStore())
	mustAddProduct(t, e, "Widget", 10, 5)

	products := e.Products()
	products[0].Name = "tampered"
	p, _ := e.Product(products[0].ID)
	assert.Equal(t, "Widget", p.Name)

	log := e.InventoryLog()
	log[0].Action = domain.ActionRemove
	assert.Equal(t, domain.ActionAdd, e.InventoryLog()[0].Action)
}
