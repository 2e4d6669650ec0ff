package engine

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockledger/domain"
	"stockledger/store"
)

func TestExportImport(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip into a fresh engine", func(t *testing.T) {
		e := newTestEngine(t, store.NewMemoryStore())
		p := mustAddProduct(t, e, "Widget", 10, 5)
		_, err := e.CreateOrder(ctx, domain.CreateOrderRequest{
			StoreName: "Store A",
			Lines:     []domain.OrderLineRequest{{ProductID: p.ID, Quantity: 2, UnitPrice: decimal.NewFromInt(12)}},
		})
		require.NoError(t, err)

		snap := e.Export()
		require.Len(t, snap.Products, 1)
		require.Len(t, snap.Orders, 1)
		require.Len(t, snap.InventoryLog, 1)

		fresh := newTestEngine(t, store.NewMemoryStore())
		require.NoError(t, fresh.Import(ctx, snap))
		assert.Len(t, fresh.Products(), 1)
		assert.Len(t, fresh.Orders(), 1)
		assert.Len(t, fresh.InventoryLog(), 1)
	})

	t.Run("absent collections are left untouched", func(t *testing.T) {
		e := newTestEngine(t, store.NewMemoryStore())
		p := mustAddProduct(t, e, "Widget", 10, 5)
		_, err := e.CreateOrder(ctx, domain.CreateOrderRequest{
			StoreName: "Store A",
			Lines:     []domain.OrderLineRequest{{ProductID: p.ID, Quantity: 2, UnitPrice: decimal.NewFromInt(12)}},
		})
		require.NoError(t, err)

		// products-only snapshot
		require.NoError(t, e.Import(ctx, store.Snapshot{
			Products: []domain.Product{{ID: "x1", Name: "Imported", UnitCost: decimal.NewFromInt(1)}},
		}))
		assert.Len(t, e.Products(), 1)
		assert.Equal(t, "Imported", e.Products()[0].Name)
		assert.Len(t, e.Orders(), 1, "ledger untouched")
		assert.Len(t, e.InventoryLog(), 1, "audit log untouched")
	})

	t.Run("invalid products reject the whole import", func(t *testing.T) {
		e := newTestEngine(t, store.NewMemoryStore())
		mustAddProduct(t, e, "Widget", 10, 5)

		err := e.Import(ctx, store.Snapshot{
			Products: []domain.Product{{ID: "x1", Name: ""}},
		})
		assert.True(t, domain.IsValidationError(err))
		assert.Equal(t, "Widget", e.Products()[0].Name, "nothing replaced")
	})
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	e := newTestEngine(t, st)
	p := mustAddProduct(t, e, "Widget", 10, 5)
	_, err := e.CreateOrder(ctx, domain.CreateOrderRequest{
		StoreName: "Store A",
		Lines:     []domain.OrderLineRequest{{ProductID: p.ID, Quantity: 1, UnitPrice: decimal.NewFromInt(1)}},
	})
	require.NoError(t, err)
	_, err = e.AddCustomer(ctx, domain.AddCustomerRequest{Name: "Dana"})
	require.NoError(t, err)

	require.NoError(t, e.ClearAll(ctx))
	assert.Empty(t, e.Products())
	assert.Empty(t, e.Orders())
	assert.Empty(t, e.InventoryLog())
	assert.Empty(t, e.Customers())

	stored, err := st.Products(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored, "the wipe is persisted")
}
