package application

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/storefront-state/internal/domain/entity"
	"github.com/oksasatya/storefront-state/internal/storage"
	"github.com/oksasatya/storefront-state/pkg/notify"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestCart(t *testing.T) (*CartStore, *storage.MemoryAdapter) {
	t.Helper()
	adapter := storage.NewMemoryAdapter()
	return NewCartStore(context.Background(), adapter, testLogger(), notify.Nop{}), adapter
}

func headphones() entity.CartItem {
	return entity.CartItem{
		ProductID: "prod-1",
		Name:      "Headphones",
		UnitPrice: 50,
		StoreID:   "store-1",
		StoreName: "Audio House",
		Currency:  "USD",
	}
}

func cable() entity.CartItem {
	return entity.CartItem{
		ProductID: "prod-2",
		Name:      "Cable",
		UnitPrice: 9.5,
		StoreID:   "store-2",
		StoreName: "Cable Corner",
		Currency:  "USD",
	}
}

func TestCartAddMergesByProductID(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart(t)

	cart.Add(ctx, headphones(), 2)
	cart.Add(ctx, headphones(), 3)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, cart.TotalItems())
}

func TestCartMergeKeepsExistingLine(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart(t)

	cart.Add(ctx, headphones(), 1)

	changed := headphones()
	changed.Name = "Renamed"
	changed.UnitPrice = 999
	cart.Add(ctx, changed, 1)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Headphones", items[0].Name)
	assert.Equal(t, float64(50), items[0].UnitPrice)
}

func TestCartDerivedTotals(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart(t)

	cart.Add(ctx, headphones(), 2)
	cart.Add(ctx, cable(), 3)

	assert.Equal(t, 5, cart.TotalItems())
	assert.InDelta(t, 2*50+3*9.5, cart.Subtotal(), 1e-9)

	cart.SetQuantity(ctx, "prod-1", 1)
	assert.Equal(t, 4, cart.TotalItems())
	assert.InDelta(t, 50+3*9.5, cart.Subtotal(), 1e-9)

	cart.Remove(ctx, "prod-2")
	assert.Equal(t, 1, cart.TotalItems())
	assert.InDelta(t, 50, cart.Subtotal(), 1e-9)
}

func TestCartSetQuantityZeroRemoves(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart(t)

	cart.Add(ctx, headphones(), 2)
	cart.SetQuantity(ctx, "prod-1", 0)

	assert.Empty(t, cart.Items())
	assert.Equal(t, 0, cart.TotalItems())
	assert.Zero(t, cart.Subtotal())
}

func TestCartClear(t *testing.T) {
	ctx := context.Background()
	cart, _ := newTestCart(t)

	cart.Add(ctx, headphones(), 1)
	cart.Add(ctx, cable(), 1)
	cart.Clear(ctx)

	assert.Empty(t, cart.Items())
}

func TestCartMutationsPersist(t *testing.T) {
	ctx := context.Background()
	cart, adapter := newTestCart(t)

	cart.Add(ctx, headphones(), 2)

	reloaded := NewCartStore(ctx, adapter, testLogger(), notify.Nop{})
	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "prod-1", items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartCorruptSnapshotStartsEmpty(t *testing.T) {
	ctx := context.Background()
	adapter := storage.NewMemoryAdapter()
	require.NoError(t, adapter.Set(ctx, CartSnapshotKey, "{not valid json"))

	cart := NewCartStore(ctx, adapter, testLogger(), notify.Nop{})
	assert.Empty(t, cart.Items())
	assert.Equal(t, 0, cart.TotalItems())
}
