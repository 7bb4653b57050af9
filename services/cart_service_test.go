package services

import (
	"context"
	"testing"

	"rosea_server/storage"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartService() *CartService {
	return NewCartService(gecho.NewDefaultLogger(), storage.NewMemoryStore())
}

func testProduct(id int, price int64) structs.Product {
	return structs.Product{Id: id, Name: "منتج", Price: price, Category: structs.CategoryTools, Stock: 10}
}

func TestAddToCartMergesByProductId(t *testing.T) {
	cs := newTestCartService()
	ctx := context.Background()

	cs.AddToCart(ctx, "owner", testProduct(1, 1500), 2)
	items := cs.AddToCart(ctx, "owner", testProduct(1, 1500), 3)

	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddToCartIgnoresNonPositiveQuantity(t *testing.T) {
	cs := newTestCartService()
	ctx := context.Background()

	items := cs.AddToCart(ctx, "owner", testProduct(1, 1500), 0)
	assert.Empty(t, items)

	items = cs.AddToCart(ctx, "owner", testProduct(1, 1500), -2)
	assert.Empty(t, items)
}

func TestUpdateQuantityRemovesRowAtZero(t *testing.T) {
	cs := newTestCartService()
	ctx := context.Background()

	cs.AddToCart(ctx, "owner", testProduct(1, 1500), 2)

	items := cs.UpdateQuantity(ctx, "owner", 1, -1)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	items = cs.UpdateQuantity(ctx, "owner", 1, -1)
	assert.Empty(t, items)

	// Unknown product id is a no-op.
	items = cs.UpdateQuantity(ctx, "owner", 99, 1)
	assert.Empty(t, items)
}

func TestCartsAreIsolatedPerOwner(t *testing.T) {
	cs := newTestCartService()
	ctx := context.Background()

	cs.AddToCart(ctx, "alice", testProduct(1, 1500), 1)
	cs.AddToCart(ctx, "bob", testProduct(2, 2000), 4)

	assert.Len(t, cs.Cart(ctx, "alice"), 1)
	require.Len(t, cs.Cart(ctx, "bob"), 1)
	assert.Equal(t, 2, cs.Cart(ctx, "bob")[0].Id)

	cs.ClearCart(ctx, "alice")
	assert.Empty(t, cs.Cart(ctx, "alice"))
	assert.Len(t, cs.Cart(ctx, "bob"), 1)
}

func TestViewComputesTotals(t *testing.T) {
	cs := newTestCartService()
	ctx := context.Background()

	cs.AddToCart(ctx, "owner", testProduct(1, 1500), 2)
	cs.AddToCart(ctx, "owner", testProduct(2, 2000), 3)

	view := cs.View(ctx, "owner")
	assert.Equal(t, 5, view.TotalItems)
	assert.Equal(t, int64(2*1500+3*2000), view.TotalPrice)
}

func TestRemoveFromCart(t *testing.T) {
	cs := newTestCartService()
	ctx := context.Background()

	cs.AddToCart(ctx, "owner", testProduct(1, 1500), 2)
	cs.AddToCart(ctx, "owner", testProduct(2, 2000), 1)

	items := cs.RemoveFromCart(ctx, "owner", 1)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Id)
}
