package services

import (
	"context"
	"strings"
	"testing"

	"rosea_server/lib"
	"rosea_server/storage"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrderService() (*OrderService, *CartService) {
	logger := gecho.NewDefaultLogger()
	store := storage.NewMemoryStore()
	cartService := NewCartService(logger, store)
	return NewOrderService(logger, store, cartService), cartService
}

func validCustomer() structs.CustomerDetails {
	return structs.CustomerDetails{
		FullName:    "زهراء علي",
		Governorate: "بغداد",
		Landmark:    "قرب الجامعة",
		Phone:       "07700000000",
	}
}

func TestCheckoutHappyPath(t *testing.T) {
	os, carts := newTestOrderService()
	ctx := context.Background()

	carts.AddToCart(ctx, "owner", testProduct(1, 1500), 2)

	order, err := os.Checkout(ctx, "owner", nil, validCustomer())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.Id, "ORD-"))
	assert.Equal(t, structs.OrderStatusNew, order.Status)
	assert.Equal(t, int64(3000), order.TotalPrice)
	assert.Nil(t, order.UserId)

	// Checkout empties the cart.
	assert.Empty(t, carts.Cart(ctx, "owner"))

	// The ledger is newest-first.
	orders := os.Orders(ctx)
	require.Len(t, orders, 1)
	assert.Equal(t, order.Id, orders[0].Id)
}

func TestCheckoutRejectsBlankFieldsAndKeepsCart(t *testing.T) {
	os, carts := newTestOrderService()
	ctx := context.Background()

	carts.AddToCart(ctx, "owner", testProduct(1, 1500), 1)

	customer := validCustomer()
	customer.Phone = "   "

	_, err := os.Checkout(ctx, "owner", nil, customer)
	assert.ErrorIs(t, err, lib.ErrMissingFields)

	// A rejected submission leaves the cart as it was.
	assert.Len(t, carts.Cart(ctx, "owner"), 1)
	assert.Empty(t, os.Orders(ctx))
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	os, _ := newTestOrderService()

	_, err := os.Checkout(context.Background(), "owner", nil, validCustomer())
	assert.ErrorIs(t, err, lib.ErrEmptyCart)
}

func TestCheckoutSnapshotsCartItems(t *testing.T) {
	os, carts := newTestOrderService()
	ctx := context.Background()

	carts.AddToCart(ctx, "owner", testProduct(1, 1500), 2)
	order, err := os.Checkout(ctx, "owner", nil, validCustomer())
	require.NoError(t, err)

	// Refilling the cart after checkout must not change the placed order.
	carts.AddToCart(ctx, "owner", testProduct(1, 1500), 9)

	stored := os.Orders(ctx)[0]
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.Equal(t, order.TotalPrice, stored.TotalPrice)
}

func TestOrdersForUser(t *testing.T) {
	os, carts := newTestOrderService()
	ctx := context.Background()
	userId := uuid.New()

	carts.AddToCart(ctx, userId.String(), testProduct(1, 1500), 1)
	_, err := os.Checkout(ctx, userId.String(), &userId, validCustomer())
	require.NoError(t, err)

	carts.AddToCart(ctx, "guest-token", testProduct(2, 2000), 1)
	_, err = os.Checkout(ctx, "guest-token", nil, validCustomer())
	require.NoError(t, err)

	mine := os.OrdersForUser(ctx, userId)
	require.Len(t, mine, 1)
	assert.Equal(t, userId, *mine[0].UserId)

	assert.Empty(t, os.OrdersForUser(ctx, uuid.New()))
}

func TestUpdateStatus(t *testing.T) {
	os, carts := newTestOrderService()
	ctx := context.Background()

	carts.AddToCart(ctx, "owner", testProduct(1, 1500), 1)
	order, err := os.Checkout(ctx, "owner", nil, validCustomer())
	require.NoError(t, err)

	require.NoError(t, os.UpdateStatus(ctx, order.Id, structs.OrderStatusShipped))
	assert.Equal(t, structs.OrderStatusShipped, os.Orders(ctx)[0].Status)

	assert.ErrorIs(t, os.UpdateStatus(ctx, order.Id, structs.OrderStatus("bogus")), lib.ErrInvalidStatus)
	assert.ErrorIs(t, os.UpdateStatus(ctx, "ORD-unknown", structs.OrderStatusCompleted), lib.ErrNotFound)
}
