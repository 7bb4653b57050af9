package services

import (
	"context"
	"rosea_server/lib"
	"rosea_server/storage"
	"rosea_server/structs"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// OrderService owns the order ledger: a newest-first list under its own key.
// Orders are append-mostly; nothing ever deletes one, only the status field
// changes after the fact.
type OrderService struct {
	logger      *gecho.Logger
	store       storage.Store
	cartService *CartService
}

func NewOrderService(logger *gecho.Logger, store storage.Store, cartService *CartService) *OrderService {
	return &OrderService{
		logger:      logger,
		store:       store,
		cartService: cartService,
	}
}

func (os *OrderService) Orders(ctx context.Context) []structs.Order {
	return storage.Read(ctx, os.store, storage.KeyOrders, []structs.Order{})
}

// Checkout validates the delivery form, snapshots the owner's cart into a
// new order, prepends it to the ledger and clears the cart. All four
// customer fields must be non-empty after trimming; any blank field rejects
// the whole submission and leaves the cart untouched.
func (os *OrderService) Checkout(ctx context.Context, owner string, userId *uuid.UUID, customer structs.CustomerDetails) (*structs.Order, error) {
	if strings.TrimSpace(customer.FullName) == "" ||
		strings.TrimSpace(customer.Governorate) == "" ||
		strings.TrimSpace(customer.Landmark) == "" ||
		strings.TrimSpace(customer.Phone) == "" {
		return nil, lib.ErrMissingFields
	}

	items := os.cartService.Cart(ctx, owner)
	if len(items) == 0 {
		return nil, lib.ErrEmptyCart
	}

	// Snapshot: the order keeps a copy, not a live reference, so refilling
	// the cart later cannot change it.
	snapshot := make([]structs.CartItem, len(items))
	copy(snapshot, items)
	_, totalPrice := Totals(snapshot)

	order := structs.Order{
		Id:         lib.GenerateOrderID(),
		UserId:     userId,
		Customer:   customer,
		Items:      snapshot,
		TotalPrice: totalPrice,
		Date:       time.Now(),
		Status:     structs.OrderStatusNew,
	}

	orders := append([]structs.Order{order}, os.Orders(ctx)...)
	if err := storage.Write(ctx, os.store, storage.KeyOrders, orders); err != nil {
		return nil, err
	}

	os.cartService.ClearCart(ctx, owner)

	os.logger.Info("Order placed",
		gecho.Field("order_id", order.Id),
		gecho.Field("total_price", order.TotalPrice),
		gecho.Field("items", len(order.Items)),
	)
	return &order, nil
}

// OrdersForUser filters the ledger down to orders linked to the given user.
func (os *OrderService) OrdersForUser(ctx context.Context, userId uuid.UUID) []structs.Order {
	result := []structs.Order{}
	for _, order := range os.Orders(ctx) {
		if order.UserId != nil && *order.UserId == userId {
			result = append(result, order)
		}
	}
	return result
}

// UpdateStatus replaces the status of the matching order. The status must be
// one of the five enumerated values; unlike the UI-only enforcement this
// replaces, the check happens here too.
func (os *OrderService) UpdateStatus(ctx context.Context, orderId string, status structs.OrderStatus) error {
	if !status.Valid() {
		return lib.ErrInvalidStatus
	}

	orders := os.Orders(ctx)
	for i, order := range orders {
		if order.Id != orderId {
			continue
		}

		orders[i].Status = status
		if err := storage.Write(ctx, os.store, storage.KeyOrders, orders); err != nil {
			return err
		}

		os.logger.Debug("Order status updated",
			gecho.Field("order_id", orderId),
			gecho.Field("status", string(status)),
		)
		return nil
	}

	return lib.ErrNotFound
}
