package services

import (
	"context"
	"rosea_server/storage"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
)

// CartService owns the per-owner shopping carts. All carts live in one
// persisted map keyed by owner (user id or anonymous cart token); every
// mutation writes the whole map back. Totals are derived on read, never
// stored.
type CartService struct {
	logger *gecho.Logger
	store  storage.Store
}

func NewCartService(logger *gecho.Logger, store storage.Store) *CartService {
	return &CartService{
		logger: logger,
		store:  store,
	}
}

func (cs *CartService) carts(ctx context.Context) map[string][]structs.CartItem {
	return storage.Read(ctx, cs.store, storage.KeyCarts, map[string][]structs.CartItem{})
}

func (cs *CartService) persist(ctx context.Context, carts map[string][]structs.CartItem) {
	storage.Write(ctx, cs.store, storage.KeyCarts, carts)
}

func (cs *CartService) Cart(ctx context.Context, owner string) []structs.CartItem {
	items := cs.carts(ctx)[owner]
	if items == nil {
		return []structs.CartItem{}
	}
	return items
}

// AddToCart merges by product id: an id already in the cart gets its
// quantity incremented, otherwise a new row is appended. A non-positive
// quantity means "do not add". No stock check happens at this layer.
func (cs *CartService) AddToCart(ctx context.Context, owner string, product structs.Product, quantity int) []structs.CartItem {
	if quantity <= 0 {
		return cs.Cart(ctx, owner)
	}

	carts := cs.carts(ctx)
	items := carts[owner]

	merged := false
	for i, item := range items {
		if item.Id == product.Id {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, structs.CartItem{Product: product, Quantity: quantity})
	}

	carts[owner] = items
	cs.persist(ctx, carts)
	return items
}

// UpdateQuantity adjusts the matching row's quantity by delta. The floor is
// zero, and a row reaching zero is removed rather than left behind.
func (cs *CartService) UpdateQuantity(ctx context.Context, owner string, productId, delta int) []structs.CartItem {
	carts := cs.carts(ctx)
	items := carts[owner]

	for i, item := range items {
		if item.Id != productId {
			continue
		}

		next := item.Quantity + delta
		if next <= 0 {
			items = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity = next
		}

		carts[owner] = items
		cs.persist(ctx, carts)
		break
	}

	return items
}

func (cs *CartService) RemoveFromCart(ctx context.Context, owner string, productId int) []structs.CartItem {
	carts := cs.carts(ctx)
	items := carts[owner]

	kept := items[:0]
	for _, item := range items {
		if item.Id != productId {
			kept = append(kept, item)
		}
	}

	carts[owner] = kept
	cs.persist(ctx, carts)
	return kept
}

// ClearCart drops the owner's cart entirely (called after checkout).
func (cs *CartService) ClearCart(ctx context.Context, owner string) {
	carts := cs.carts(ctx)
	if _, ok := carts[owner]; !ok {
		return
	}
	delete(carts, owner)
	cs.persist(ctx, carts)
}

// View returns the cart with its derived totals.
func (cs *CartService) View(ctx context.Context, owner string) structs.CartView {
	items := cs.Cart(ctx, owner)
	totalItems, totalPrice := Totals(items)
	return structs.CartView{
		Items:      items,
		TotalItems: totalItems,
		TotalPrice: totalPrice,
	}
}

// Totals computes the quantity sum and price sum of a cart snapshot.
func Totals(items []structs.CartItem) (int, int64) {
	totalItems := 0
	var totalPrice int64
	for _, item := range items {
		totalItems += item.Quantity
		totalPrice += item.Price * int64(item.Quantity)
	}
	return totalItems, totalPrice
}
