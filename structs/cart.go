package structs

// CartItem is a product snapshot plus a quantity. Cart identity is the
// product id: adding an id already in the cart merges quantities.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

type AddToCartRequest struct {
	ProductId int `json:"product_id" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"required,gt=0"`
}

type UpdateQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// CartView is the cart plus its derived totals, computed on read.
type CartView struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice int64      `json:"total_price"`
}
