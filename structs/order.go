package structs

import (
	"time"

	"github.com/google/uuid"
)

// CustomerDetails is the checkout delivery form. All four fields are
// mandatory; beyond non-empty there is no format validation.
type CustomerDetails struct {
	FullName    string `json:"full_name"`
	Governorate string `json:"governorate"`
	Landmark    string `json:"landmark"`
	Phone       string `json:"phone"`
}

// Order is immutable once written except for its status. Customer and items
// are point-in-time copies of the checkout form and cart, not live
// references.
type Order struct {
	Id         string          `json:"id"`
	UserId     *uuid.UUID      `json:"user_id,omitempty"` // nil for guest orders
	Customer   CustomerDetails `json:"customer"`
	Items      []CartItem      `json:"items"`
	TotalPrice int64           `json:"total_price"`
	Date       time.Time       `json:"date"`
	Status     OrderStatus     `json:"status"`
}

type CheckoutRequest struct {
	Customer CustomerDetails `json:"customer"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new processing shipped completed cancelled"`
}

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
