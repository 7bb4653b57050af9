package orders

import (
	"errors"
	"net/http"

	"rosea_server/handling"
	"rosea_server/lib"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
)

// CreateOrder turns the caller's cart into an order. Guests can check out
// too; their order simply has no linked user.
func (orm *OrderRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CheckoutRequest](r)
	if err != nil {
		handling.HandleError(w, err)
		return
	}

	owner, userId := lib.ResolveCartOwner(w, r, orm.authService.GetAccessTokenSecret())

	order, err := orm.orderService.Checkout(r.Context(), owner, userId, body.Customer)
	if err != nil {
		switch {
		case errors.Is(err, lib.ErrMissingFields):
			gecho.BadRequest(w, gecho.WithMessage(msgMissingFields), gecho.Send())
		case errors.Is(err, lib.ErrEmptyCart):
			gecho.BadRequest(w, gecho.WithMessage(msgEmptyCart), gecho.Send())
		default:
			handling.HandleError(w, err)
		}
		return
	}

	gecho.Success(w,
		gecho.WithMessage(msgOrderPlaced),
		gecho.WithData(order),
		gecho.Send(),
	)
}
