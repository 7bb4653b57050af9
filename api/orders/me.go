package orders

import (
	"net/http"

	"rosea_server/api/middleware"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) FetchMyOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("error.auth.notSignedIn"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(orm.orderService.OrdersForUser(r.Context(), claims.Sub)),
		gecho.Send(),
	)
}
