package admin

import (
	"errors"
	"net/http"

	"rosea_server/handling"
	"rosea_server/lib"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func (arm *AdminRoutesManager) FetchOrders(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(arm.orderService.Orders(r.Context())),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderId := chi.URLParam(r, "id")
	if orderId == "" {
		gecho.BadRequest(w, gecho.WithMessage(msgOrderNotFound), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateOrderStatusRequest](r)
	if err != nil {
		handling.HandleError(w, err)
		return
	}

	if err := arm.orderService.UpdateStatus(r.Context(), orderId, structs.OrderStatus(body.Status)); err != nil {
		switch {
		case errors.Is(err, lib.ErrInvalidStatus):
			gecho.BadRequest(w, gecho.WithMessage(msgInvalidOrderStatus), gecho.Send())
		case errors.Is(err, lib.ErrNotFound):
			gecho.NotFound(w, gecho.WithMessage(msgOrderNotFound), gecho.Send())
		default:
			handling.HandleError(w, err)
		}
		return
	}

	arm.logger.Info("Order status updated",
		gecho.Field("order_id", orderId),
		gecho.Field("status", body.Status),
	)

	gecho.Success(w,
		gecho.WithMessage("success.orders.statusUpdated"),
		gecho.Send(),
	)
}
