package cart

import (
	"errors"
	"net/http"
	"strconv"

	"rosea_server/handling"
	"rosea_server/lib"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func (crm *CartRoutesManager) FetchCart(w http.ResponseWriter, r *http.Request) {
	owner, _ := lib.ResolveCartOwner(w, r, crm.authService.GetAccessTokenSecret())

	gecho.Success(w,
		gecho.WithData(crm.cartService.View(r.Context(), owner)),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) AddItem(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.AddToCartRequest](r)
	if err != nil {
		handling.HandleError(w, err)
		return
	}

	product, err := crm.catalogService.ProductByID(r.Context(), body.ProductId)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage(msgProductNotFound), gecho.Send())
			return
		}
		handling.HandleError(w, err)
		return
	}

	owner, _ := lib.ResolveCartOwner(w, r, crm.authService.GetAccessTokenSecret())
	crm.cartService.AddToCart(r.Context(), owner, *product, body.Quantity)

	gecho.Success(w,
		gecho.WithData(crm.cartService.View(r.Context(), owner)),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	productId, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("error.cart.invalidProductId"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateQuantityRequest](r)
	if err != nil {
		handling.HandleError(w, err)
		return
	}

	owner, _ := lib.ResolveCartOwner(w, r, crm.authService.GetAccessTokenSecret())
	crm.cartService.UpdateQuantity(r.Context(), owner, productId, body.Delta)

	gecho.Success(w,
		gecho.WithData(crm.cartService.View(r.Context(), owner)),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productId, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("error.cart.invalidProductId"), gecho.Send())
		return
	}

	owner, _ := lib.ResolveCartOwner(w, r, crm.authService.GetAccessTokenSecret())
	crm.cartService.RemoveFromCart(r.Context(), owner, productId)

	gecho.Success(w,
		gecho.WithData(crm.cartService.View(r.Context(), owner)),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) ClearCart(w http.ResponseWriter, r *http.Request) {
	owner, _ := lib.ResolveCartOwner(w, r, crm.authService.GetAccessTokenSecret())
	crm.cartService.ClearCart(r.Context(), owner)

	gecho.Success(w,
		gecho.WithData(crm.cartService.View(r.Context(), owner)),
		gecho.Send(),
	)
}
