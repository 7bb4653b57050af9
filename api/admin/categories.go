package admin

import (
	"errors"
	"net/http"
	"net/url"

	"rosea_server/handling"
	"rosea_server/lib"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func (arm *AdminRoutesManager) CreateCategory(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CategoryRequest](r)
	if err != nil {
		handling.HandleError(w, err)
		return
	}

	if err := arm.catalogService.AddCategory(r.Context(), body.Name); err != nil {
		switch {
		case errors.Is(err, lib.ErrMissingFields):
			gecho.BadRequest(w, gecho.WithMessage(msgCategoryNameRequired), gecho.Send())
		case errors.Is(err, lib.ErrConflict):
			gecho.Conflict(w, gecho.WithMessage(msgCategoryExists), gecho.Send())
		default:
			handling.HandleError(w, err)
		}
		return
	}

	gecho.Success(w,
		gecho.WithData(arm.catalogService.Categories(r.Context())),
		gecho.Send(),
	)
}

// DeleteCategory removes the category name only. Products keep whatever
// category string they had; a dangling category just stops matching the
// listing filter options.
func (arm *AdminRoutesManager) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		gecho.BadRequest(w, gecho.WithMessage(msgCategoryNameRequired), gecho.Send())
		return
	}

	arm.catalogService.DeleteCategory(r.Context(), name)

	gecho.Success(w,
		gecho.WithData(arm.catalogService.Categories(r.Context())),
		gecho.Send(),
	)
}
