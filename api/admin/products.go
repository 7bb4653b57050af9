package admin

import (
	"net/http"
	"strconv"

	"rosea_server/handling"
	"rosea_server/lib"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func (arm *AdminRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ProductRequest](r)
	if err != nil {
		handling.HandleError(w, err)
		return
	}

	product := arm.catalogService.AddProduct(r.Context(), body)
	arm.logger.Info("Product created",
		gecho.Field("product_id", product.Id),
		gecho.Field("name", product.Name),
	)

	gecho.Success(w,
		gecho.WithData(product),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("error.products.invalidId"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ProductRequest](r)
	if err != nil {
		handling.HandleError(w, err)
		return
	}

	product := structs.Product{
		Id:          id,
		Name:        body.Name,
		Price:       body.Price,
		Category:    body.Category,
		Images:      body.Images,
		Description: body.Description,
		Stock:       body.Stock,
	}

	if !arm.catalogService.UpdateProduct(r.Context(), product) {
		gecho.NotFound(w, gecho.WithMessage(msgProductNotFound), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(product),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("error.products.invalidId"), gecho.Send())
		return
	}

	if !arm.catalogService.DeleteProduct(r.Context(), id) {
		gecho.NotFound(w, gecho.WithMessage(msgProductNotFound), gecho.Send())
		return
	}

	arm.logger.Info("Product deleted", gecho.Field("product_id", id))

	gecho.Success(w,
		gecho.WithMessage("success.products.deleted"),
		gecho.Send(),
	)
}
