package products

import (
	"errors"
	"net/http"
	"rosea_server/handling"
	"rosea_server/lib"
	"rosea_server/services"
	"strconv"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// FetchProducts handles GET /products with category, free-text and sort
// filtering. The pipeline is pure and re-derived per request.
func (p *ProductRoutesManager) FetchProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := handling.ParseProductFilter(r)
	if err != nil {
		p.logger.Warn("Invalid query parameters", "error", err)
		gecho.BadRequest(w,
			gecho.WithMessage("error.invalidQueryParameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	all := p.catalogService.Products(ctx)
	visible := services.FilterProducts(all, *filter)

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": visible,
			"filters": map[string]any{
				"category": filter.Category,
				"q":        filter.Query,
				"sort":     filter.Sort,
			},
			"meta": map[string]any{
				"count": len(visible),
				"total": len(all),
			},
		}),
		gecho.Send(),
	)
}

// FetchProductByID handles GET /products/{id} to fetch a single product
func (p *ProductRoutesManager) FetchProductByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		p.logger.Warn("Invalid product ID format", "id", chi.URLParam(r, "id"))
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	product, err := p.catalogService.ProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.Send(),
			)
			return
		}

		p.logger.Error("Failed to fetch product by ID", "id", id, "error", err)
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToFetchOne"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product": product,
		}),
		gecho.Send(),
	)
}

// FetchCategories handles GET /categories
func (p *ProductRoutesManager) FetchCategories(w http.ResponseWriter, r *http.Request) {
	categories := p.catalogService.Categories(r.Context())

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"categories": categories,
		}),
		gecho.Send(),
	)
}
