package cart

import (
	"rosea_server/services"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

const msgProductNotFound = "المنتج غير موجود"

type CartRoutesManager struct {
	logger         *gecho.Logger
	cartService    *services.CartService
	catalogService *services.CatalogService
	cfg            *structs.Config
	authService    *services.AuthService
}

func NewCartRoutesManager(
	logger *gecho.Logger,
	cartService *services.CartService,
	catalogService *services.CatalogService,
	authService *services.AuthService,
	cfg *structs.Config,
) *CartRoutesManager {
	return &CartRoutesManager{
		logger:         logger,
		cartService:    cartService,
		catalogService: catalogService,
		authService:    authService,
		cfg:            cfg,
	}
}

func (crm *CartRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", crm.FetchCart)
		r.Delete("/", crm.ClearCart)
		r.Post("/items", crm.AddItem)
		r.Patch("/items/{id}", crm.UpdateItemQuantity)
		r.Delete("/items/{id}", crm.RemoveItem)
	})
}
