package content

import (
	"rosea_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ContentRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
}

func NewContentRoutesManager(logger *gecho.Logger, catalogService *services.CatalogService) *ContentRoutesManager {
	return &ContentRoutesManager{
		logger:         logger,
		catalogService: catalogService,
	}
}

func (crm *ContentRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/content", crm.FetchSiteContent)
	r.Get("/branding", crm.FetchBranding)
	r.Get("/governorates", crm.FetchGovernorates)
}
