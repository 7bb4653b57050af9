package api

import (
	"rosea_server/api/admin"
	"rosea_server/api/assistant"
	"rosea_server/api/auth"
	"rosea_server/api/cart"
	"rosea_server/api/content"
	"rosea_server/api/health"
	"rosea_server/api/middleware"
	"rosea_server/api/orders"
	"rosea_server/api/products"
	"rosea_server/services"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes   *products.ProductRoutesManager
	cartRoutes      *cart.CartRoutesManager
	orderRoutes     *orders.OrderRoutesManager
	authRoutes      *auth.AuthRoutesManager
	adminRoutes     *admin.AdminRoutesManager
	contentRoutes   *content.ContentRoutesManager
	assistantRoutes *assistant.AssistantRoutesManager
	healthRoutes    *health.HealthRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	sm *services.ServiceManager,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *routerManager {
	return &routerManager{
		productRoutes:   products.NewProductRoutesManager(logger, sm.CatalogService),
		cartRoutes:      cart.NewCartRoutesManager(logger, sm.CartService, sm.CatalogService, sm.AuthService, cfg),
		orderRoutes:     orders.NewOrderRoutesManager(logger, sm.OrderService, sm.AuthService, mw),
		authRoutes:      auth.NewAuthRoutesManager(logger, sm.AuthService, sm.EmailService, cfg, mw),
		adminRoutes:     admin.NewAdminRoutesManager(logger, sm.CatalogService, sm.OrderService, sm.AuthService, cfg, mw),
		contentRoutes:   content.NewContentRoutesManager(logger, sm.CatalogService),
		assistantRoutes: assistant.NewAssistantRoutesManager(logger, sm.AssistantService),
		healthRoutes:    health.NewHealthRoutesManager(logger),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.cartRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.contentRoutes.RegisterRoutes(r)
	rm.assistantRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
