package services

import (
	"rosea_server/storage"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService      *AuthService
	EmailService     *EmailService
	CatalogService   *CatalogService
	CartService      *CartService
	OrderService     *OrderService
	AssistantService *AssistantService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, store storage.Store) *ServiceManager {
	authService := NewAuthService(cfg, logger, store)
	emailService := NewEmailService(logger, cfg)
	catalogService := NewCatalogService(logger, store)
	cartService := NewCartService(logger, store)
	orderService := NewOrderService(logger, store, cartService)
	assistantService := NewAssistantService(logger, cfg)

	return &ServiceManager{
		AuthService:      authService,
		EmailService:     emailService,
		CatalogService:   catalogService,
		CartService:      cartService,
		OrderService:     orderService,
		AssistantService: assistantService,
	}
}
