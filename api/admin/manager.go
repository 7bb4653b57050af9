package admin

import (
	"rosea_server/api/middleware"
	"rosea_server/services"
	"rosea_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// Arabic admin-facing messages, matching the storefront UI language.
const (
	msgInvalidAdminCredentials = "اسم المستخدم أو كلمة المرور غير صحيحة"
	msgProductNotFound         = "المنتج غير موجود"
	msgCategoryExists          = "هذا القسم موجود بالفعل"
	msgCategoryNameRequired    = "اسم القسم مطلوب"
	msgOrderNotFound           = "الطلب غير موجود"
	msgInvalidOrderStatus      = "حالة الطلب غير صالحة"
	msgDataReset               = "تمت إعادة تعيين بيانات المتجر"
)

type AdminRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
	orderService   *services.OrderService
	authService    *services.AuthService
	cfg            *structs.Config
	mw             *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	orderService *services.OrderService,
	authService *services.AuthService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:         logger,
		catalogService: catalogService,
		orderService:   orderService,
		authService:    authService,
		cfg:            cfg,
		mw:             mw,
	}
}

func (arm *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", arm.HandleAdminLogin)

		r.Group(func(r chi.Router) {
			r.Use(arm.mw.AdminAuthMiddleware)

			r.Post("/logout", arm.HandleAdminLogout)

			r.Post("/products", arm.CreateProduct)
			r.Put("/products/{id}", arm.UpdateProduct)
			r.Delete("/products/{id}", arm.DeleteProduct)

			r.Post("/categories", arm.CreateCategory)
			r.Delete("/categories/{name}", arm.DeleteCategory)

			r.Put("/branding/hero-image", arm.UpdateHeroImage)
			r.Put("/branding/logo", arm.UpdateLogo)
			r.Put("/content", arm.UpdateSiteContent)

			r.Get("/orders", arm.FetchOrders)
			r.Put("/orders/{id}/status", arm.UpdateOrderStatus)

			r.Post("/reset", arm.ResetData)
		})
	})
}
