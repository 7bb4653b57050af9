package orders

import (
	"rosea_server/api/middleware"
	"rosea_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// Arabic checkout messages, matching the storefront UI language.
const (
	msgMissingFields = "يرجى ملء جميع الحقول لإتمام الطلب"
	msgEmptyCart     = "السلة فارغة، لا يمكن إتمام الطلب."
	msgOrderPlaced   = "تم استلام طلبك بنجاح!"
)

type OrderRoutesManager struct {
	logger       *gecho.Logger
	orderService *services.OrderService
	authService  *services.AuthService
	mw           *middleware.Middleware
}

func NewOrderRoutesManager(
	logger *gecho.Logger,
	orderService *services.OrderService,
	authService *services.AuthService,
	mw *middleware.Middleware,
) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:       logger,
		orderService: orderService,
		authService:  authService,
		mw:           mw,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", orm.CreateOrder)
		r.With(orm.mw.UserAuthMiddleware).Get("/me", orm.FetchMyOrders)
	})
}
