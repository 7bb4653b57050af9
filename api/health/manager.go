package health

import (
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type HealthRoutesManager struct {
	logger *gecho.Logger
}

func NewHealthRoutesManager(logger *gecho.Logger) *HealthRoutesManager {
	return &HealthRoutesManager{logger: logger}
}

func (hrm *HealthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/health", hrm.HandleHealth)
}

func (hrm *HealthRoutesManager) HandleHealth(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(map[string]string{"status": "ok"}),
		gecho.Send(),
	)
}
