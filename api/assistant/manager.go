package assistant

import (
	"rosea_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AssistantRoutesManager struct {
	logger           *gecho.Logger
	assistantService *services.AssistantService
}

func NewAssistantRoutesManager(logger *gecho.Logger, assistantService *services.AssistantService) *AssistantRoutesManager {
	return &AssistantRoutesManager{
		logger:           logger,
		assistantService: assistantService,
	}
}

func (arm *AssistantRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/assistant/chat", arm.HandleChat)
}
