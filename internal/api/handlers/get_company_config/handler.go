package get_company_config

import (
	"net/http"

	"github.com/salmanbhs/barber-api/internal/api/handlers"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/company/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.service.GetConfig(r.Context())
	if err != nil {
		h.logger.Error("GET /company/config - Failed to get config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /company/config - Config retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, cfg)
}
