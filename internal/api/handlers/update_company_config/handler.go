package update_company_config

import (
	"errors"
	"net/http"

	"github.com/salmanbhs/barber-api/internal/api/handlers"
	configService "github.com/salmanbhs/barber-api/internal/service/config"
	"github.com/salmanbhs/barber-api/internal/service/config/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные конфигурации"
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

// Handle PUT /api/v1/company/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /company/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	cfg, err := h.service.UpdateConfig(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, configService.ErrInvalidInput),
			errors.Is(err, configService.ErrInvalidShift),
			errors.Is(err, configService.ErrInvalidHoliday):
			h.logger.Warn("PUT /company/config - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /company/config - Failed to update config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /company/config - Config updated successfully")
	handlers.RespondJSON(w, http.StatusOK, cfg)
}
