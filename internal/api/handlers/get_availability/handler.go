package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salmanbhs/barber-api/internal/api/handlers"
	getAvailability "github.com/salmanbhs/barber-api/internal/usecase/get_availability"
)

const (
	msgInvalidBarberID = "некорректный ID барбера"
	msgMissingDate     = "дата обязательна"
	msgInvalidParams   = "некорректные параметры запроса"
	msgBarberNotFound  = "барбер не найден"
	msgServiceNotFound = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/availability
// Query params: date (required, YYYY-MM-DD), days (optional), serviceIds (optional, comma-separated)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем barberId из URL
	barberIDStr := vars["barberId"]
	barberID, err := strconv.ParseInt(barberIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/availability - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /barbers/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты, days и serviceIds)
	useCaseReq, err := ToUseCaseRequest(barberID, dateStr, r.URL.Query().Get("days"), r.URL.Query().Get("serviceIds"))
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/availability - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrBarberNotFound):
			h.logger.Warn("GET /barbers/{id}/availability - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, getAvailability.ErrServiceNotFound):
			h.logger.Warn("GET /barbers/{id}/availability - Service not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /barbers/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /barbers/{id}/availability - Failed to get availability: barber_id=%d, error=%v",
				barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /barbers/{id}/availability - Availability retrieved successfully: barber_id=%d, days_count=%d",
		barberID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
