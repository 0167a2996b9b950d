package get_barber_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salmanbhs/barber-api/internal/api/handlers"
	"github.com/salmanbhs/barber-api/internal/service/bookings"
	"github.com/salmanbhs/barber-api/internal/service/bookings/models"
)

const (
	msgInvalidBarberID = "некорректный ID барбера"
	msgInvalidParams   = "некорректные параметры запроса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/bookings
// Query params: date (optional, YYYY-MM-DD), status (optional), includeInactive (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	barberIDStr := vars["barberId"]

	barberID, err := strconv.ParseInt(barberIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/bookings - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	// Собираем фильтр из query параметров
	req := &models.GetBarberBookingsRequest{BarberID: barberID}

	if date := r.URL.Query().Get("date"); date != "" {
		req.Date = &date
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}
	if r.URL.Query().Get("includeInactive") == "true" {
		req.IncludeInactive = true
	}

	result, err := h.service.GetBarberBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /barbers/{id}/bookings - Invalid params: barber_id=%d, error=%v", barberID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /barbers/{id}/bookings - Failed to get bookings: barber_id=%d, error=%v",
				barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/{id}/bookings - Bookings retrieved successfully: barber_id=%d, count=%d",
		barberID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
