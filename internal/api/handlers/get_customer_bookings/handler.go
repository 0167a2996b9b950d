package get_customer_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/salmanbhs/barber-api/internal/api/handlers"
	"github.com/salmanbhs/barber-api/internal/service/bookings"
)

const (
	msgMissingPhone = "номер телефона обязателен"
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

// Handle GET /api/v1/customers/{phone}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	phone := vars["phone"]
	if phone == "" {
		h.logger.Warn("GET /customers/{phone}/bookings - Missing phone")
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	result, err := h.service.GetCustomerBookings(r.Context(), phone)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /customers/{phone}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingPhone)

		default:
			h.logger.Error("GET /customers/{phone}/bookings - Failed to get bookings: phone=%s, error=%v",
				phone, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/{phone}/bookings - Bookings retrieved successfully: phone=%s, count=%d",
		phone, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
