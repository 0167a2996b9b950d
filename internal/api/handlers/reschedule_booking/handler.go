package reschedule_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salmanbhs/barber-api/internal/api/handlers"
	rescheduleBooking "github.com/salmanbhs/barber-api/internal/usecase/reschedule_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты или времени"
	msgBookingNotFound    = "бронирование не найдено"
	msgCannotReschedule   = "бронирование нельзя перенести"
	msgAdvanceNotice      = "перенос возможен не ранее минимального времени до записи"
	msgShopClosed         = "салон закрыт в выбранное время"
	msgSlotTaken          = "выбранный временной слот уже занят"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{id}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingIDStr := vars["bookingId"]
	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id}/reschedule - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/reschedule - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, rescheduleBooking.ErrCannotReschedule):
			h.logger.Warn("PUT /bookings/{id}/reschedule - Cannot reschedule: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCannotReschedule)

		case errors.Is(err, rescheduleBooking.ErrSlotTaken):
			h.logger.Warn("PUT /bookings/{id}/reschedule - Slot taken: booking_id=%d, date=%s, time=%s",
				bookingID, req.AppointmentDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, rescheduleBooking.ErrAdvanceNotice):
			h.logger.Warn("PUT /bookings/{id}/reschedule - Advance notice violated: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgAdvanceNotice)

		case errors.Is(err, rescheduleBooking.ErrShopClosed):
			h.logger.Warn("PUT /bookings/{id}/reschedule - Shop closed: booking_id=%d, date=%s, time=%s",
				bookingID, req.AppointmentDate, req.StartTime)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgShopClosed)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id}/reschedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("PUT /bookings/{id}/reschedule - Failed to reschedule: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /bookings/{id}/reschedule - Booking rescheduled successfully: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
