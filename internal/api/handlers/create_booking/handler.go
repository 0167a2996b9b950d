package create_booking

import (
	"errors"
	"net/http"

	"github.com/salmanbhs/barber-api/internal/api/handlers"
	createBooking "github.com/salmanbhs/barber-api/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidData        = "некорректные данные бронирования"
	msgBarberNotFound     = "барбер не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgAdvanceNotice      = "бронирование возможно не ранее минимального времени до записи"
	msgShopClosed         = "салон закрыт в выбранное время"
	msgSlotTaken          = "выбранный временной слот уже занят"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: barber_id=%d, date=%s, time=%s",
				req.BarberID, req.AppointmentDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrAdvanceNotice):
			h.logger.Warn("POST /bookings - Advance notice violated: barber_id=%d, date=%s, time=%s",
				req.BarberID, req.AppointmentDate, req.StartTime)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgAdvanceNotice)

		case errors.Is(err, createBooking.ErrShopClosed):
			h.logger.Warn("POST /bookings - Shop closed: barber_id=%d, date=%s, time=%s",
				req.BarberID, req.AppointmentDate, req.StartTime)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgShopClosed)

		case errors.Is(err, createBooking.ErrBarberNotFound):
			h.logger.Warn("POST /bookings - Barber not found: barber_id=%d", req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_ids=%v", req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: barber_id=%d, error=%v",
				req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, barber_id=%d",
		result.ID, req.BarberID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
