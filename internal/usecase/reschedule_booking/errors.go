package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrCannotReschedule возвращается, когда бронирование нельзя перенести
	ErrCannotReschedule = errors.New("reschedule_booking: booking cannot be rescheduled")

	// ErrAdvanceNotice возвращается, когда нарушено минимальное время до бронирования
	ErrAdvanceNotice = errors.New("reschedule_booking: advance notice violated")

	// ErrShopClosed возвращается, когда салон закрыт или услуга не помещается в смену
	ErrShopClosed = errors.New("reschedule_booking: shop is closed at this time")

	// ErrSlotTaken возвращается, когда новый слот пересекается с чужим бронированием
	ErrSlotTaken = errors.New("reschedule_booking: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
