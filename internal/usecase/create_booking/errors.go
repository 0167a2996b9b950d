package create_booking

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден или неактивен
	ErrBarberNotFound = errors.New("create_booking: barber not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrAdvanceNotice возвращается, когда нарушено минимальное время до бронирования
	ErrAdvanceNotice = errors.New("create_booking: advance notice violated")

	// ErrShopClosed возвращается, когда салон закрыт или услуга не помещается в смену
	ErrShopClosed = errors.New("create_booking: shop is closed at this time")

	// ErrSlotTaken возвращается, когда слот пересекается с активным бронированием
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
