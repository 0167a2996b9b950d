package domain

import "errors"

// Default configuration values
const (
	DefaultBookingAdvanceHours    = 1
	DefaultTimeSlotInterval       = 30
	DefaultServiceDurationMinutes = 30
	DefaultCurrency               = "BHD"
)

// Business validation constants
const (
	MinTimeSlotInterval         = 5
	MaxTimeSlotInterval         = 120
	MinBookingAdvanceHours      = 0
	MaxBookingAdvanceHours      = 168 // 1 week
	MinServiceDurationMinutes   = 5
	MaxServiceDurationMinutes   = 480 // 8 hours
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxAvailabilityDays         = 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ErrInvalidShift возвращается для смены с start >= end или некорректным временем
var ErrInvalidShift = errors.New("domain: shift start must be before end")

// ActiveStatuses список статусов, блокирующих время барбера
// Используется при подсчете конфликтов слотов
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses список статусов, не блокирующих время барбера
var InactiveStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// IsValidStatus проверяет, что строка является допустимым статусом
func IsValidStatus(s string) bool {
	for _, status := range ValidStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}
