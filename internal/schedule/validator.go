package schedule

import (
	"time"

	"github.com/salmanbhs/barber-api/internal/domain"
	"github.com/salmanbhs/barber-api/pkg/types"
)

// ValidateBooking проверяет предлагаемое бронирование по тем же правилам, что и
// чтение доступности, закрывая окно между проверкой и записью
//
// Проверки по порядку:
//  1. Момент date+start не раньше now + booking_advance_hours, иначе ErrAdvanceNotice
//  2. Салон открыт в эту дату и [start, start+duration) целиком помещается в одну
//     из смен, иначе ErrShopClosed
//  3. Нет пересечения с активными бронированиями барбера (excludeID исключает
//     собственную строку при переносе), иначе ErrSlotTaken
//
// Вызывается внутри той же сериализуемой транзакции, что и insert/update брони;
// финальную защиту от гонок обеспечивает exclusion constraint на уровне БД.
func ValidateBooking(
	cfg *domain.CompanyConfig,
	date time.Time,
	start types.TimeString,
	duration int,
	now time.Time,
	bookings []*domain.Booking,
	excludeID int64,
) error {
	startMin, err := start.Minutes()
	if err != nil {
		return err
	}

	// 1. Минимальное время до бронирования
	instant := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC).
		Add(time.Duration(startMin) * time.Minute)
	minInstant := now.Add(time.Duration(cfg.BookingAdvanceHours) * time.Hour)
	if instant.Before(minInstant) {
		return ErrAdvanceNotice
	}

	// 2. Рабочие часы: услуга должна целиком помещаться в одну смену
	day := ResolveDay(cfg, date)
	if !day.IsOpen {
		return ErrShopClosed
	}
	if !fitsInAnyShift(day.Shifts, startMin, duration) {
		return ErrShopClosed
	}

	// 3. Конфликты с существующими бронированиями
	if IsBlocked(start, duration, bookings, excludeID) {
		return ErrSlotTaken
	}

	return nil
}

// fitsInAnyShift проверяет, что интервал [start, start+duration) целиком лежит
// внутри хотя бы одной смены
func fitsInAnyShift(shifts []domain.Shift, startMin int, duration int) bool {
	for _, shift := range shifts {
		shiftStart, err := shift.Start.Minutes()
		if err != nil {
			continue
		}
		shiftEnd, err := shift.End.Minutes()
		if err != nil {
			continue
		}
		if startMin >= shiftStart && startMin+duration <= shiftEnd {
			return true
		}
	}
	return false
}
