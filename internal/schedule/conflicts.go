package schedule

import (
	"github.com/salmanbhs/barber-api/internal/domain"
	"github.com/salmanbhs/barber-api/pkg/types"
)

// RangesOverlap проверяет пересечение двух полуоткрытых интервалов в минутах
// Совпадение границ пересечением НЕ считается: бронирование, заканчивающееся в
// 10:30, не конфликтует со слотом, начинающимся в 10:30
func RangesOverlap(startA, endA, startB, endB int) bool {
	return startA < endB && endA > startB
}

// IsBlocked проверяет, пересекается ли кандидат [start, start+duration) хотя бы
// с одним активным бронированием барбера. Завершается на первом конфликте.
//
// excludeID исключает собственную строку бронирования при переносе: бронь
// может "пересекаться" сама с собой. 0 означает отсутствие исключения.
//
// Вызывающая сторона получает список бронирований барбера на дату ОДНИМ
// запросом и переиспользует его для всех кандидатов дня.
func IsBlocked(start types.TimeString, duration int, bookings []*domain.Booking, excludeID int64) bool {
	startMin, err := start.Minutes()
	if err != nil {
		return false
	}
	endMin := startMin + duration

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if excludeID != 0 && booking.ID == excludeID {
			continue
		}

		bookingStart, err := booking.StartTime.Minutes()
		if err != nil {
			continue
		}
		bookingEnd := bookingStart + booking.TotalDurationMinutes

		if RangesOverlap(startMin, endMin, bookingStart, bookingEnd) {
			return true
		}
	}

	return false
}
