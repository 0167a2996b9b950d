package reschedule_booking

import (
	"time"

	"github.com/salmanbhs/barber-api/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	BookingID int64            // ID переносимого бронирования
	Date      time.Time        // Новая дата (без времени)
	StartTime types.TimeString // Новое время начала (например, "10:00")
}

// Response модель ответа с перенесенным бронированием
type Response struct {
	ID                   int64            // ID бронирования
	BarberID             int64            // ID барбера
	AppointmentDate      time.Time        // Новая дата
	StartTime            types.TimeString // Новое время начала
	TotalDurationMinutes int              // Длительность в минутах
	Status               string           // Статус бронирования
	UpdatedAt            time.Time        // Время обновления
}
