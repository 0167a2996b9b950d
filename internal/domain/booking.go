package domain

import (
	"time"

	"github.com/salmanbhs/barber-api/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents a barbershop appointment.
// A booking aggregates one or more services; total duration and price are the
// sums over those services, denormalized at creation time.
type Booking struct {
	ID            int64
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	BarberID      int64
	ServiceIDs    []int64

	AppointmentDate      time.Time
	StartTime            types.TimeString
	TotalDurationMinutes int
	TotalPrice           float64
	Status               BookingStatus

	// Denormalized data for history
	BarberName   string
	ServiceNames []string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking counts toward conflict checks.
// Only pending and confirmed bookings block a barber's time.
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking can be moved to another slot
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsFinished returns true if the booking reached a terminal state
func (b *Booking) IsFinished() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled || b.Status == StatusNoShow
}

// CanTransitionTo проверяет допустимость перехода статуса
// pending -> confirmed -> completed; отмена и no_show возможны до завершения
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch next {
	case StatusConfirmed:
		return b.Status == StatusPending
	case StatusCompleted:
		return b.Status == StatusConfirmed
	case StatusCancelled, StatusNoShow:
		return b.Status == StatusPending || b.Status == StatusConfirmed
	default:
		return false
	}
}

// BarberBookingsFilter фильтр для получения бронирований барбера
type BarberBookingsFilter struct {
	BarberID        int64          // Обязательный параметр
	Date            *time.Time     // Конкретная дата (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные и no-show
}
