package models

import (
	"errors"
	"time"

	"github.com/salmanbhs/barber-api/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date format")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetBarberBookingsRequest запрос на получение бронирований барбера
type GetBarberBookingsRequest struct {
	BarberID        int64   `json:"barberId"`
	Date            *string `json:"date,omitempty"`            // Фильтр по дате (опционально)
	Status          *string `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool    `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBarberBookingsRequest) ToDomainFilter() (domain.BarberBookingsFilter, error) {
	filter := domain.BarberBookingsFilter{
		BarberID:        r.BarberID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.Date = &date
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                   int64   `json:"id"`
	CustomerName         string  `json:"customerName"`
	CustomerPhone        string  `json:"customerPhone"`
	CustomerEmail        *string `json:"customerEmail,omitempty"`
	BarberID             int64   `json:"barberId"`
	ServiceIDs           []int64 `json:"serviceIds"`
	AppointmentDate      string  `json:"appointmentDate"` // "2026-09-15"
	StartTime            string  `json:"startTime"`       // "10:00"
	TotalDurationMinutes int     `json:"totalDurationMinutes"`
	TotalPrice           float64 `json:"totalPrice"`
	Status               string  `json:"status"`

	// Денормализованные данные
	BarberName   string   `json:"barberName"`
	ServiceNames []string `json:"serviceNames"`
	Notes        *string  `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                   b.ID,
		CustomerName:         b.CustomerName,
		CustomerPhone:        b.CustomerPhone,
		CustomerEmail:        b.CustomerEmail,
		BarberID:             b.BarberID,
		ServiceIDs:           b.ServiceIDs,
		AppointmentDate:      b.AppointmentDate.Format(domain.DateFormat),
		StartTime:            string(b.StartTime),
		TotalDurationMinutes: b.TotalDurationMinutes,
		TotalPrice:           b.TotalPrice,
		Status:               string(b.Status),
		BarberName:           b.BarberName,
		ServiceNames:         b.ServiceNames,
		Notes:                b.Notes,
		CancellationReason:   b.CancellationReason,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}

	if resp.ServiceNames == nil {
		resp.ServiceNames = []string{}
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	if !domain.IsValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return domain.BookingStatus(status), nil
}
