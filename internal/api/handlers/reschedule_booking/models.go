package reschedule_booking

import (
	"time"

	"github.com/salmanbhs/barber-api/internal/domain"
	rescheduleBooking "github.com/salmanbhs/barber-api/internal/usecase/reschedule_booking"
	"github.com/salmanbhs/barber-api/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	AppointmentDate string `json:"appointmentDate"` // "2026-09-16"
	StartTime       string `json:"startTime"`       // "14:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                   int64  `json:"id"`
	BarberID             int64  `json:"barberId"`
	AppointmentDate      string `json:"appointmentDate"`
	StartTime            string `json:"startTime"`
	TotalDurationMinutes int    `json:"totalDurationMinutes"`
	Status               string `json:"status"`
	UpdatedAt            string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID int64) (*rescheduleBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		BookingID: bookingID,
		Date:      date,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                   resp.ID,
		BarberID:             resp.BarberID,
		AppointmentDate:      resp.AppointmentDate.Format(domain.DateFormat),
		StartTime:            resp.StartTime.String(),
		TotalDurationMinutes: resp.TotalDurationMinutes,
		Status:               resp.Status,
		UpdatedAt:            resp.UpdatedAt.Format(time.RFC3339),
	}
}
