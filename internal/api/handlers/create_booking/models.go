package create_booking

import (
	"time"

	"github.com/salmanbhs/barber-api/internal/domain"
	createBooking "github.com/salmanbhs/barber-api/internal/usecase/create_booking"
	"github.com/salmanbhs/barber-api/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
	BarberID        int64   `json:"barberId"`
	ServiceIDs      []int64 `json:"serviceIds"`
	AppointmentDate string  `json:"appointmentDate"` // "2026-09-15"
	StartTime       string  `json:"startTime"`       // "10:00"
	Notes           *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                   int64    `json:"id"`
	CustomerName         string   `json:"customerName"`
	CustomerPhone        string   `json:"customerPhone"`
	CustomerEmail        *string  `json:"customerEmail,omitempty"`
	BarberID             int64    `json:"barberId"`
	ServiceIDs           []int64  `json:"serviceIds"`
	AppointmentDate      string   `json:"appointmentDate"`
	StartTime            string   `json:"startTime"`
	TotalDurationMinutes int      `json:"totalDurationMinutes"`
	TotalPrice           float64  `json:"totalPrice"`
	Currency             string   `json:"currency"`
	Status               string   `json:"status"`
	BarberName           string   `json:"barberName"`
	ServiceNames         []string `json:"serviceNames"`
	Notes                *string  `json:"notes,omitempty"`
	CreatedAt            string   `json:"createdAt"`
	UpdatedAt            string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	appointmentDate, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		BarberID:      r.BarberID,
		ServiceIDs:    r.ServiceIDs,
		Date:          appointmentDate,
		StartTime:     startTime,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	serviceNames := resp.ServiceNames
	if serviceNames == nil {
		serviceNames = []string{}
	}

	return &BookingResponse{
		ID:                   resp.ID,
		CustomerName:         resp.CustomerName,
		CustomerPhone:        resp.CustomerPhone,
		CustomerEmail:        resp.CustomerEmail,
		BarberID:             resp.BarberID,
		ServiceIDs:           resp.ServiceIDs,
		AppointmentDate:      resp.AppointmentDate.Format(domain.DateFormat),
		StartTime:            resp.StartTime.String(),
		TotalDurationMinutes: resp.TotalDurationMinutes,
		TotalPrice:           resp.TotalPrice,
		Currency:             resp.Currency,
		Status:               resp.Status,
		BarberName:           resp.BarberName,
		ServiceNames:         serviceNames,
		Notes:                resp.Notes,
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            resp.UpdatedAt.Format(time.RFC3339),
	}
}
