package get_customer_bookings

import (
	"context"

	"github.com/salmanbhs/barber-api/internal/service/bookings/models"
)

type BookingService interface {
	GetCustomerBookings(ctx context.Context, phone string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
