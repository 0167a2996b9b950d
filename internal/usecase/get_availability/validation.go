package get_availability

import (
	"fmt"

	"github.com/salmanbhs/barber-api/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Days < 0 || req.Days > domain.MaxAvailabilityDays {
		return fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, domain.MaxAvailabilityDays)
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	return nil
}
