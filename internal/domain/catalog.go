package domain

import "time"

// Service represents a bookable barbershop service.
// Immutable reference data; a booking aggregates 1..N services.
type Service struct {
	ID              int64
	Name            string
	Description     *string
	DurationMinutes int
	Price           float64
	Category        string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Barber represents a barber working at the shop
type Barber struct {
	ID          int64
	Name        string
	Email       *string
	Phone       *string
	Specialties []string
	Rating      float64
	Bio         *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TotalDuration возвращает суммарную длительность набора услуг в минутах
func TotalDuration(services []*Service) int {
	total := 0
	for _, svc := range services {
		total += svc.DurationMinutes
	}
	return total
}

// TotalPrice возвращает суммарную стоимость набора услуг
func TotalPrice(services []*Service) float64 {
	total := 0.0
	for _, svc := range services {
		total += svc.Price
	}
	return total
}

// ServiceNames возвращает названия услуг в порядке следования
func ServiceNames(services []*Service) []string {
	names := make([]string, len(services))
	for i, svc := range services {
		names[i] = svc.Name
	}
	return names
}
