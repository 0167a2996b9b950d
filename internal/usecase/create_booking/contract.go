package create_booking

import (
	"context"
	"time"

	"github.com/salmanbhs/barber-api/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetByBarberAndDate внутри транзакции блокирует строки FOR UPDATE
	GetByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.Booking, error)
}

// CompanyRepository интерфейс репозитория конфигурации компании
type CompanyRepository interface {
	GetConfig(ctx context.Context) (*domain.CompanyConfig, error)
}

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	GetBarberByID(ctx context.Context, id int64) (*domain.Barber, error)
	GetServicesByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
