package config

import (
	"context"

	"github.com/salmanbhs/barber-api/internal/domain"
)

// CompanyRepository интерфейс репозитория конфигурации компании
type CompanyRepository interface {
	GetConfig(ctx context.Context) (*domain.CompanyConfig, error)
	UpdateConfig(ctx context.Context, cfg *domain.CompanyConfig) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
