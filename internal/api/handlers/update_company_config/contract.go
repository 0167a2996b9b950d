package update_company_config

import (
	"context"

	"github.com/salmanbhs/barber-api/internal/service/config/models"
)

type ConfigService interface {
	UpdateConfig(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
