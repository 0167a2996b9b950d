package company

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/salmanbhs/barber-api/internal/domain"
	"github.com/salmanbhs/barber-api/pkg/dbmetrics"
	"github.com/salmanbhs/barber-api/pkg/psqlbuilder"
)

// Repository репозиторий конфигурации компании
// Конфигурация хранится одной строкой: графики и праздники лежат в JSONB,
// числовые настройки - в отдельных колонках
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetConfig получает конфигурацию компании
// Если конфигурация еще не сохранена, возвращает ErrConfigNotFound -
// вызывающий слой подставляет значения по умолчанию
func (r *Repository) GetConfig(ctx context.Context) (*domain.CompanyConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"working_hours",
		"holidays",
		"booking_advance_hours",
		"time_slot_interval",
		"currency",
		"default_service_duration",
	).
		From("company_config").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - build select query: %v", ErrBuildQuery, err)
	}

	var workingHoursRaw, holidaysRaw []byte
	var cfg domain.CompanyConfig

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&workingHoursRaw,
		&holidaysRaw,
		&cfg.BookingAdvanceHours,
		&cfg.TimeSlotInterval,
		&cfg.Currency,
		&cfg.DefaultServiceDuration,
	)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - scan config: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(workingHoursRaw, &cfg.WorkingHours); err != nil {
		return nil, fmt.Errorf("%w: GetConfig - working hours: %v", ErrUnmarshalConfig, err)
	}

	if len(holidaysRaw) > 0 {
		if err := json.Unmarshal(holidaysRaw, &cfg.Holidays); err != nil {
			return nil, fmt.Errorf("%w: GetConfig - holidays: %v", ErrUnmarshalConfig, err)
		}
	}

	cfg.ApplyDefaults()

	return &cfg, nil
}

// UpdateConfig сохраняет конфигурацию компании (upsert единственной строки)
func (r *Repository) UpdateConfig(ctx context.Context, cfg *domain.CompanyConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	workingHoursRaw, err := json.Marshal(cfg.WorkingHours)
	if err != nil {
		return fmt.Errorf("%w: UpdateConfig - working hours: %v", ErrMarshalConfig, err)
	}

	holidays := cfg.Holidays
	if holidays == nil {
		holidays = []domain.Holiday{}
	}
	holidaysRaw, err := json.Marshal(holidays)
	if err != nil {
		return fmt.Errorf("%w: UpdateConfig - holidays: %v", ErrMarshalConfig, err)
	}

	query, args, err := psqlbuilder.Insert("company_config").
		Columns(
			"id",
			"working_hours",
			"holidays",
			"booking_advance_hours",
			"time_slot_interval",
			"currency",
			"default_service_duration",
		).
		Values(
			1,
			workingHoursRaw,
			holidaysRaw,
			cfg.BookingAdvanceHours,
			cfg.TimeSlotInterval,
			cfg.Currency,
			cfg.DefaultServiceDuration,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			working_hours = EXCLUDED.working_hours,
			holidays = EXCLUDED.holidays,
			booking_advance_hours = EXCLUDED.booking_advance_hours,
			time_slot_interval = EXCLUDED.time_slot_interval,
			currency = EXCLUDED.currency,
			default_service_duration = EXCLUDED.default_service_duration,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateConfig - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpdateConfig - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
