package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salmanbhs/barber-api/internal/domain"
	companyRepo "github.com/salmanbhs/barber-api/internal/infra/storage/company"
	"github.com/salmanbhs/barber-api/internal/service/config/models"
)

// Service сервис для работы с конфигурацией компании
type Service struct {
	companyRepo CompanyRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(companyRepo CompanyRepository, logger Logger) *Service {
	return &Service{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// GetConfig получает конфигурацию компании
// Если конфигурация еще не сохранена, возвращает значения по умолчанию
func (s *Service) GetConfig(ctx context.Context) (*models.ConfigResponse, error) {
	s.logger.Info("GetConfig: fetching company config")

	cfg, err := s.companyRepo.GetConfig(ctx)
	if err != nil {
		if errors.Is(err, companyRepo.ErrConfigNotFound) {
			s.logger.Warn("GetConfig: config not found, using defaults")
			return models.FromDomainConfig(domain.DefaultCompanyConfig()), nil
		}
		s.logger.Error("GetConfig: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetConfig: successfully fetched company config")
	return models.FromDomainConfig(cfg), nil
}

// UpdateConfig обновляет конфигурацию компании
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) UpdateConfig(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("UpdateConfig: updating company config")

	// 1. Получаем текущую конфигурацию (или дефолтную, если еще не сохранена)
	cfg, err := s.companyRepo.GetConfig(ctx)
	if err != nil {
		if errors.Is(err, companyRepo.ErrConfigNotFound) {
			cfg = domain.DefaultCompanyConfig()
		} else {
			s.logger.Error("UpdateConfig: repository error: %v", err)
			return nil, fmt.Errorf("%w: UpdateConfig - repository error: %v", ErrInternal, err)
		}
	}

	// 2. Применяем обновления
	req.ApplyToConfig(cfg)

	// 3. Валидируем обновленную конфигурацию
	if err := s.validateConfig(cfg); err != nil {
		s.logger.Warn("UpdateConfig: validation failed: %v", err)
		return nil, err
	}

	// 4. Сохраняем
	if err := s.companyRepo.UpdateConfig(ctx, cfg); err != nil {
		s.logger.Error("UpdateConfig: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateConfig: successfully updated company config")
	return models.FromDomainConfig(cfg), nil
}

// Вспомогательные методы

// validateConfig валидирует конфигурацию компании
func (s *Service) validateConfig(cfg *domain.CompanyConfig) error {
	if cfg.TimeSlotInterval < domain.MinTimeSlotInterval || cfg.TimeSlotInterval > domain.MaxTimeSlotInterval {
		return fmt.Errorf("%w: timeSlotInterval must be between %d and %d",
			ErrInvalidInput, domain.MinTimeSlotInterval, domain.MaxTimeSlotInterval)
	}

	if cfg.BookingAdvanceHours < domain.MinBookingAdvanceHours || cfg.BookingAdvanceHours > domain.MaxBookingAdvanceHours {
		return fmt.Errorf("%w: bookingAdvanceHours must be between %d and %d",
			ErrInvalidInput, domain.MinBookingAdvanceHours, domain.MaxBookingAdvanceHours)
	}

	if cfg.DefaultServiceDuration < domain.MinServiceDurationMinutes || cfg.DefaultServiceDuration > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: defaultServiceDuration must be between %d and %d",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}

	if err := s.validateWorkingHours(cfg.WorkingHours); err != nil {
		return err
	}

	return s.validateHolidays(cfg.Holidays)
}

// validateWorkingHours проверяет смены всех дней недели:
// корректный формат времени, start < end, отсутствие пересечений между сменами
func (s *Service) validateWorkingHours(hours domain.WorkingHours) error {
	days := map[string]domain.DaySchedule{
		"monday":    hours.Monday,
		"tuesday":   hours.Tuesday,
		"wednesday": hours.Wednesday,
		"thursday":  hours.Thursday,
		"friday":    hours.Friday,
		"saturday":  hours.Saturday,
		"sunday":    hours.Sunday,
	}

	for name, day := range days {
		if !day.IsOpen && len(day.Shifts) > 0 {
			return fmt.Errorf("%w: %s is closed but has shifts", ErrInvalidShift, name)
		}
		if err := validateShifts(day.Shifts); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidShift, name, err)
		}
	}

	return nil
}

// validateHolidays проверяет даты и кастомные смены праздников
func (s *Service) validateHolidays(holidays []domain.Holiday) error {
	for _, holiday := range holidays {
		if _, err := time.Parse(domain.DateFormat, holiday.Date); err != nil {
			return fmt.Errorf("%w: bad date %q", ErrInvalidHoliday, holiday.Date)
		}
		if err := validateShifts(holiday.CustomHours); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidHoliday, holiday.Name, err)
		}
	}
	return nil
}

// validateShifts проверяет набор смен одного дня
// Смены сохраняются как есть, поэтому порядок требуем на записи: генерация
// слотов обходит их в порядке хранения и отдает список в том же порядке
func validateShifts(shifts []domain.Shift) error {
	for i, shift := range shifts {
		if err := shift.Validate(); err != nil {
			return fmt.Errorf("shift %d: %v", i, err)
		}
	}

	// Смены должны идти по возрастанию времени начала
	for i := 0; i+1 < len(shifts); i++ {
		if !shifts[i].Start.IsBefore(shifts[i+1].Start) {
			return fmt.Errorf("shifts %d and %d are out of order", i, i+1)
		}
	}

	// Смены не должны пересекаться между собой
	for i := 0; i < len(shifts); i++ {
		for j := i + 1; j < len(shifts); j++ {
			if shifts[i].Start.IsBefore(shifts[j].End) && shifts[j].Start.IsBefore(shifts[i].End) {
				return fmt.Errorf("shifts %d and %d overlap", i, j)
			}
		}
	}

	return nil
}
