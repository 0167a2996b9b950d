package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/salmanbhs/barber-api/internal/domain"
	bookingRepo "github.com/salmanbhs/barber-api/internal/infra/storage/booking"
	"github.com/salmanbhs/barber-api/internal/infra/storage/catalog"
	companyRepo "github.com/salmanbhs/barber-api/internal/infra/storage/company"
	"github.com/salmanbhs/barber-api/internal/schedule"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	companyRepo  CompanyRepository
	catalogRepo  CatalogRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	companyRepo CompanyRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		companyRepo:  companyRepo,
		catalogRepo:  catalogRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка доступности и запись выполняются в одной сериализуемой транзакции;
// бронирования барбера на дату блокируются FOR UPDATE. Финальную защиту от
// гонки двух конкурентных созданий дает exclusion constraint в БД: нарушение
// возвращается как ErrSlotTaken, а не как внутренняя ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%s, barber=%d, date=%s, time=%s, services=%v",
		req.CustomerPhone, req.BarberID, req.Date.Format(domain.DateFormat), req.StartTime, req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование барбера
	barber, err := uc.catalogRepo.GetBarberByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, catalog.ErrBarberNotFound) {
			uc.logger.Warn("CreateBooking: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateBooking: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 4. Получаем услуги и считаем агрегаты
	var services []*domain.Service
	if len(req.ServiceIDs) > 0 {
		services, err = uc.catalogRepo.GetServicesByIDs(ctx, req.ServiceIDs)
		if err != nil {
			if errors.Is(err, catalog.ErrServiceNotFound) {
				uc.logger.Warn("CreateBooking: some of services %v not found", req.ServiceIDs)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get services %v: %v", req.ServiceIDs, err)
			return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
		}
	}

	// Переменные для хранения результата
	var result *domain.Booking
	var currency string

	// 5. Выполняем проверку доступности и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем конфигурацию компании (дефолтную, если еще не сохранена)
		cfg, err := uc.companyRepo.GetConfig(txCtx)
		if err != nil {
			if errors.Is(err, companyRepo.ErrConfigNotFound) {
				cfg = domain.DefaultCompanyConfig()
				uc.logger.Info("CreateBooking: company config not found, using defaults")
			} else {
				uc.logger.Error("CreateBooking: failed to get company config: %v", err)
				return fmt.Errorf("%w: failed to get company config: %v", ErrInternal, err)
			}
		}
		currency = cfg.Currency

		duration := cfg.DefaultServiceDuration
		if len(services) > 0 {
			duration = domain.TotalDuration(services)
		}

		// 5.2. Получаем активные бронирования барбера на дату с блокировкой FOR UPDATE
		bookings, err := uc.bookingRepo.GetByBarberAndDate(txCtx, req.BarberID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.3. Проверяем advance-правило, рабочие часы и конфликты
		if err := schedule.ValidateBooking(cfg, req.Date, req.StartTime, duration, now, bookings, 0); err != nil {
			uc.logger.Warn("CreateBooking: slot validation failed for barber=%d %s %s: %v",
				req.BarberID, req.Date.Format(domain.DateFormat), req.StartTime, err)
			return mapScheduleError(err)
		}

		// 5.4. Создаем бронирование с денормализацией данных
		booking := &domain.Booking{
			CustomerName:         req.CustomerName,
			CustomerPhone:        req.CustomerPhone,
			CustomerEmail:        req.CustomerEmail,
			BarberID:             req.BarberID,
			ServiceIDs:           req.ServiceIDs,
			AppointmentDate:      req.Date,
			StartTime:            req.StartTime,
			TotalDurationMinutes: duration,
			TotalPrice:           domain.TotalPrice(services),
			Status:               domain.StatusConfirmed,
			BarberName:           barber.Name,
			ServiceNames:         domain.ServiceNames(services),
			Notes:                req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot taken by concurrent booking, barber=%d %s %s",
					req.BarberID, req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:                   result.ID,
		CustomerName:         result.CustomerName,
		CustomerPhone:        result.CustomerPhone,
		CustomerEmail:        result.CustomerEmail,
		BarberID:             result.BarberID,
		ServiceIDs:           result.ServiceIDs,
		AppointmentDate:      result.AppointmentDate,
		StartTime:            result.StartTime,
		TotalDurationMinutes: result.TotalDurationMinutes,
		TotalPrice:           result.TotalPrice,
		Currency:             currency,
		Status:               string(result.Status),
		BarberName:           result.BarberName,
		ServiceNames:         result.ServiceNames,
		Notes:                result.Notes,
		CreatedAt:            result.CreatedAt,
		UpdatedAt:            result.UpdatedAt,
	}, nil
}

// mapScheduleError конвертирует ошибки проверки слота в ошибки usecase
func mapScheduleError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrAdvanceNotice):
		return ErrAdvanceNotice
	case errors.Is(err, schedule.ErrShopClosed):
		return ErrShopClosed
	case errors.Is(err, schedule.ErrSlotTaken):
		return ErrSlotTaken
	default:
		return fmt.Errorf("%w: slot validation: %v", ErrInvalidInput, err)
	}
}
