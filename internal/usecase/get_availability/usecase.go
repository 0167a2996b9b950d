package get_availability

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/salmanbhs/barber-api/internal/domain"
	"github.com/salmanbhs/barber-api/internal/infra/storage/catalog"
	companyRepo "github.com/salmanbhs/barber-api/internal/infra/storage/company"
	"github.com/salmanbhs/barber-api/internal/schedule"
)

// UseCase use case для получения доступных слотов барбера
type UseCase struct {
	bookingRepo  BookingRepository
	companyRepo  CompanyRepository
	catalogRepo  CatalogRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	companyRepo CompanyRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		companyRepo:  companyRepo,
		catalogRepo:  catalogRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
//
// Алгоритм одного дня: разрешить рабочие смены (праздники поверх дней недели),
// сгенерировать сетку кандидатов, одним запросом получить активные бронирования
// барбера на дату и разметить кандидатов доступностью. Дни диапазона считаются
// параллельно, порядок дат в ответе сохраняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: barber=%d, date=%s, days=%d, services=%v",
		req.BarberID, req.Date.Format(domain.DateFormat), req.Days, req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	days := req.Days
	if days == 0 {
		days = 1
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование барбера
	if _, err := uc.catalogRepo.GetBarberByID(ctx, req.BarberID); err != nil {
		if errors.Is(err, catalog.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailability: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailability: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 4. Получаем конфигурацию компании (дефолтную, если еще не сохранена)
	cfg, err := uc.companyRepo.GetConfig(ctx)
	if err != nil {
		if errors.Is(err, companyRepo.ErrConfigNotFound) {
			cfg = domain.DefaultCompanyConfig()
			uc.logger.Info("GetAvailability: company config not found, using defaults")
		} else {
			uc.logger.Error("GetAvailability: failed to get company config: %v", err)
			return nil, fmt.Errorf("%w: failed to get company config: %v", ErrInternal, err)
		}
	}

	// 5. Вычисляем длительность: сумма услуг или дефолт
	duration := cfg.DefaultServiceDuration
	if len(req.ServiceIDs) > 0 {
		services, err := uc.catalogRepo.GetServicesByIDs(ctx, req.ServiceIDs)
		if err != nil {
			if errors.Is(err, catalog.ErrServiceNotFound) {
				uc.logger.Warn("GetAvailability: some of services %v not found", req.ServiceIDs)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetAvailability: failed to get services %v: %v", req.ServiceIDs, err)
			return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
		}
		duration = domain.TotalDuration(services)
	}

	// 6. Считаем дни диапазона параллельно, сохраняя порядок дат
	results := make([]DayAvailability, days)
	errs := make([]error, days)
	var wg sync.WaitGroup

	for i := 0; i < days; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			date := req.Date.AddDate(0, 0, i)
			results[i], errs[i] = uc.buildDay(ctx, cfg, req.BarberID, date, duration, now)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			uc.logger.Error("GetAvailability: failed to build day: %v", err)
			return nil, fmt.Errorf("%w: failed to build day: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("GetAvailability: built %d days for barber=%d starting %s",
		days, req.BarberID, req.Date.Format(domain.DateFormat))

	return &Response{
		BarberID:        req.BarberID,
		DurationMinutes: duration,
		IntervalMinutes: cfg.TimeSlotInterval,
		Days:            results,
	}, nil
}

// buildDay вычисляет доступность барбера на один день
func (uc *UseCase) buildDay(
	ctx context.Context,
	cfg *domain.CompanyConfig,
	barberID int64,
	date time.Time,
	duration int,
	now time.Time,
) (DayAvailability, error) {
	day := DayAvailability{
		Date:  date.Format(domain.DateFormat),
		Slots: []Slot{},
	}

	// Рабочие смены на дату: праздники имеют приоритет над днем недели
	resolved := schedule.ResolveDay(cfg, date)
	if !resolved.IsOpen {
		return day, nil
	}
	day.ShopOpen = true

	// Нижняя граница по advance-правилу; false = на эту дату слотов уже нет
	earliest, ok := schedule.EarliestStart(date, now, cfg.BookingAdvanceHours, cfg.TimeSlotInterval)
	if !ok {
		return day, nil
	}

	candidates := schedule.GenerateCandidates(resolved.Shifts, cfg.TimeSlotInterval, duration, earliest)
	if len(candidates) == 0 {
		return day, nil
	}

	// Один запрос бронирований на весь день
	bookings, err := uc.bookingRepo.GetByBarberAndDate(ctx, barberID, date)
	if err != nil {
		return day, fmt.Errorf("get bookings for %s: %w", day.Date, err)
	}

	slots := schedule.BuildSlots(candidates, duration, bookings)
	day.Slots = make([]Slot, len(slots))
	for i, slot := range slots {
		day.Slots[i] = Slot{
			Time:      slot.StartTime.String(),
			Timestamp: slot.ISOTimestamp(date),
			Available: slot.Available,
		}
	}

	return day, nil
}
