package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/salmanbhs/barber-api/internal/domain"
	bookingRepo "github.com/salmanbhs/barber-api/internal/infra/storage/booking"
	companyRepo "github.com/salmanbhs/barber-api/internal/infra/storage/company"
	"github.com/salmanbhs/barber-api/internal/schedule"
)

// UseCase use case для переноса бронирования на новые дату и время
type UseCase struct {
	bookingRepo  BookingRepository
	companyRepo  CompanyRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	companyRepo CompanyRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		companyRepo:  companyRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case переноса бронирования
//
// Новый слот проверяется теми же правилами, что и создание, но собственная
// строка бронирования исключается из проверки конфликтов: иначе бронь
// "пересекалась" бы сама с собой при переносе в границах своего же интервала.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%d, date=%s, time=%s",
		req.BookingID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// Переменная для хранения результата
	var result *domain.Booking

	// 3. Выполняем проверку и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 3.2. Переносить можно только активное бронирование
		if !booking.CanBeRescheduled() {
			uc.logger.Warn("RescheduleBooking: booking id=%d cannot be rescheduled, status=%s",
				req.BookingID, booking.Status)
			return ErrCannotReschedule
		}

		// 3.3. Получаем конфигурацию компании (дефолтную, если еще не сохранена)
		cfg, err := uc.companyRepo.GetConfig(txCtx)
		if err != nil {
			if errors.Is(err, companyRepo.ErrConfigNotFound) {
				cfg = domain.DefaultCompanyConfig()
				uc.logger.Info("RescheduleBooking: company config not found, using defaults")
			} else {
				uc.logger.Error("RescheduleBooking: failed to get company config: %v", err)
				return fmt.Errorf("%w: failed to get company config: %v", ErrInternal, err)
			}
		}

		// 3.4. Получаем активные бронирования барбера на новую дату с блокировкой FOR UPDATE
		bookings, err := uc.bookingRepo.GetByBarberAndDate(txCtx, booking.BarberID, req.Date)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.5. Проверяем новый слот, исключая собственную строку из конфликтов
		if err := schedule.ValidateBooking(cfg, req.Date, req.StartTime, booking.TotalDurationMinutes,
			now, bookings, booking.ID); err != nil {
			uc.logger.Warn("RescheduleBooking: slot validation failed for booking=%d %s %s: %v",
				req.BookingID, req.Date.Format(domain.DateFormat), req.StartTime, err)
			return mapScheduleError(err)
		}

		// 3.6. Переносим бронирование
		booking.AppointmentDate = req.Date
		booking.StartTime = req.StartTime

		updated, err := uc.bookingRepo.Reschedule(txCtx, booking.ID, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("RescheduleBooking: slot taken by concurrent booking, booking=%d %s %s",
					req.BookingID, req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotTaken
			}
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleBooking: booking id=%d not found during update", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to reschedule booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to reschedule booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: successfully rescheduled booking id=%d to %s %s",
		result.ID, result.AppointmentDate.Format(domain.DateFormat), result.StartTime)

	return &Response{
		ID:                   result.ID,
		BarberID:             result.BarberID,
		AppointmentDate:      result.AppointmentDate,
		StartTime:            result.StartTime,
		TotalDurationMinutes: result.TotalDurationMinutes,
		Status:               string(result.Status),
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
