package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/salmanbhs/barber-api/internal/infra/storage/booking"
	"github.com/salmanbhs/barber-api/internal/service/bookings/models"
)

// Service сервис для работы с существующими бронированиями
// Создание и перенос живут в отдельных usecase, так как требуют
// транзакционной проверки доступности слота
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований клиента по номеру телефона
func (s *Service) GetCustomerBookings(ctx context.Context, phone string) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for phone=%s", phone)

	if phone == "" {
		s.logger.Warn("GetCustomerBookings: empty phone")
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByCustomerPhone(ctx, phone)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: successfully fetched %d bookings for phone=%s", len(bookings), phone)
	return models.FromDomainBookingList(bookings), nil
}

// GetBarberBookings получает бронирования барбера с гибкой фильтрацией
// Поддерживает фильтрацию по дате, статусу и включению неактивных бронирований
func (s *Service) GetBarberBookings(ctx context.Context, req *models.GetBarberBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetBarberBookings: fetching bookings for barber=%d", req.BarberID)
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", *req.Date)
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetBarberBookings: invalid filter for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByBarberWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetBarberBookings: repository error for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: GetBarberBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBarberBookings: successfully fetched %d bookings for barber=%d", len(bookings), req.BarberID)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus обновляет статус бронирования с проверкой допустимости перехода
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return ErrInvalidStatus
	}

	// Проверяем допустимость перехода
	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%d",
			booking.Status, newStatus, bookingID)
		return ErrInvalidTransition
	}

	// Обновляем статус
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Cancel отменяет бронирование
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Отменяем бронирование
	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}
