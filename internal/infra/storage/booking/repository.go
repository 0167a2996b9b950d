package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/salmanbhs/barber-api/internal/domain"
	"github.com/salmanbhs/barber-api/pkg/dbmetrics"
	"github.com/salmanbhs/barber-api/pkg/psqlbuilder"
)

// pgExclusionViolation код ошибки Postgres при нарушении exclusion constraint
const pgExclusionViolation = "23P01"

// bookingColumns полный список колонок таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"customer_name",
	"customer_phone",
	"customer_email",
	"barber_id",
	"service_ids",
	"appointment_date",
	"start_time",
	"total_duration_minutes",
	"total_price",
	"status",
	"barber_name",
	"service_names",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
//
// Нарушение exclusion constraint (пересечение с активной бронью барбера)
// возвращается как ErrSlotTaken, а не как общая ошибка запроса: это штатный
// исход гонки двух конкурентных созданий, а не сбой
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"customer_name",
			"customer_phone",
			"customer_email",
			"barber_id",
			"service_ids",
			"appointment_date",
			"start_time",
			"total_duration_minutes",
			"total_price",
			"status",
			"barber_name",
			"service_names",
			"notes",
		).
		Values(
			booking.CustomerName,
			booking.CustomerPhone,
			booking.CustomerEmail,
			booking.BarberID,
			pq.Array(booking.ServiceIDs),
			booking.AppointmentDate,
			booking.StartTime,
			booking.TotalDurationMinutes,
			booking.TotalPrice,
			booking.Status,
			booking.BarberName,
			pq.Array(booking.ServiceNames),
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isExclusionViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByBarberAndDate получает все активные бронирования барбера на дату ОДНИМ
// запросом; результат переиспользуется для всех кандидатов дня (без N+1)
//
// Внутри транзакции строки блокируются FOR UPDATE, чтобы конкурентное создание
// на ту же дату дождалось завершения текущей валидации
func (r *Repository) GetByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"barber_id": barberID}).
		Where(squirrel.Eq{"appointment_date": date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"status": activeStatuses}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByBarberWithFilter получает бронирования барбера с гибкой фильтрацией
// (дата, статус, включение неактивных)
func (r *Repository) GetByBarberWithFilter(ctx context.Context, filter domain.BarberBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"barber_id": filter.BarberID})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": filter.Date.Format(domain.DateFormat)})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	} else if !filter.IncludeInactive {
		inactiveStatuses := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatuses[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatuses})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("appointment_date DESC, start_time DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByCustomerPhone получает историю бронирований клиента по номеру телефона
func (r *Repository) GetByCustomerPhone(ctx context.Context, phone string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"customer_phone": phone}).
		OrderBy("appointment_date DESC, start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerPhone - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isExclusionViolation(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отменяет бронирование с указанием причины
// Физического удаления нет: отмена - смена статуса с сохранением истории
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Reschedule переносит бронирование на новые дату и время
// Нарушение exclusion constraint возвращается как ErrSlotTaken
func (r *Repository) Reschedule(ctx context.Context, id int64, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("appointment_date", booking.AppointmentDate).
		Set("start_time", booking.StartTime).
		Set("total_duration_minutes", booking.TotalDurationMinutes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		if isExclusionViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Reschedule - execute update: %v", ErrExecQuery, err)
	}

	booking.ID = id
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в бронирование
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var serviceIDs pq.Int64Array
	var serviceNames pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.CustomerEmail,
		&booking.BarberID,
		&serviceIDs,
		&booking.AppointmentDate,
		&booking.StartTime,
		&booking.TotalDurationMinutes,
		&booking.TotalPrice,
		&booking.Status,
		&booking.BarberName,
		&serviceNames,
		&booking.Notes,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.ServiceIDs = serviceIDs
	booking.ServiceNames = serviceNames
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// isExclusionViolation проверяет, что ошибка - нарушение exclusion constraint
func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgExclusionViolation
	}
	return false
}
