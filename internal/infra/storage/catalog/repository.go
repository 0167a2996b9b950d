package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/salmanbhs/barber-api/internal/domain"
	"github.com/salmanbhs/barber-api/pkg/dbmetrics"
	"github.com/salmanbhs/barber-api/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"name",
	"description",
	"duration_minutes",
	"price",
	"category",
	"is_active",
	"created_at",
	"updated_at",
}

var barberColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"specialties",
	"rating",
	"bio",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий справочников: услуги и барберы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetServiceByID получает активную услугу по ID
func (r *Repository) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	service, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	return service, nil
}

// GetServicesByIDs получает активные услуги по списку ID одним запросом
// Порядок результата соответствует порядку запрошенных ID;
// если хотя бы один ID не найден, возвращает ErrServiceNotFound
func (r *Repository) GetServicesByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error) {
	if len(ids) == 0 {
		return []*domain.Service{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	byID := make(map[int64]*domain.Service, len(ids))
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetServicesByIDs - scan service: %v", ErrScanRow, err)
		}
		byID[service.ID] = service
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - rows error: %v", ErrScanRow, err)
	}

	services := make([]*domain.Service, 0, len(ids))
	for _, id := range ids {
		service, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: service id %d", ErrServiceNotFound, id)
		}
		services = append(services, service)
	}

	return services, nil
}

// GetBarberByID получает активного барбера по ID
func (r *Repository) GetBarberByID(ctx context.Context, id int64) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(barberColumns...).
		From("barbers").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBarberByID - build select query: %v", ErrBuildQuery, err)
	}

	var barber domain.Barber
	var specialties pq.StringArray

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&barber.ID,
		&barber.Name,
		&barber.Email,
		&barber.Phone,
		&specialties,
		&barber.Rating,
		&barber.Bio,
		&barber.IsActive,
		&barber.CreatedAt,
		&barber.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBarberByID - scan barber: %v", ErrScanRow, err)
	}

	barber.Specialties = specialties

	return &barber, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var service domain.Service

	err := row.Scan(
		&service.ID,
		&service.Name,
		&service.Description,
		&service.DurationMinutes,
		&service.Price,
		&service.Category,
		&service.IsActive,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &service, nil
}
