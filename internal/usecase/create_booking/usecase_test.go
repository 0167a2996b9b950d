package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salmanbhs/barber-api/internal/domain"
	bookingRepo "github.com/salmanbhs/barber-api/internal/infra/storage/booking"
	"github.com/salmanbhs/barber-api/internal/infra/storage/catalog"
	"github.com/salmanbhs/barber-api/pkg/types"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	existing  []*domain.Booking
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	booking.ID = 101
	booking.CreatedAt = time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	booking.UpdatedAt = booking.CreatedAt
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetByBarberAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeCompanyRepo struct {
	cfg *domain.CompanyConfig
}

func (f *fakeCompanyRepo) GetConfig(_ context.Context) (*domain.CompanyConfig, error) {
	return f.cfg, nil
}

type fakeCatalogRepo struct {
	barber   *domain.Barber
	services []*domain.Service
}

func (f *fakeCatalogRepo) GetBarberByID(_ context.Context, id int64) (*domain.Barber, error) {
	if f.barber == nil || f.barber.ID != id {
		return nil, catalog.ErrBarberNotFound
	}
	return f.barber, nil
}

func (f *fakeCatalogRepo) GetServicesByIDs(_ context.Context, ids []int64) ([]*domain.Service, error) {
	if len(ids) > len(f.services) {
		return nil, catalog.ErrServiceNotFound
	}
	return f.services[:len(ids)], nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Хелперы

func testConfig() *domain.CompanyConfig {
	day := domain.DaySchedule{
		IsOpen: true,
		Shifts: []domain.Shift{{Start: types.TimeString("09:00"), End: types.TimeString("21:00")}},
	}
	cfg := &domain.CompanyConfig{
		WorkingHours: domain.WorkingHours{
			Monday: day, Tuesday: day, Wednesday: day,
			Thursday: day, Friday: day, Saturday: day,
			Sunday: domain.DaySchedule{IsOpen: false},
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

func newUseCase(repo *fakeBookingRepo, now time.Time) *UseCase {
	uc := NewUseCase(
		repo,
		&fakeCompanyRepo{cfg: testConfig()},
		&fakeCatalogRepo{
			barber: &domain.Barber{ID: 1, Name: "Hasan", IsActive: true},
			services: []*domain.Service{
				{ID: 3, Name: "Haircut", DurationMinutes: 30, Price: 8},
				{ID: 4, Name: "Beard Trim", DurationMinutes: 15, Price: 5},
			},
		},
		fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		CustomerName:  "Ali",
		CustomerPhone: "+973-3900-0000",
		BarberID:      1,
		ServiceIDs:    []int64{3, 4},
		Date:          time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), // вторник
		StartTime:     "10:00",
	}
}

// Тесты

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(repo, now)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, 45, resp.TotalDurationMinutes) // 30 + 15
	assert.Equal(t, 13.0, resp.TotalPrice)         // 8 + 5
	assert.Equal(t, "BHD", resp.Currency)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "Hasan", resp.BarberName)
	assert.Equal(t, []string{"Haircut", "Beard Trim"}, resp.ServiceNames)
	require.NotNil(t, repo.created)
	assert.Equal(t, types.TimeString("10:00"), repo.created.StartTime)
}

func TestExecute_DefaultDurationWithoutServices(t *testing.T) {
	repo := &fakeBookingRepo{}
	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(repo, now)

	req := validRequest()
	req.ServiceIDs = nil

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultServiceDurationMinutes, resp.TotalDurationMinutes)
	assert.Zero(t, resp.TotalPrice)
	assert.Empty(t, resp.ServiceNames)
}

func TestExecute_AdvanceNotice(t *testing.T) {
	repo := &fakeBookingRepo{}
	now := time.Date(2026, 9, 15, 9, 30, 0, 0, time.UTC)
	uc := newUseCase(repo, now)

	req := validRequest()
	req.Date = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	req.StartTime = "10:00" // меньше часа от 09:30

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrAdvanceNotice)
}

func TestExecute_ShopClosed(t *testing.T) {
	repo := &fakeBookingRepo{}
	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(repo, now)

	req := validRequest()
	req.Date = time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC) // воскресенье

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrShopClosed)
}

func TestExecute_SlotConflict(t *testing.T) {
	repo := &fakeBookingRepo{existing: []*domain.Booking{
		{ID: 7, StartTime: "10:15", TotalDurationMinutes: 30, Status: domain.StatusConfirmed},
	}}
	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(repo, now)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	repo := &fakeBookingRepo{existing: []*domain.Booking{
		{ID: 7, StartTime: "10:00", TotalDurationMinutes: 30, Status: domain.StatusCancelled},
	}}
	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(repo, now)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}

func TestExecute_ConcurrentInsertMapsToSlotTaken(t *testing.T) {
	// Exclusion constraint сработал на insert: валидация прошла, но
	// конкурентная бронь успела первой
	repo := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(repo, now)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_BarberNotFound(t *testing.T) {
	repo := &fakeBookingRepo{}
	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(repo, now)

	req := validRequest()
	req.BarberID = 99

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	repo := &fakeBookingRepo{}
	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(repo, now)

	cases := []func(*Request){
		func(r *Request) { r.CustomerName = "  " },
		func(r *Request) { r.CustomerPhone = "" },
		func(r *Request) { r.BarberID = 0 },
		func(r *Request) { r.Date = time.Time{} },
		func(r *Request) { r.StartTime = "" },
		func(r *Request) { r.StartTime = "25:00" },
		func(r *Request) { r.ServiceIDs = []int64{-1} },
	}

	for _, mutate := range cases {
		req := validRequest()
		mutate(req)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
