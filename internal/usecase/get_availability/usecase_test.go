package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salmanbhs/barber-api/internal/domain"
	"github.com/salmanbhs/barber-api/internal/infra/storage/catalog"
	companyRepo "github.com/salmanbhs/barber-api/internal/infra/storage/company"
	"github.com/salmanbhs/barber-api/pkg/types"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	bookings map[string][]*domain.Booking // ключ - дата YYYY-MM-DD
}

func (f *fakeBookingRepo) GetByBarberAndDate(_ context.Context, _ int64, date time.Time) ([]*domain.Booking, error) {
	return f.bookings[date.Format(domain.DateFormat)], nil
}

type fakeCompanyRepo struct {
	cfg *domain.CompanyConfig
	err error
}

func (f *fakeCompanyRepo) GetConfig(_ context.Context) (*domain.CompanyConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
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
	cfg := &domain.CompanyConfig{
		WorkingHours: domain.WorkingHours{
			Monday:    openDay("09:00", "12:00"),
			Tuesday:   openDay("09:00", "12:00"),
			Wednesday: openDay("09:00", "12:00"),
			Thursday:  openDay("09:00", "12:00"),
			Friday:    openDay("09:00", "12:00"),
			Saturday:  openDay("09:00", "12:00"),
			Sunday:    domain.DaySchedule{IsOpen: false},
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

func openDay(start, end string) domain.DaySchedule {
	return domain.DaySchedule{
		IsOpen: true,
		Shifts: []domain.Shift{{Start: types.TimeString(start), End: types.TimeString(end)}},
	}
}

func newUseCase(bookings *fakeBookingRepo, cfg *domain.CompanyConfig, now time.Time) *UseCase {
	uc := NewUseCase(
		bookings,
		&fakeCompanyRepo{cfg: cfg},
		&fakeCatalogRepo{barber: &domain.Barber{ID: 1, Name: "Hasan", IsActive: true}},
		nopLogger{},
	)
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

// Тесты

func TestExecute_FullOpenDay(t *testing.T) {
	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC) // понедельник
	uc := newUseCase(&fakeBookingRepo{}, testConfig(), now)

	resp, err := uc.Execute(context.Background(), &Request{
		BarberID: 1,
		Date:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), // вторник, будущее
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	day := resp.Days[0]
	assert.True(t, day.ShopOpen)
	// 09:00-12:00, шаг 30, длительность 30: 09:00..11:30 = 6 слотов
	require.Len(t, day.Slots, 6)
	assert.Equal(t, "09:00", day.Slots[0].Time)
	assert.Equal(t, "11:30", day.Slots[5].Time)
	for _, slot := range day.Slots {
		assert.True(t, slot.Available)
	}
}

func TestExecute_BookedSlotMarkedUnavailable(t *testing.T) {
	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	bookings := &fakeBookingRepo{bookings: map[string][]*domain.Booking{
		"2026-09-15": {
			{ID: 7, StartTime: "10:00", TotalDurationMinutes: 30, Status: domain.StatusConfirmed},
		},
	}}
	uc := newUseCase(bookings, testConfig(), now)

	resp, err := uc.Execute(context.Background(), &Request{
		BarberID: 1,
		Date:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	byTime := map[string]bool{}
	for _, slot := range resp.Days[0].Slots {
		byTime[slot.Time] = slot.Available
	}
	assert.False(t, byTime["10:00"])
	assert.True(t, byTime["09:30"])
	assert.True(t, byTime["10:30"])
}

func TestExecute_ClosedDay(t *testing.T) {
	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(&fakeBookingRepo{}, testConfig(), now)

	resp, err := uc.Execute(context.Background(), &Request{
		BarberID: 1,
		Date:     time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), // воскресенье
	})

	require.NoError(t, err)
	assert.False(t, resp.Days[0].ShopOpen)
	assert.Empty(t, resp.Days[0].Slots)
}

func TestExecute_HolidayClosesShop(t *testing.T) {
	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	cfg := testConfig()
	cfg.Holidays = []domain.Holiday{{Date: "2026-09-15", Name: "National Day"}}
	uc := newUseCase(&fakeBookingRepo{}, cfg, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BarberID: 1,
		Date:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.False(t, resp.Days[0].ShopOpen)
	assert.Empty(t, resp.Days[0].Slots)
}

func TestExecute_AdvanceNoticeFiltersToday(t *testing.T) {
	// 10:07 + 1 час = 11:07, округление вверх до границы 30-минутной сетки = 11:30
	now := time.Date(2026, 9, 15, 10, 7, 0, 0, time.UTC) // вторник
	uc := newUseCase(&fakeBookingRepo{}, testConfig(), now)

	resp, err := uc.Execute(context.Background(), &Request{
		BarberID: 1,
		Date:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	// Смена 09:00-12:00: остается только 11:30
	require.Len(t, resp.Days[0].Slots, 1)
	assert.Equal(t, "11:30", resp.Days[0].Slots[0].Time)
}

func TestExecute_MultiDayPreservesDateOrder(t *testing.T) {
	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(&fakeBookingRepo{}, testConfig(), now)

	resp, err := uc.Execute(context.Background(), &Request{
		BarberID: 1,
		Date:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Days:     7,
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 7)
	for i, day := range resp.Days {
		expected := time.Date(2026, 9, 15+i, 0, 0, 0, 0, time.UTC).Format(domain.DateFormat)
		assert.Equal(t, expected, day.Date)
	}
	// Воскресенье 2026-09-20 внутри диапазона закрыто
	assert.False(t, resp.Days[5].ShopOpen)
}

func TestExecute_ServiceDurationChangesSlotCount(t *testing.T) {
	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(&fakeBookingRepo{}, testConfig(), now)
	uc.catalogRepo = &fakeCatalogRepo{
		barber:   &domain.Barber{ID: 1, Name: "Hasan", IsActive: true},
		services: []*domain.Service{{ID: 3, Name: "Haircut", DurationMinutes: 90, Price: 8}},
	}

	resp, err := uc.Execute(context.Background(), &Request{
		BarberID:   1,
		Date:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		ServiceIDs: []int64{3},
	})

	require.NoError(t, err)
	assert.Equal(t, 90, resp.DurationMinutes)
	// 09:00-12:00 при длительности 90: 09:00, 09:30, 10:00, 10:30
	require.Len(t, resp.Days[0].Slots, 4)
	assert.Equal(t, "10:30", resp.Days[0].Slots[3].Time)
}

func TestExecute_BarberNotFound(t *testing.T) {
	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(&fakeBookingRepo{}, testConfig(), now)

	_, err := uc.Execute(context.Background(), &Request{
		BarberID: 99,
		Date:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestExecute_ConfigNotFoundFallsBackToDefaults(t *testing.T) {
	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeCompanyRepo{err: companyRepo.ErrConfigNotFound},
		&fakeCatalogRepo{barber: &domain.Barber{ID: 1, Name: "Hasan", IsActive: true}},
		nopLogger{},
	)
	uc.timeProvider = &fixedTime{now: now}

	resp, err := uc.Execute(context.Background(), &Request{
		BarberID: 1,
		Date:     time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), // вторник
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTimeSlotInterval, resp.IntervalMinutes)
	assert.True(t, resp.Days[0].ShopOpen)
	assert.NotEmpty(t, resp.Days[0].Slots)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(&fakeBookingRepo{}, testConfig(), now)

	_, err := uc.Execute(context.Background(), &Request{BarberID: 0, Date: now})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BarberID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BarberID: 1, Date: now, Days: domain.MaxAvailabilityDays + 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
