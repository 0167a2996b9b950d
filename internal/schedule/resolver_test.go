package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salmanbhs/barber-api/internal/domain"
)

func weekConfig(t *testing.T) *domain.CompanyConfig {
	t.Helper()
	open := domain.DaySchedule{
		IsOpen: true,
		Shifts: []domain.Shift{shift(t, "09:00", "13:00"), shift(t, "15:00", "21:00")},
	}
	cfg := &domain.CompanyConfig{
		WorkingHours: domain.WorkingHours{
			Monday:    open,
			Tuesday:   open,
			Wednesday: open,
			Thursday:  open,
			Friday:    domain.DaySchedule{IsOpen: false},
			Saturday:  open,
			Sunday:    open,
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestResolveDay_WeekdaySchedule(t *testing.T) {
	cfg := weekConfig(t)

	// 2025-09-10 - среда
	day := ResolveDay(cfg, time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC))

	require.True(t, day.IsOpen)
	assert.Len(t, day.Shifts, 2)
	assert.Equal(t, "09:00", day.Shifts[0].Start.String())
}

func TestResolveDay_ClosedWeekday(t *testing.T) {
	cfg := weekConfig(t)

	// 2025-09-12 - пятница, выходной
	day := ResolveDay(cfg, time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC))

	assert.False(t, day.IsOpen)
}

func TestResolveDay_OpenFlagWithoutShiftsIsClosed(t *testing.T) {
	cfg := weekConfig(t)
	cfg.WorkingHours.Monday = domain.DaySchedule{IsOpen: true, Shifts: nil}

	day := ResolveDay(cfg, time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC))

	assert.False(t, day.IsOpen)
}

func TestResolveDay_HolidayClosesShop(t *testing.T) {
	cfg := weekConfig(t)
	cfg.Holidays = []domain.Holiday{
		{Date: "2025-09-10", Name: "Maintenance day"},
	}

	// Праздник без custom hours закрывает салон независимо от дня недели
	day := ResolveDay(cfg, time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC))

	assert.False(t, day.IsOpen)
}

func TestResolveDay_HolidayCustomHoursOverrideWeekday(t *testing.T) {
	cfg := weekConfig(t)
	cfg.Holidays = []domain.Holiday{
		{
			Date:        "2025-09-10",
			Name:        "Half day",
			CustomHours: []domain.Shift{shift(t, "10:00", "14:00")},
		},
	}

	day := ResolveDay(cfg, time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC))

	require.True(t, day.IsOpen)
	require.Len(t, day.Shifts, 1)
	assert.Equal(t, "10:00", day.Shifts[0].Start.String())
	assert.Equal(t, "14:00", day.Shifts[0].End.String())
}

func TestResolveDay_RecurringHolidayMatchesAcrossYears(t *testing.T) {
	cfg := weekConfig(t)
	cfg.Holidays = []domain.Holiday{
		{Date: "2024-12-16", Name: "National Day", IsRecurring: true},
	}

	day := ResolveDay(cfg, time.Date(2025, 12, 16, 0, 0, 0, 0, time.UTC))

	assert.False(t, day.IsOpen)
}

func TestResolveDay_NonRecurringHolidayOtherYearIgnored(t *testing.T) {
	cfg := weekConfig(t)
	cfg.Holidays = []domain.Holiday{
		{Date: "2024-09-10", Name: "One-off"},
	}

	day := ResolveDay(cfg, time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC))

	assert.True(t, day.IsOpen)
}

func TestResolveDay_HolidayZeroSlots(t *testing.T) {
	cfg := weekConfig(t)
	cfg.Holidays = []domain.Holiday{{Date: "2025-09-10", Name: "Closed"}}

	day := ResolveDay(cfg, time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC))
	candidates := GenerateCandidates(day.Shifts, cfg.TimeSlotInterval, 30, "")

	assert.Empty(t, candidates)
}
