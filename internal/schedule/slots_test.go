package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salmanbhs/barber-api/internal/domain"
	"github.com/salmanbhs/barber-api/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func shift(t *testing.T, start, end string) domain.Shift {
	t.Helper()
	return domain.Shift{Start: mustTime(t, start), End: mustTime(t, end)}
}

func timesOf(candidates []types.TimeString) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.String()
	}
	return out
}

func TestGenerateCandidates_FullCoverage(t *testing.T) {
	// Смена 09:00-12:00, интервал 30, услуга 30 минут: ровно 6 слотов,
	// последний 11:30 (11:30+30 = 12:00 помещается впритык)
	candidates := GenerateCandidates([]domain.Shift{shift(t, "09:00", "12:00")}, 30, 30, "")

	assert.Equal(t,
		[]string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		timesOf(candidates))
}

func TestGenerateCandidates_PartialFitExcluded(t *testing.T) {
	// Смена 09:00-09:50, интервал 15, услуга 30 минут:
	// 09:30+30 = 10:00 > 09:50, поэтому только два кандидата
	candidates := GenerateCandidates([]domain.Shift{shift(t, "09:00", "09:50")}, 15, 30, "")

	assert.Equal(t, []string{"09:00", "09:15"}, timesOf(candidates))
}

func TestGenerateCandidates_MultipleShiftsConcatenated(t *testing.T) {
	shifts := []domain.Shift{
		shift(t, "09:00", "12:00"),
		shift(t, "14:00", "16:00"),
	}

	candidates := GenerateCandidates(shifts, 60, 60, "")

	// Услуга не может пересекать обеденный перерыв: слота 11:30 или 12:00 нет
	assert.Equal(t, []string{"09:00", "10:00", "11:00", "14:00", "15:00"}, timesOf(candidates))
}

func TestGenerateCandidates_EarliestStartFloor(t *testing.T) {
	candidates := GenerateCandidates([]domain.Shift{shift(t, "09:00", "12:00")}, 30, 30, mustTime(t, "10:30"))

	assert.Equal(t, []string{"10:30", "11:00", "11:30"}, timesOf(candidates))
}

func TestGenerateCandidates_EarliestPastShiftEnd(t *testing.T) {
	shifts := []domain.Shift{
		shift(t, "09:00", "12:00"),
		shift(t, "14:00", "16:00"),
	}

	// Граница после конца первой смены: первая смена пустая, вторая работает
	candidates := GenerateCandidates(shifts, 30, 30, mustTime(t, "13:00"))

	assert.Equal(t, []string{"14:00", "14:30", "15:00", "15:30"}, timesOf(candidates))
}

func TestGenerateCandidates_EmptyShifts(t *testing.T) {
	assert.Empty(t, GenerateCandidates(nil, 30, 30, ""))
}

func TestEarliestStart_TodayRoundsUpToInterval(t *testing.T) {
	now := time.Date(2025, 9, 10, 10, 7, 0, 0, time.UTC)
	date := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)

	floor, ok := EarliestStart(date, now, 1, 15)

	// 10:07 + 1h = 11:07, округление вверх до границы 15 минут = 11:15
	require.True(t, ok)
	assert.Equal(t, "11:15", floor.String())
}

func TestEarliestStart_ExactBoundaryStays(t *testing.T) {
	now := time.Date(2025, 9, 10, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)

	floor, ok := EarliestStart(date, now, 1, 15)

	require.True(t, ok)
	assert.Equal(t, "11:00", floor.String())
}

func TestEarliestStart_FutureDateNoFloor(t *testing.T) {
	now := time.Date(2025, 9, 10, 10, 7, 0, 0, time.UTC)
	date := time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC)

	floor, ok := EarliestStart(date, now, 1, 15)

	require.True(t, ok)
	assert.True(t, floor.IsZero())
}

func TestEarliestStart_AdvanceCrossesMidnight(t *testing.T) {
	// 23:30 + 1h уходит на следующий день: сегодня слотов больше нет
	now := time.Date(2025, 9, 10, 23, 30, 0, 0, time.UTC)
	date := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)

	_, ok := EarliestStart(date, now, 1, 15)

	assert.False(t, ok)
}

func TestEarliestStart_PastDate(t *testing.T) {
	now := time.Date(2025, 9, 10, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, 9, 9, 0, 0, 0, 0, time.UTC)

	_, ok := EarliestStart(date, now, 1, 15)

	assert.False(t, ok)
}

func TestBuildSlots_MarksConflictsUnavailable(t *testing.T) {
	// У барбера бронь 10:00-10:30; кандидат 10:15 пересекается,
	// кандидат 10:30 граничит и остается доступным
	bookings := []*domain.Booking{
		{ID: 1, StartTime: mustTime(t, "10:00"), TotalDurationMinutes: 30, Status: domain.StatusConfirmed},
	}
	candidates := GenerateCandidates([]domain.Shift{shift(t, "09:00", "12:00")}, 15, 30, "")

	slots := BuildSlots(candidates, 30, bookings)

	byTime := make(map[string]bool, len(slots))
	for _, slot := range slots {
		byTime[slot.StartTime.String()] = slot.Available
	}

	assert.False(t, byTime["09:45"]) // [09:45,10:15) пересекает [10:00,10:30)
	assert.False(t, byTime["10:00"])
	assert.False(t, byTime["10:15"]) // [10:15,10:45) пересекает [10:00,10:30)
	assert.True(t, byTime["09:30"])  // [09:30,10:00) граничит, не пересекает
	assert.True(t, byTime["10:30"])  // [10:30,11:00) граничит, не пересекает
}

func TestBuildSlots_AllCandidatesReturned(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, StartTime: mustTime(t, "10:00"), TotalDurationMinutes: 30, Status: domain.StatusConfirmed},
	}
	candidates := GenerateCandidates([]domain.Shift{shift(t, "09:00", "12:00")}, 30, 30, "")

	slots := BuildSlots(candidates, 30, bookings)

	// Занятые слоты возвращаются с available=false, а не выбрасываются
	assert.Len(t, slots, len(candidates))
}

func TestBuildSlots_Idempotent(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, StartTime: mustTime(t, "10:00"), TotalDurationMinutes: 45, Status: domain.StatusPending},
	}
	candidates := GenerateCandidates([]domain.Shift{shift(t, "09:00", "18:00")}, 15, 30, "")

	first := BuildSlots(candidates, 30, bookings)
	second := BuildSlots(candidates, 30, bookings)

	assert.Equal(t, first, second)
}
