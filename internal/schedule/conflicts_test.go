package schedule

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salmanbhs/barber-api/internal/domain"
	"github.com/salmanbhs/barber-api/pkg/types"
)

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                           string
		startA, endA, startB, endB     int
		want                           bool
	}{
		{"identical", 600, 630, 600, 630, true},
		{"contained", 600, 660, 615, 630, true},
		{"partial left", 600, 630, 615, 645, true},
		{"partial right", 615, 645, 600, 630, true},
		{"touching end to start", 600, 630, 630, 660, false},
		{"touching start to end", 630, 660, 600, 630, false},
		{"disjoint", 600, 630, 700, 730, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangesOverlap(tt.startA, tt.endA, tt.startB, tt.endB))
		})
	}
}

func TestIsBlocked_ConflictScenario(t *testing.T) {
	// Бронь 10:00-10:30; кандидат 10:15/30мин конфликтует
	// (10:15 < 10:30 && 10:45 > 10:00), кандидат 10:30 граничит и свободен
	bookings := []*domain.Booking{
		{ID: 7, StartTime: "10:00", TotalDurationMinutes: 30, Status: domain.StatusConfirmed},
	}

	assert.True(t, IsBlocked("10:15", 30, bookings, 0))
	assert.False(t, IsBlocked("10:30", 30, bookings, 0))
	assert.False(t, IsBlocked("09:30", 30, bookings, 0))
}

func TestIsBlocked_InactiveStatusesIgnored(t *testing.T) {
	for _, status := range domain.InactiveStatuses {
		bookings := []*domain.Booking{
			{ID: 1, StartTime: "10:00", TotalDurationMinutes: 60, Status: status},
		}
		assert.False(t, IsBlocked("10:00", 30, bookings, 0),
			"status %s must not block new bookings", status)
	}
}

func TestIsBlocked_ActiveStatusesBlock(t *testing.T) {
	for _, status := range domain.ActiveStatuses {
		bookings := []*domain.Booking{
			{ID: 1, StartTime: "10:00", TotalDurationMinutes: 60, Status: status},
		}
		assert.True(t, IsBlocked("10:00", 30, bookings, 0),
			"status %s must block new bookings", status)
	}
}

func TestIsBlocked_RescheduleSelfExclusion(t *testing.T) {
	// Перенос брони на ее же время не должен конфликтовать с самой собой
	bookings := []*domain.Booking{
		{ID: 42, StartTime: "10:00", TotalDurationMinutes: 30, Status: domain.StatusConfirmed},
		{ID: 43, StartTime: "11:00", TotalDurationMinutes: 30, Status: domain.StatusConfirmed},
	}

	assert.False(t, IsBlocked("10:00", 30, bookings, 42))
	assert.True(t, IsBlocked("11:15", 30, bookings, 42), "other bookings still conflict")
}

func TestIsBlocked_ShortCircuitStillCorrect(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, StartTime: "09:00", TotalDurationMinutes: 30, Status: domain.StatusCancelled},
		{ID: 2, StartTime: "09:00", TotalDurationMinutes: 30, Status: domain.StatusConfirmed},
	}

	assert.True(t, IsBlocked("09:15", 30, bookings, 0))
}

// TestIsBlocked_PairwiseOverlapProperty генерирует случайные наборы бронирований
// и сверяет IsBlocked с наивной попарной проверкой пересечения интервалов
func TestIsBlocked_PairwiseOverlapProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(20250910))

	for trial := 0; trial < 500; trial++ {
		bookings := make([]*domain.Booking, rng.Intn(8))
		for i := range bookings {
			start := rng.Intn(20*60) + 8*60 // между 08:00 и 28:00 не уходим: 08:00..23:59
			if start > 23*60 {
				start = 23 * 60
			}
			status := domain.ValidStatuses[rng.Intn(len(domain.ValidStatuses))]
			bookings[i] = &domain.Booking{
				ID:                   int64(i + 1),
				StartTime:            types.NewTimeStringFromMinutes(start),
				TotalDurationMinutes: (rng.Intn(8) + 1) * 15,
				Status:               status,
			}
		}

		candStart := (rng.Intn(60) + 32) * 15 // 08:00..22:45
		candDuration := (rng.Intn(6) + 1) * 15

		want := false
		for _, b := range bookings {
			if !b.IsActive() {
				continue
			}
			bStart, _ := b.StartTime.Minutes()
			if RangesOverlap(candStart, candStart+candDuration, bStart, bStart+b.TotalDurationMinutes) {
				want = true
				break
			}
		}

		got := IsBlocked(types.NewTimeStringFromMinutes(candStart), candDuration, bookings, 0)
		assert.Equal(t, want, got, "trial %d: candidate %d+%d vs %d bookings",
			trial, candStart, candDuration, len(bookings))
	}
}
