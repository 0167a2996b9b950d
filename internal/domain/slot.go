package domain

import (
	"time"

	"github.com/salmanbhs/barber-api/pkg/types"
)

// Slot represents a computed candidate appointment start time.
// Slots are ephemeral: regenerated per query, never stored.
type Slot struct {
	StartTime types.TimeString
	Available bool
}

// ISOTimestamp возвращает метку времени слота в ISO 8601 (UTC) для указанной даты
func (s Slot) ISOTimestamp(date time.Time) string {
	minutes, err := s.StartTime.Minutes()
	if err != nil {
		return ""
	}
	instant := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC).
		Add(time.Duration(minutes) * time.Minute)
	return instant.Format(time.RFC3339)
}
