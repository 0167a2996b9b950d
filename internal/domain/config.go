package domain

import (
	"time"

	"github.com/salmanbhs/barber-api/pkg/types"
)

// Shift represents a contiguous open interval within a single day,
// e.g. the morning hours before a lunch break. Start must be before End.
type Shift struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// Validate checks that the shift is well-formed
func (s Shift) Validate() error {
	if err := s.Start.Validate(); err != nil {
		return err
	}
	if err := s.End.Validate(); err != nil {
		return err
	}
	if !s.Start.IsBefore(s.End) {
		return ErrInvalidShift
	}
	return nil
}

// DaySchedule represents a single weekday's schedule.
// If IsOpen is false, Shifts must be empty. Shifts are assumed sorted by start
// time and non-overlapping; UpdateConfig validation enforces this on write.
type DaySchedule struct {
	IsOpen bool    `json:"isOpen"`
	Shifts []Shift `json:"shifts"`
}

// WorkingHours maps all seven weekdays to their schedules
type WorkingHours struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// ForWeekday возвращает расписание на указанный день недели
func (w WorkingHours) ForWeekday(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}

// Holiday represents a shop holiday. A holiday without custom hours fully
// closes the shop on that date; with custom hours it overrides the weekday's
// normal shifts for that date only.
type Holiday struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	Name        string  `json:"name"`
	IsRecurring bool    `json:"isRecurring"`
	CustomHours []Shift `json:"customHours,omitempty"`
}

// Matches проверяет, попадает ли дата под праздник
// Повторяющиеся праздники сравниваются по месяцу и дню без учета года
func (h Holiday) Matches(date time.Time) bool {
	parsed, err := time.Parse(DateFormat, h.Date)
	if err != nil {
		return false
	}
	if h.IsRecurring {
		return parsed.Month() == date.Month() && parsed.Day() == date.Day()
	}
	y1, m1, d1 := parsed.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// CompanyConfig represents the barbershop configuration singleton.
// All times are UTC wall-clock values of the shop's single timezone.
type CompanyConfig struct {
	ID                     int64
	WorkingHours           WorkingHours
	Holidays               []Holiday
	BookingAdvanceHours    int // Minimum lead time before an appointment
	TimeSlotInterval       int // Slot granularity in minutes
	Currency               string
	DefaultServiceDuration int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultWorkingHours возвращает стандартный график барбершопа:
// будни с перерывом на обед, суббота без перерыва, воскресенье выходной
func DefaultWorkingHours() WorkingHours {
	weekday := DaySchedule{
		IsOpen: true,
		Shifts: []Shift{
			{Start: "09:00", End: "12:00"},
			{Start: "16:00", End: "20:00"},
		},
	}
	return WorkingHours{
		Monday:    weekday,
		Tuesday:   weekday,
		Wednesday: weekday,
		Thursday:  weekday,
		Friday:    weekday,
		Saturday: DaySchedule{
			IsOpen: true,
			Shifts: []Shift{{Start: "09:00", End: "18:00"}},
		},
		Sunday: DaySchedule{IsOpen: false},
	}
}

// isZero сообщает, что график не задан вовсе (все дни закрыты без смен)
func (w WorkingHours) isZero() bool {
	for _, day := range []DaySchedule{w.Monday, w.Tuesday, w.Wednesday, w.Thursday, w.Friday, w.Saturday, w.Sunday} {
		if day.IsOpen || len(day.Shifts) > 0 {
			return false
		}
	}
	return true
}

// ApplyDefaults заполняет незаданные поля конфигурации дефолтными значениями
func (c *CompanyConfig) ApplyDefaults() {
	if c.WorkingHours.isZero() {
		c.WorkingHours = DefaultWorkingHours()
	}
	if c.BookingAdvanceHours <= 0 {
		c.BookingAdvanceHours = DefaultBookingAdvanceHours
	}
	if c.TimeSlotInterval <= 0 {
		c.TimeSlotInterval = DefaultTimeSlotInterval
	}
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
	if c.DefaultServiceDuration <= 0 {
		c.DefaultServiceDuration = DefaultServiceDurationMinutes
	}
}

// DefaultCompanyConfig возвращает конфигурацию с дефолтными значениями
// Используется, когда строка конфигурации еще не создана в БД
func DefaultCompanyConfig() *CompanyConfig {
	cfg := &CompanyConfig{}
	cfg.ApplyDefaults()
	return cfg
}
