package schedule

import (
	"time"

	"github.com/salmanbhs/barber-api/internal/domain"
)

// ResolveDay возвращает рабочие смены салона на указанную дату
//
// Порядок разрешения:
//  1. Праздник с точным совпадением даты (повторяющиеся праздники совпадают по
//     месяцу и дню в любой год)
//  2. Праздник без custom hours полностью закрывает салон
//  3. Праздник с custom hours заменяет смены дня недели на эту дату
//  4. Иначе действует расписание дня недели из working_hours
func ResolveDay(cfg *domain.CompanyConfig, date time.Time) domain.DaySchedule {
	for _, holiday := range cfg.Holidays {
		if !holiday.Matches(date) {
			continue
		}
		if len(holiday.CustomHours) == 0 {
			return domain.DaySchedule{IsOpen: false}
		}
		return domain.DaySchedule{IsOpen: true, Shifts: holiday.CustomHours}
	}

	day := cfg.WorkingHours.ForWeekday(date.Weekday())
	if !day.IsOpen || len(day.Shifts) == 0 {
		return domain.DaySchedule{IsOpen: false}
	}
	return day
}
