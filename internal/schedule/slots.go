package schedule

import (
	"time"

	"github.com/salmanbhs/barber-api/internal/domain"
	"github.com/salmanbhs/barber-api/pkg/types"
)

// EarliestStart вычисляет нижнюю границу времени начала слота на указанную дату
// с учетом минимального времени до бронирования (advanceHours от now)
//
// Возвращаемые значения:
//   - floor, true: дата сегодня, слоты раньше floor недоступны
//     (now + advanceHours, округленное ВВЕРХ до границы интервала)
//   - "", true: дата в будущем, ограничения нет
//   - "", false: граница уходит за полночь (или дата в прошлом),
//     на эту дату слотов нет вообще
func EarliestStart(date time.Time, now time.Time, advanceHours int, interval int) (types.TimeString, bool) {
	minInstant := now.Add(time.Duration(advanceHours) * time.Hour)

	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	minDateOnly := time.Date(minInstant.Year(), minInstant.Month(), minInstant.Day(), 0, 0, 0, 0, time.UTC)

	if dateOnly.After(minDateOnly) {
		return "", true
	}
	if dateOnly.Before(minDateOnly) {
		return "", false
	}

	minutes := minInstant.Hour()*60 + minInstant.Minute()
	rounded := roundUpToInterval(minutes, interval)
	if rounded >= 24*60 {
		// Округление ушло за полночь - день закончился
		return "", false
	}
	return types.NewTimeStringFromMinutes(rounded), true
}

// roundUpToInterval округляет минуты вверх до ближайшей границы интервала
// Значение, уже стоящее на границе, не меняется
func roundUpToInterval(minutes int, interval int) int {
	if interval <= 0 {
		return minutes
	}
	return ((minutes + interval - 1) / interval) * interval
}

// GenerateCandidates генерирует кандидатов времени начала для рабочих смен дня
//
// Для каждой смены обход идет от max(начало смены, earliest) до конца смены с
// шагом interval; кандидат попадает в результат только если услуга целиком
// помещается в смену (start + duration <= конец смены). Последние неполные
// слоты смены отбрасываются намеренно: услуга не может пересекать перерыв
// между сменами одного дня. Кандидаты разных смен конкатенируются в порядке
// следования смен.
func GenerateCandidates(shifts []domain.Shift, interval int, duration int, earliest types.TimeString) []types.TimeString {
	candidates := make([]types.TimeString, 0)
	if interval <= 0 || duration <= 0 {
		return candidates
	}

	for _, shift := range shifts {
		startMin, err := shift.Start.Minutes()
		if err != nil {
			continue
		}
		endMin, err := shift.End.Minutes()
		if err != nil {
			continue
		}

		if !earliest.IsZero() {
			earliestMin, err := earliest.Minutes()
			if err == nil && earliestMin > startMin {
				startMin = earliestMin
			}
		}

		for m := startMin; m+duration <= endMin; m += interval {
			candidates = append(candidates, types.NewTimeStringFromMinutes(m))
		}
	}

	return candidates
}

// BuildSlots размечает кандидатов доступностью по активным бронированиям барбера
// Возвращаются ВСЕ кандидаты (занятые помечены available=false), чтобы клиент
// мог отличить занятый слот от времени вне рабочих часов
func BuildSlots(candidates []types.TimeString, duration int, bookings []*domain.Booking) []domain.Slot {
	slots := make([]domain.Slot, len(candidates))
	for i, start := range candidates {
		slots[i] = domain.Slot{
			StartTime: start,
			Available: !IsBlocked(start, duration, bookings, 0),
		}
	}
	return slots
}
