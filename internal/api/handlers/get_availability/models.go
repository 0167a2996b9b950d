package get_availability

import (
	"strconv"
	"strings"
	"time"

	"github.com/salmanbhs/barber-api/internal/domain"
	getAvailability "github.com/salmanbhs/barber-api/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	BarberID        int64             `json:"barberId"`
	DurationMinutes int               `json:"durationMinutes"`
	IntervalMinutes int               `json:"intervalMinutes"`
	Days            []DayAvailability `json:"days"`
}

// DayAvailability доступность одного дня
type DayAvailability struct {
	Date     string          `json:"date"`
	ShopOpen bool            `json:"shopOpen"`
	Slots    []AvailableSlot `json:"slots"`
}

// AvailableSlot модель слота
type AvailableSlot struct {
	Time      string `json:"time"`
	Timestamp string `json:"timestamp"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make([]DayAvailability, len(resp.Days))
	for i, day := range resp.Days {
		slots := make([]AvailableSlot, len(day.Slots))
		for j, slot := range day.Slots {
			slots[j] = AvailableSlot{
				Time:      slot.Time,
				Timestamp: slot.Timestamp,
				Available: slot.Available,
			}
		}
		days[i] = DayAvailability{
			Date:     day.Date,
			ShopOpen: day.ShopOpen,
			Slots:    slots,
		}
	}

	return &AvailabilityResponse{
		BarberID:        resp.BarberID,
		DurationMinutes: resp.DurationMinutes,
		IntervalMinutes: resp.IntervalMinutes,
		Days:            days,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(barberID int64, dateStr, daysStr, serviceIDsStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	days := 0
	if daysStr != "" {
		days, err = strconv.Atoi(daysStr)
		if err != nil {
			return nil, err
		}
	}

	var serviceIDs []int64
	if serviceIDsStr != "" {
		for _, part := range strings.Split(serviceIDsStr, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return nil, err
			}
			serviceIDs = append(serviceIDs, id)
		}
	}

	return &getAvailability.Request{
		BarberID:   barberID,
		Date:       date,
		Days:       days,
		ServiceIDs: serviceIDs,
	}, nil
}
