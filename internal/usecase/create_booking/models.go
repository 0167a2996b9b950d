package create_booking

import (
	"time"

	"github.com/salmanbhs/barber-api/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName  string           // Имя клиента
	CustomerPhone string           // Телефон клиента
	CustomerEmail *string          // Email клиента (опционально)
	BarberID      int64            // ID барбера
	ServiceIDs    []int64          // Услуги; пусто = дефолтная длительность без услуг
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время начала (например, "10:00")
	Notes         *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                   int64            // ID созданного бронирования
	CustomerName         string           // Имя клиента
	CustomerPhone        string           // Телефон клиента
	CustomerEmail        *string          // Email клиента
	BarberID             int64            // ID барбера
	ServiceIDs           []int64          // Услуги
	AppointmentDate      time.Time        // Дата бронирования
	StartTime            types.TimeString // Время начала
	TotalDurationMinutes int              // Суммарная длительность в минутах
	TotalPrice           float64          // Суммарная стоимость
	Currency             string           // Валюта стоимости
	Status               string           // Статус бронирования

	// Денормализованные данные
	BarberName   string   // Имя барбера
	ServiceNames []string // Названия услуг
	Notes        *string  // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
