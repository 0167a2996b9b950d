package get_availability

import (
	"time"
)

// Request модель запроса доступных слотов
type Request struct {
	BarberID   int64     // ID барбера
	Date       time.Time // Первая дата диапазона (без времени)
	Days       int       // Количество дней; 0 трактуется как 1
	ServiceIDs []int64   // Услуги для расчета длительности; пусто = дефолтная длительность
}

// Response модель ответа со слотами по дням
type Response struct {
	BarberID        int64             // ID барбера
	DurationMinutes int               // Длительность, под которую считались слоты
	IntervalMinutes int               // Шаг сетки слотов
	Days            []DayAvailability // По одному элементу на дату, в порядке дат
}

// DayAvailability доступность одного дня
type DayAvailability struct {
	Date     string // "2026-09-15"
	ShopOpen bool   // Салон работает в эту дату
	Slots    []Slot // Пусто, если салон закрыт
}

// Slot модель слота в ответе
type Slot struct {
	Time      string // Время начала, "10:00"
	Timestamp string // ISO 8601 метка времени начала (UTC)
	Available bool   // Свободен ли слот
}
