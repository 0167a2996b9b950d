package models

import (
	"github.com/salmanbhs/barber-api/internal/domain"
)

// Request модели

// UpdateConfigRequest запрос на обновление конфигурации компании
// Все поля опциональны - обновляются только переданные значения
type UpdateConfigRequest struct {
	WorkingHours           *domain.WorkingHours `json:"workingHours,omitempty"`
	Holidays               *[]domain.Holiday    `json:"holidays,omitempty"`
	BookingAdvanceHours    *int                 `json:"bookingAdvanceHours,omitempty"`
	TimeSlotInterval       *int                 `json:"timeSlotInterval,omitempty"`
	Currency               *string              `json:"currency,omitempty"`
	DefaultServiceDuration *int                 `json:"defaultServiceDuration,omitempty"`
}

// ApplyToConfig применяет переданные поля к конфигурации
func (r *UpdateConfigRequest) ApplyToConfig(cfg *domain.CompanyConfig) {
	if r.WorkingHours != nil {
		cfg.WorkingHours = *r.WorkingHours
	}
	if r.Holidays != nil {
		cfg.Holidays = *r.Holidays
	}
	if r.BookingAdvanceHours != nil {
		cfg.BookingAdvanceHours = *r.BookingAdvanceHours
	}
	if r.TimeSlotInterval != nil {
		cfg.TimeSlotInterval = *r.TimeSlotInterval
	}
	if r.Currency != nil {
		cfg.Currency = *r.Currency
	}
	if r.DefaultServiceDuration != nil {
		cfg.DefaultServiceDuration = *r.DefaultServiceDuration
	}
}

// Response модели

// ConfigResponse ответ с конфигурацией компании
type ConfigResponse struct {
	WorkingHours           domain.WorkingHours `json:"workingHours"`
	Holidays               []domain.Holiday    `json:"holidays"`
	BookingAdvanceHours    int                 `json:"bookingAdvanceHours"`
	TimeSlotInterval       int                 `json:"timeSlotInterval"`
	Currency               string              `json:"currency"`
	DefaultServiceDuration int                 `json:"defaultServiceDuration"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.CompanyConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	holidays := c.Holidays
	if holidays == nil {
		holidays = []domain.Holiday{}
	}

	return &ConfigResponse{
		WorkingHours:           c.WorkingHours,
		Holidays:               holidays,
		BookingAdvanceHours:    c.BookingAdvanceHours,
		TimeSlotInterval:       c.TimeSlotInterval,
		Currency:               c.Currency,
		DefaultServiceDuration: c.DefaultServiceDuration,
	}
}
