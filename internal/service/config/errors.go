package config

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidShift возвращается для некорректной смены в графике
	ErrInvalidShift = errors.New("invalid shift")

	// ErrInvalidHoliday возвращается для некорректного праздника
	ErrInvalidHoliday = errors.New("invalid holiday")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
