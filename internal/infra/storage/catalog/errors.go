package catalog

import "errors"

var (
	// ErrServiceNotFound услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("service not found")

	// ErrBarberNotFound барбер не найден или неактивен
	ErrBarberNotFound = errors.New("barber not found")

	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("failed to build query")

	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("failed to execute query")

	// ErrScanRow ошибка сканирования результата запроса
	ErrScanRow = errors.New("failed to scan row")
)
