package company

import "errors"

var (
	// ErrConfigNotFound конфигурация компании еще не сохранена
	ErrConfigNotFound = errors.New("company config not found")

	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("failed to build query")

	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("failed to execute query")

	// ErrScanRow ошибка сканирования результата запроса
	ErrScanRow = errors.New("failed to scan row")

	// ErrMarshalConfig ошибка сериализации конфигурации в JSON
	ErrMarshalConfig = errors.New("failed to marshal config")

	// ErrUnmarshalConfig ошибка десериализации конфигурации из JSON
	ErrUnmarshalConfig = errors.New("failed to unmarshal config")
)
