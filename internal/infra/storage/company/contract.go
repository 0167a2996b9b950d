package company

import "github.com/salmanbhs/barber-api/pkg/dbmetrics"

// DBExecutor интерфейс для выполнения запросов к БД
type DBExecutor = dbmetrics.DBExecutor
