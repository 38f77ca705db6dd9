package psqlbuilder

import "github.com/Masterminds/squirrel"

// Имена драйверов, поддерживаемых слоем хранения
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ForDriver возвращает построитель запросов с форматом плейсхолдеров драйвера
// ($1 для postgres, ? для sqlite)
func ForDriver(driver string) squirrel.StatementBuilderType {
	if driver == DriverSQLite {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	}
	return builder
}
