package booking

import "errors"

var (
	// ErrInvalidRecord возвращается для nil или неполной записи
	ErrInvalidRecord = errors.New("booking.repository: invalid booking record")

	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow ошибка сканирования строки результата
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
