package submit_booking

import "errors"

var (
	// ErrInvalidInput возвращается, если запрос неполный или некорректный
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrStoreUnavailable возвращается, если хранилище отклонило вставку или не ответило вовремя.
	// Попытка не удалась, ее можно повторить.
	ErrStoreUnavailable = errors.New("submit_booking: bookings store unavailable")
)
