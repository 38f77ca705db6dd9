package domain

import "time"

// Константы валидации контактов
const (
	PhoneDigits    = 10
	MsgPhoneDigits = "Phone number must be 10 digits"
)

// Значения по умолчанию для бронирования
const (
	DefaultClosedWeekday = time.Sunday
	DefaultStoreTimeout  = 15 * time.Second
	DefaultMailerTimeout = 15 * time.Second
)

// Константы форматов времени
const (
	DisplayDateFormat = "January 2, 2006" // January 15, 2026
	DateFormat        = "2006-01-02"      // YYYY-MM-DD
)
