package create_booking

import "github.com/m04kA/kinetic-booking/internal/bookingform"

// FormFactory создает по форме бронирования на каждый запрос
type FormFactory interface {
	NewForm() *bookingform.Form
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
