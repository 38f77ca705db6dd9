package get_calendar

import "github.com/m04kA/kinetic-booking/internal/domain"

// CalendarService строит сетку календаря для периода
type CalendarService interface {
	Generate(period domain.BookingPeriod) []domain.CalendarDay
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
