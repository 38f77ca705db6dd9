package domain

import (
	"fmt"
	"time"
)

// BookingPeriod единственное окно (год, месяц), открытое для бронирования
type BookingPeriod struct {
	Year  int
	Month time.Month
}

// NewBookingPeriod проверяет год и месяц
func NewBookingPeriod(year, month int) (BookingPeriod, error) {
	if year < 1 {
		return BookingPeriod{}, fmt.Errorf("invalid booking year %d", year)
	}
	if month < 1 || month > 12 {
		return BookingPeriod{}, fmt.Errorf("invalid booking month %d", month)
	}
	return BookingPeriod{Year: year, Month: time.Month(month)}, nil
}

// Date возвращает полночь дня day в loc
func (p BookingPeriod) Date(day int, loc *time.Location) time.Time {
	return time.Date(p.Year, p.Month, day, 0, 0, 0, 0, loc)
}

// FirstDay возвращает полночь 1 числа
func (p BookingPeriod) FirstDay(loc *time.Location) time.Time {
	return p.Date(1, loc)
}

// DaysInMonth количество дней в месяце периода
func (p BookingPeriod) DaysInMonth() int {
	// нулевой день следующего месяца это последний день текущего
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Contains сообщает, является ли day корректным днем периода
func (p BookingPeriod) Contains(day int) bool {
	return day >= 1 && day <= p.DaysInMonth()
}

func (p BookingPeriod) String() string {
	return fmt.Sprintf("%s %d", p.Month, p.Year)
}

// CalendarDay одна ячейка сетки календаря.
// Пустые ячейки дополняют сетку до 1 числа и не несут флагов.
type CalendarDay struct {
	Empty           bool
	Day             int
	IsPast          bool
	IsClosedWeekday bool
	IsFullyBooked   bool
}

// Selectable возвращает true, если день можно выбрать для бронирования
func (d CalendarDay) Selectable() bool {
	return !d.Empty && !d.IsPast && !d.IsClosedWeekday && !d.IsFullyBooked
}
