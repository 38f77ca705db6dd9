package availability

import (
	"time"

	"github.com/m04kA/kinetic-booking/internal/domain"
)

// Rules чистые предикаты доступности календарных дат.
// Все сравнения идут по датам, приведенным к полуночи в настроенной зоне.
type Rules struct {
	closedWeekday time.Weekday
	capacity      CapacityPolicy
	timeProvider  TimeProvider
	location      *time.Location
}

// NewRules создает правила с реальными часами; nil capacity означает UnlimitedCapacity, nil loc означает UTC
func NewRules(closedWeekday time.Weekday, capacity CapacityPolicy, loc *time.Location) *Rules {
	return NewRulesWithClock(closedWeekday, capacity, loc, &RealTimeProvider{})
}

// NewRulesWithClock то же, что NewRules, с явным источником времени
func NewRulesWithClock(closedWeekday time.Weekday, capacity CapacityPolicy, loc *time.Location, clock TimeProvider) *Rules {
	if capacity == nil {
		capacity = UnlimitedCapacity{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Rules{
		closedWeekday: closedWeekday,
		capacity:      capacity,
		timeProvider:  clock,
		location:      loc,
	}
}

// Location возвращает зону, в которой оцениваются даты
func (r *Rules) Location() *time.Location {
	return r.location
}

// Today возвращает полночь текущей даты
func (r *Rules) Today() time.Time {
	now := r.timeProvider.Now().In(r.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, r.location)
}

// IsPastDate возвращает true, если дата строго раньше сегодняшней
func (r *Rules) IsPastDate(year int, month time.Month, day int) bool {
	return r.date(year, month, day).Before(r.Today())
}

// IsClosedWeekday возвращает true, если дата попадает на выходной день недели
func (r *Rules) IsClosedWeekday(year int, month time.Month, day int) bool {
	return r.date(year, month, day).Weekday() == r.closedWeekday
}

// IsFullyBooked спрашивает политику вместимости
func (r *Rules) IsFullyBooked(year int, month time.Month, day int) bool {
	return r.capacity.IsFullyBooked(r.date(year, month, day))
}

// IsSlotBooked спрашивает политику вместимости об одном слоте
func (r *Rules) IsSlotBooked(year int, month time.Month, day int, slot domain.TimeSlot) bool {
	return r.capacity.IsSlotBooked(r.date(year, month, day), slot)
}

// IsSelectable возвращает true, если ни один предикат не выполнен
func (r *Rules) IsSelectable(year int, month time.Month, day int) bool {
	return !r.IsPastDate(year, month, day) &&
		!r.IsClosedWeekday(year, month, day) &&
		!r.IsFullyBooked(year, month, day)
}

// Classify вычисляет все предикаты для дня периода.
// Дни вне периода считаются прошедшими и никогда не доступны для выбора.
func (r *Rules) Classify(period domain.BookingPeriod, day int) domain.CalendarDay {
	if !period.Contains(day) {
		return domain.CalendarDay{Day: day, IsPast: true}
	}
	return domain.CalendarDay{
		Day:             day,
		IsPast:          r.IsPastDate(period.Year, period.Month, day),
		IsClosedWeekday: r.IsClosedWeekday(period.Year, period.Month, day),
		IsFullyBooked:   r.IsFullyBooked(period.Year, period.Month, day),
	}
}

func (r *Rules) date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, r.location)
}
