package get_calendar

import "github.com/m04kA/kinetic-booking/internal/domain"

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Year      int           `json:"year"`
	Month     int           `json:"month"`
	MonthName string        `json:"monthName"`
	Days      []CalendarDay `json:"days"`
}

// CalendarDay одна ячейка сетки; пустые ячейки несут только empty=true
type CalendarDay struct {
	Empty           bool `json:"empty"`
	Day             int  `json:"day,omitempty"`
	IsPast          bool `json:"isPast"`
	IsClosedWeekday bool `json:"isClosedWeekday"`
	IsFullyBooked   bool `json:"isFullyBooked"`
	Selectable      bool `json:"selectable"`
}

// FromDomain конвертирует сетку в HTTP response
func FromDomain(period domain.BookingPeriod, days []domain.CalendarDay) *CalendarResponse {
	cells := make([]CalendarDay, len(days))
	for i, d := range days {
		cells[i] = CalendarDay{
			Empty:           d.Empty,
			Day:             d.Day,
			IsPast:          d.IsPast,
			IsClosedWeekday: d.IsClosedWeekday,
			IsFullyBooked:   d.IsFullyBooked,
			Selectable:      d.Selectable(),
		}
	}

	return &CalendarResponse{
		Year:      period.Year,
		Month:     int(period.Month),
		MonthName: period.Month.String(),
		Days:      cells,
	}
}
