package calendar

import (
	"time"

	"github.com/m04kA/kinetic-booking/internal/domain"
)

// Classifier оценивает доступность одного дня периода
type Classifier interface {
	Classify(period domain.BookingPeriod, day int) domain.CalendarDay
}

// Service строит сетки календаря для периодов бронирования
type Service struct {
	classifier Classifier
}

// NewService создает сервис календаря
func NewService(classifier Classifier) *Service {
	return &Service{classifier: classifier}
}

// Generate возвращает сетку периода: по пустой ячейке на каждый день недели до 1 числа
// (неделя начинается с воскресенья), затем дни 1..DaysInMonth по возрастанию.
// Результат пересчитывается при каждом вызове, так как зависит от текущей даты.
func (s *Service) Generate(period domain.BookingPeriod) []domain.CalendarDay {
	leading := int(period.FirstDay(time.UTC).Weekday())
	daysInMonth := period.DaysInMonth()

	days := make([]domain.CalendarDay, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		days = append(days, domain.CalendarDay{Empty: true})
	}
	for day := 1; day <= daysInMonth; day++ {
		days = append(days, s.classifier.Classify(period, day))
	}

	return days
}
