package availability

import (
	"time"

	"github.com/m04kA/kinetic-booking/internal/domain"
)

// CapacityPolicy решает, закончились ли места на дату или слот
type CapacityPolicy interface {
	IsFullyBooked(date time.Time) bool
	IsSlotBooked(date time.Time, slot domain.TimeSlot) bool
}

// TimeProvider источник текущего времени, подменяется в тестах
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальные часы
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// UnlimitedCapacity принимает любое число бронирований на день и на слот
type UnlimitedCapacity struct{}

func (UnlimitedCapacity) IsFullyBooked(time.Time) bool { return false }

func (UnlimitedCapacity) IsSlotBooked(time.Time, domain.TimeSlot) bool { return false }
