package bookingform

import (
	"context"
	"time"

	"github.com/m04kA/kinetic-booking/internal/domain"
	submitBooking "github.com/m04kA/kinetic-booking/internal/usecase/submit_booking"
)

// AvailabilityRules предикаты доступности, используемые формой
type AvailabilityRules interface {
	IsSelectable(year int, month time.Month, day int) bool
	IsSlotBooked(year int, month time.Month, day int, slot domain.TimeSlot) bool
}

// SubmitBookingUseCase сохраняет заполненное бронирование и запускает письмо с подтверждением
type SubmitBookingUseCase interface {
	Execute(ctx context.Context, req *domain.BookingRequest) (*submitBooking.Response, error)
}

// Logger интерфейс логгера формы
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
