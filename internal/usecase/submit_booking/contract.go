package submit_booking

import (
	"context"

	"github.com/m04kA/kinetic-booking/internal/domain"
	"github.com/m04kA/kinetic-booking/internal/integrations/mailer"
)

// BookingStore хранилище записей о бронированиях
type BookingStore interface {
	Insert(ctx context.Context, record *domain.BookingRecord) (*domain.BookingRecord, error)
}

// MailerClient клиент эндпоинта писем с подтверждением
type MailerClient interface {
	SendConfirmation(ctx context.Context, req *mailer.ConfirmationRequest) error
}

// MetricsCollector счетчики бронирований; *metrics.Metrics реализует его и может быть nil
type MetricsCollector interface {
	ObserveBooking(result string)
	ObserveConfirmationEmail(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
