package submit_booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/kinetic-booking/internal/domain"
	"github.com/m04kA/kinetic-booking/internal/integrations/mailer"
	"github.com/m04kA/kinetic-booking/pkg/metrics"
)

// UseCase сохраняет бронирование и запускает письмо с подтверждением
type UseCase struct {
	store   BookingStore
	mailer  MailerClient
	metrics MetricsCollector
	logger  Logger

	storeTimeout  time.Duration
	mailerTimeout time.Duration

	// письма с подтверждением в процессе отправки
	wg sync.WaitGroup
}

// NewUseCase создает use case; нулевые таймауты заменяются значениями по умолчанию
func NewUseCase(
	store BookingStore,
	mailerClient MailerClient,
	metricsCollector MetricsCollector,
	opts Options,
	logger Logger,
) *UseCase {
	if opts.StoreTimeout <= 0 {
		opts.StoreTimeout = domain.DefaultStoreTimeout
	}
	if opts.MailerTimeout <= 0 {
		opts.MailerTimeout = domain.DefaultMailerTimeout
	}

	return &UseCase{
		store:         store,
		mailer:        mailerClient,
		metrics:       metricsCollector,
		logger:        logger,
		storeTimeout:  opts.StoreTimeout,
		mailerTimeout: opts.MailerTimeout,
	}
}

// Execute сохраняет бронирование и после сохранения отправляет письмо в фоне.
// Результат зависит только от хранилища: ошибка отправки письма логируется и не возвращается.
func (uc *UseCase) Execute(ctx context.Context, req *domain.BookingRequest) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		uc.observeBooking(metrics.ResultInvalid)
		return nil, err
	}

	uc.logger.Info("SubmitBooking: date=%s, time=%s, company=%s",
		req.FormattedDate(), req.FormattedTime(), req.Contact.Company)

	record, err := domain.NewBookingRecord(req)
	if err != nil {
		uc.logger.Warn("SubmitBooking: failed to build record: %v", err)
		uc.observeBooking(metrics.ResultInvalid)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// после отправки вставка доходит до конца: ее ограничивает только таймаут хранилища
	storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.storeTimeout)
	defer cancel()

	stored, err := uc.store.Insert(storeCtx, record)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to store booking for %s: %v", req.FormattedDate(), err)
		uc.observeBooking(metrics.ResultStoreFailed)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	uc.observeBooking(metrics.ResultConfirmed)
	uc.logger.Info("SubmitBooking: booking id=%d stored", stored.ID)

	uc.sendConfirmationAsync(ctx, &mailer.ConfirmationRequest{
		Name:    req.Contact.Name,
		Email:   req.Contact.Email,
		Phone:   req.Contact.Phone,
		Date:    req.FormattedDate(),
		Time:    req.FormattedTime(),
		Company: req.Contact.Company,
	})

	return &Response{
		ID:        stored.ID,
		Name:      req.Contact.Name,
		Email:     req.Contact.Email,
		Phone:     req.Contact.Phone,
		Company:   req.Contact.Company,
		Date:      req.FormattedDate(),
		Time:      req.FormattedTime(),
		Work:      stored.Work,
		CreatedAt: stored.CreatedAt,
	}, nil
}

// Wait блокируется, пока не завершатся все отправляемые письма
func (uc *UseCase) Wait() {
	uc.wg.Wait()
}

// sendConfirmationAsync переживает запрос: отмена контекста вызывающего не прерывает письмо
func (uc *UseCase) sendConfirmationAsync(ctx context.Context, req *mailer.ConfirmationRequest) {
	mailCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.mailerTimeout)

	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()
		defer cancel()

		if err := uc.mailer.SendConfirmation(mailCtx, req); err != nil {
			uc.logger.Warn("SubmitBooking: confirmation email to %s failed: %v", req.Email, err)
			uc.observeEmail(metrics.ResultFailed)
			return
		}

		uc.logger.Info("SubmitBooking: confirmation email sent to %s", req.Email)
		uc.observeEmail(metrics.ResultSent)
	}()
}

func (uc *UseCase) observeBooking(result string) {
	if uc.metrics != nil {
		uc.metrics.ObserveBooking(result)
	}
}

func (uc *UseCase) observeEmail(result string) {
	if uc.metrics != nil {
		uc.metrics.ObserveConfirmationEmail(result)
	}
}
