package mailer

import (
	"context"
	"errors"
	"fmt"

	sendConfirmation "github.com/m04kA/kinetic-booking/internal/usecase/send_confirmation"
)

// ConfirmationUseCase use case за POST /api/send-confirmation
type ConfirmationUseCase interface {
	Execute(ctx context.Context, req *sendConfirmation.Request) (*sendConfirmation.Response, error)
}

// LocalClient доставляет подтверждения через use case эндпоинта в том же процессе, без HTTP запроса
type LocalClient struct {
	useCase ConfirmationUseCase
	log     Logger
}

func NewLocalClient(useCase ConfirmationUseCase, log Logger) *LocalClient {
	return &LocalClient{
		useCase: useCase,
		log:     log,
	}
}

// SendConfirmation возвращает те же ошибки, что и Client
func (c *LocalClient) SendConfirmation(ctx context.Context, confirmation *ConfirmationRequest) error {
	if confirmation == nil {
		return fmt.Errorf("%w: confirmation is nil", ErrInternal)
	}

	resp, err := c.useCase.Execute(ctx, &sendConfirmation.Request{
		Name:    confirmation.Name,
		Email:   confirmation.Email,
		Phone:   confirmation.Phone,
		Company: confirmation.Company,
		Date:    confirmation.Date,
		Time:    confirmation.Time,
	})
	switch {
	case err == nil:
	case errors.Is(err, sendConfirmation.ErrMissingFields):
		return fmt.Errorf("%w: %v", ErrRejected, err)
	default:
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	c.log.Info("Mailer: confirmation accepted for %s, id=%s", confirmation.Email, resp.ID)
	return nil
}
