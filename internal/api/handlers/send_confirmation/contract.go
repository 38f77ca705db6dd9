package send_confirmation

import (
	"context"

	sendConfirmation "github.com/m04kA/kinetic-booking/internal/usecase/send_confirmation"
)

type SendConfirmationUseCase interface {
	Execute(ctx context.Context, req *sendConfirmation.Request) (*sendConfirmation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
