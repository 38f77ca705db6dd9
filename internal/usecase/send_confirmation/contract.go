package send_confirmation

import (
	"context"

	"github.com/m04kA/kinetic-booking/internal/infra/email"
)

// Renderer рендерит HTML письма с подтверждением
type Renderer interface {
	RenderConfirmation(data email.ConfirmationData) (string, error)
}

// Sender передает письмо провайдеру и возвращает ID сообщения
type Sender interface {
	Send(ctx context.Context, msg email.Message) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
