package email

import (
	"context"

	"github.com/google/uuid"
)

// LogSender пишет письма в лог вместо отправки; используется без API ключа провайдера
type LogSender struct {
	log Logger
}

func NewLogSender(log Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, msg Message) (string, error) {
	id := "log-" + uuid.NewString()
	s.log.Info("Email: not sent (log provider) id=%s to=%s subject=%q bytes=%d", id, msg.To, msg.Subject, len(msg.HTML))
	return id, nil
}
