package mailer

import "errors"

var (
	// ErrInternal возвращается, если запрос не удалось собрать
	ErrInternal = errors.New("mailer client: internal error")

	// ErrUnavailable возвращается, если эндпоинт недоступен или не ответил вовремя
	ErrUnavailable = errors.New("mailer client: endpoint unavailable")

	// ErrRejected возвращается на 400: в запросе нет обязательных полей
	ErrRejected = errors.New("mailer client: request rejected")

	// ErrSendFailed возвращается, если эндпоинт не смог передать письмо провайдеру
	ErrSendFailed = errors.New("mailer client: send failed")

	// ErrInvalidResponse возвращается, если тело ответа 2xx не является успешным
	ErrInvalidResponse = errors.New("mailer client: invalid response")
)
