package email

import "errors"

var (
	// ErrRender возвращается при ошибке выполнения шаблона
	ErrRender = errors.New("email: failed to render template")

	// ErrSend возвращается, если провайдер не принял письмо
	ErrSend = errors.New("email: provider rejected the email")
)
