package send_confirmation

import "errors"

var (
	// ErrMissingFields возвращается, если name, email, date или time пустые
	ErrMissingFields = errors.New("send_confirmation: missing required fields")

	// ErrRender возвращается, если письмо не удалось отрендерить
	ErrRender = errors.New("send_confirmation: failed to render email")

	// ErrSend возвращается при ошибке email провайдера
	ErrSend = errors.New("send_confirmation: failed to send email")
)
