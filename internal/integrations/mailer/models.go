package mailer

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// ConfirmationRequest тело POST /api/send-confirmation
type ConfirmationRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Date    string `json:"date"` // "January 15, 2026"
	Time    string `json:"time"` // "5:00 PM"
}

// ConfirmationResponse тело успешного ответа эндпоинта
type ConfirmationResponse struct {
	Success bool             `json:"success"`
	Data    ConfirmationData `json:"data"`
}

// ConfirmationData квитанция провайдера об отправленном письме
type ConfirmationData struct {
	ID string `json:"id"`
}

// ErrorResponse тело ошибки эндпоинта
type ErrorResponse struct {
	Error string `json:"error"`
}
