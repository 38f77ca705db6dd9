package email

// Message готовое письмо для отправителя
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// ConfirmationData значения для шаблона подтверждения
type ConfirmationData struct {
	Subject      string
	Name         string
	Date         string
	Time         string
	Company      string
	AddressLines []string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}
