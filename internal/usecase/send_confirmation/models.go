package send_confirmation

// Request подтверждение для отправки; телефон и компания опциональны
type Request struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Date    string
	Time    string
}

// Response квитанция провайдера
type Response struct {
	ID string
}

// Options отправитель и фиксированный блок с адресом
type Options struct {
	From         string
	Subject      string
	AddressLines []string
}
