package create_booking

import (
	"time"

	submitBooking "github.com/m04kA/kinetic-booking/internal/usecase/submit_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Day     int    `json:"day"`  // день настроенного месяца бронирования
	Slot    string `json:"slot"` // ID слота, например "evening"
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"` // любое форматирование, сохраняются только цифры
	Company string `json:"company"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Date      string `json:"date"` // "January 15, 2026"
	Time      string `json:"time"` // "5:00 PM"
	Work      string `json:"work"`
	CreatedAt string `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		Email:     resp.Email,
		Phone:     resp.Phone,
		Company:   resp.Company,
		Date:      resp.Date,
		Time:      resp.Time,
		Work:      resp.Work,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
