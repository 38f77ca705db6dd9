package domain

import (
	"fmt"
	"strconv"
	"time"
)

// ContactDetails контактные данные из формы бронирования
type ContactDetails struct {
	Name    string
	Email   string
	Phone   string // только цифры
	Company string
}

// BookingRequest данные, отправляемые заполненной формой
type BookingRequest struct {
	Period  BookingPeriod
	Day     int
	Slot    TimeSlot
	Contact ContactDetails
}

// FormattedDate возвращает дату бронирования в виде "January 15, 2026"
func (r *BookingRequest) FormattedDate() string {
	return r.Period.Date(r.Day, time.UTC).Format(DisplayDateFormat)
}

// FormattedTime возвращает отображаемое время слота
func (r *BookingRequest) FormattedTime() string {
	return r.Slot.DisplayTime
}

// BookingRecord строка в хранилище бронирований.
// Work упаковывает дату, время и компанию в одну строку для совместимости со схемой хранилища.
type BookingRecord struct {
	ID          int64
	Name        string
	PhoneNumber int64
	Email       string
	Work        string
	CreatedAt   time.Time
}

// NewBookingRecord конвертирует запрос в представление хранилища
func NewBookingRecord(req *BookingRequest) (*BookingRecord, error) {
	phone, err := strconv.ParseInt(req.Contact.Phone, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse phone number: %w", err)
	}

	return &BookingRecord{
		Name:        req.Contact.Name,
		PhoneNumber: phone,
		Email:       req.Contact.Email,
		Work:        WorkSummary(req),
	}, nil
}

// WorkSummary форматирует "Booking: January 15, 2026 at 5:00 PM | Company: Acme"
func WorkSummary(req *BookingRequest) string {
	return fmt.Sprintf("Booking: %s at %s | Company: %s",
		req.FormattedDate(), req.FormattedTime(), req.Contact.Company)
}
