package submit_booking

import "time"

// Response подтвержденное бронирование
type Response struct {
	ID        int64     // ID записи в хранилище
	Name      string
	Email     string
	Phone     string
	Company   string
	Date      string // "January 15, 2026"
	Time      string // "5:00 PM"
	Work      string // упакованная сводка, как в хранилище
	CreatedAt time.Time
}

// Options таймауты вызовов зависимостей
type Options struct {
	StoreTimeout  time.Duration
	MailerTimeout time.Duration
}
