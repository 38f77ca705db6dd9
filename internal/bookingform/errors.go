package bookingform

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownField возвращается для поля, которого нет в форме
	ErrUnknownField = errors.New("bookingform: unknown contact field")

	// ErrSubmitInProgress возвращается, если отправка уже идет
	ErrSubmitInProgress = errors.New("bookingform: submission already in progress")

	// ErrAlreadyConfirmed возвращается при отправке подтвержденной формы без Reset
	ErrAlreadyConfirmed = errors.New("bookingform: booking already confirmed")

	// ErrSubmitFailed возвращается, если бронирование не сохранилось; ввод в форме остается
	ErrSubmitFailed = errors.New("bookingform: booking submission failed")
)

// Сообщения для пользователя
const (
	MsgDateRequired    = "Please select a date"
	MsgSlotRequired    = "Please select a time slot"
	MsgNameRequired    = "Name is required"
	MsgEmailRequired   = "Email is required"
	MsgEmailInvalid    = "Please enter a valid email address"
	MsgCompanyRequired = "Company is required"
	MsgSubmitFailed    = "We could not save your booking. Please try again."
)

// ValidationError ошибки полей, блокирующие отправку
type ValidationError struct {
	fields map[string]string
}

func newValidationError() *ValidationError {
	return &ValidationError{fields: make(map[string]string)}
}

// IsValidationError возвращает ошибку валидации из err или nil
func IsValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func (e *ValidationError) add(field, msg string) {
	e.fields[field] = msg
}

func (e *ValidationError) fieldsCount() int {
	return len(e.fields)
}

// Fields возвращает копию сообщений по именам полей
func (e *ValidationError) Fields() map[string]string {
	out := make(map[string]string, len(e.fields))
	for k, v := range e.fields {
		out[k] = v
	}
	return out
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.fields[k]))
	}
	return "bookingform: validation failed: " + strings.Join(parts, "; ")
}
