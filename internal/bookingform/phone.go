package bookingform

import (
	"net/mail"
	"strings"
	"unicode"
)

// StripNonDigits оставляет только ASCII цифры в исходном порядке
func StripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isValidEmail принимает только голый адрес ("jane@x.com", а не "Jane <jane@x.com>")
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}
