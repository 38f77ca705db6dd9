package submit_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/kinetic-booking/internal/domain"
)

// validateRequest проверяет запрос, собранный формой
func validateRequest(req *domain.BookingRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if !req.Period.Contains(req.Day) {
		return fmt.Errorf("%w: day %d is outside of %s", ErrInvalidInput, req.Day, req.Period)
	}

	if req.Slot.ID == "" || req.Slot.DisplayTime == "" {
		return fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Contact.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Contact.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Contact.Company) == "" {
		return fmt.Errorf("%w: company is required", ErrInvalidInput)
	}

	if len(req.Contact.Phone) != domain.PhoneDigits {
		return fmt.Errorf("%w: phone must have %d digits", ErrInvalidInput, domain.PhoneDigits)
	}
	for _, r := range req.Contact.Phone {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: phone must contain digits only", ErrInvalidInput)
		}
	}

	return nil
}
