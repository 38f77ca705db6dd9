package send_confirmation

import "strings"

// validateRequest проверяет только наличие полей
func validateRequest(req *Request) error {
	if req == nil {
		return ErrMissingFields
	}

	for _, v := range []string{req.Name, req.Email, req.Date, req.Time} {
		if strings.TrimSpace(v) == "" {
			return ErrMissingFields
		}
	}

	return nil
}
