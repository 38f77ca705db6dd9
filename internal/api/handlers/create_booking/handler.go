package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/kinetic-booking/internal/api/handlers"
	"github.com/m04kA/kinetic-booking/internal/bookingform"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgValidationFailed   = "Please correct the highlighted fields"
	msgDateUnavailable    = "The selected date is not available"
	msgSlotUnavailable    = "The selected time slot is not available"
)

type Handler struct {
	forms  FormFactory
	logger Logger
}

func NewHandler(forms FormFactory, logger Logger) *Handler {
	return &Handler{
		forms:  forms,
		logger: logger,
	}
}

// Handle POST /api/v1/bookings
// Проигрывает запрос через новую форму бронирования и отправляет ее.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	form := h.forms.NewForm()

	// отсутствующие день или слот Submit вернет как незаполненные поля
	if req.Day != 0 && !form.SelectDate(req.Day) {
		h.logger.Warn("POST /bookings - Date not selectable: day=%d", req.Day)
		handlers.RespondUnprocessable(w, msgDateUnavailable)
		return
	}
	if req.Slot != "" && form.SelectedDate() != 0 && !form.SelectSlot(req.Slot) {
		h.logger.Warn("POST /bookings - Slot not selectable: day=%d, slot=%s", req.Day, req.Slot)
		handlers.RespondUnprocessable(w, msgSlotUnavailable)
		return
	}

	fields := []struct {
		field bookingform.Field
		value string
	}{
		{bookingform.FieldName, req.Name},
		{bookingform.FieldEmail, req.Email},
		{bookingform.FieldPhone, req.Phone},
		{bookingform.FieldCompany, req.Company},
	}
	for _, f := range fields {
		if err := form.UpdateContactField(f.field, f.value); err != nil {
			h.logger.Error("POST /bookings - Failed to set field %s: %v", f.field, err)
			handlers.RespondInternalError(w)
			return
		}
	}

	if err := form.Submit(r.Context()); err != nil {
		if verr := bookingform.IsValidationError(err); verr != nil {
			h.logger.Warn("POST /bookings - Validation failed: %v", verr)
			handlers.RespondValidationError(w, msgValidationFailed, verr.Fields())
			return
		}

		switch {
		case errors.Is(err, bookingform.ErrSubmitFailed):
			h.logger.Error("POST /bookings - Booking not stored: day=%d, error=%v", req.Day, err)
			handlers.RespondServiceUnavailable(w, form.SubmitError())

		default:
			h.logger.Error("POST /bookings - Failed to submit booking: day=%d, error=%v", req.Day, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	result := form.Confirmation()

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, date=%s", result.ID, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
