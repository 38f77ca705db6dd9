package send_confirmation

import (
	"errors"
	"net/http"

	"github.com/m04kA/kinetic-booking/internal/api/handlers"
	sendConfirmation "github.com/m04kA/kinetic-booking/internal/usecase/send_confirmation"
)

const msgMissingFields = "Missing required fields"

type Handler struct {
	useCase SendConfirmationUseCase
	logger  Logger
}

func NewHandler(useCase SendConfirmationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/send-confirmation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /send-confirmation - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, sendConfirmation.ErrMissingFields):
			h.logger.Warn("POST /send-confirmation - Missing required fields")
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("POST /send-confirmation - Failed to send confirmation to %s: %v", req.Email, err)
			handlers.RespondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.logger.Info("POST /send-confirmation - Confirmation sent: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusOK, ConfirmationResponse{
		Success: true,
		Data:    ConfirmationData{ID: result.ID},
	})
}
