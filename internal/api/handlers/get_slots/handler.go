package get_slots

import (
	"net/http"

	"github.com/m04kA/kinetic-booking/internal/api/handlers"
	"github.com/m04kA/kinetic-booking/internal/domain"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Slots []Slot `json:"slots"`
}

type Slot struct {
	ID          string `json:"id"`
	DisplayTime string `json:"displayTime"`
	Label       string `json:"label"`
}

type Handler struct {
	slots []domain.TimeSlot
}

func NewHandler(slots []domain.TimeSlot) *Handler {
	return &Handler{slots: slots}
}

// Handle GET /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	resp := SlotsResponse{Slots: make([]Slot, len(h.slots))}
	for i, s := range h.slots {
		resp.Slots[i] = Slot{ID: s.ID, DisplayTime: s.DisplayTime, Label: s.Label}
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}
