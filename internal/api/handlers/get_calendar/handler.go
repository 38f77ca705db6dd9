package get_calendar

import (
	"net/http"
	"strconv"

	"github.com/m04kA/kinetic-booking/internal/api/handlers"
	"github.com/m04kA/kinetic-booking/internal/domain"
)

const (
	msgInvalidYear   = "Invalid year"
	msgInvalidMonth  = "Invalid month"
	msgInvalidPeriod = "Invalid booking period"
)

type Handler struct {
	calendar      CalendarService
	defaultPeriod domain.BookingPeriod
	logger        Logger
}

func NewHandler(calendar CalendarService, defaultPeriod domain.BookingPeriod, logger Logger) *Handler {
	return &Handler{
		calendar:      calendar,
		defaultPeriod: defaultPeriod,
		logger:        logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: year, month (опционально, по умолчанию настроенный период)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year := h.defaultPeriod.Year
	month := int(h.defaultPeriod.Month)

	if s := r.URL.Query().Get("year"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			h.logger.Warn("GET /calendar - Invalid year: %v", err)
			handlers.RespondBadRequest(w, msgInvalidYear)
			return
		}
		year = v
	}

	if s := r.URL.Query().Get("month"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			h.logger.Warn("GET /calendar - Invalid month: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		month = v
	}

	period, err := domain.NewBookingPeriod(year, month)
	if err != nil {
		h.logger.Warn("GET /calendar - %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	days := h.calendar.Generate(period)

	h.logger.Info("GET /calendar - Calendar generated: period=%s, cells=%d", period, len(days))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(period, days))
}
