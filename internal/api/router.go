package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/kinetic-booking/internal/api/middleware"
	"github.com/m04kA/kinetic-booking/pkg/metrics"
)

// Handlers обработчики эндпоинтов сервиса
type Handlers struct {
	GetCalendar      http.HandlerFunc
	GetSlots         http.HandlerFunc
	CreateBooking    http.HandlerFunc
	SendConfirmation http.HandlerFunc
}

// RouterConfig опциональные части роутера; nil Metrics отключает /metrics, nil RateLimiter отключает лимиты
type RouterConfig struct {
	Metrics     *metrics.Metrics
	MetricsPath string
	RateLimiter *middleware.RateLimiter
	Logger      middleware.Logger
}

// NewRouter регистрирует все маршруты
func NewRouter(h Handlers, cfg RouterConfig) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(cfg.Logger))
	r.Use(middleware.AccessLog(cfg.Logger))

	if cfg.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(cfg.Metrics))
		r.Handle(cfg.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/liveness", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodGet)

	// Публичное чтение
	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/calendar", h.GetCalendar).Methods(http.MethodGet)
	v1.HandleFunc("/slots", h.GetSlots).Methods(http.MethodGet)

	// Вызывается самим сервисом по разу на каждое бронирование, без лимитов
	r.HandleFunc("/api/send-confirmation", h.SendConfirmation).Methods(http.MethodPost)

	// Публичная запись ограничена rate limit
	writes := r.PathPrefix("/api/v1").Subrouter()
	if cfg.RateLimiter != nil {
		writes.Use(cfg.RateLimiter.Middleware(cfg.Logger))
	}
	writes.HandleFunc("/bookings", h.CreateBooking).Methods(http.MethodPost)

	return r
}
