package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/kinetic-booking/internal/api/handlers"
)

var errPanic = errors.New("panic in handler")

// AccessLog пишет одну строку лога на запрос
func AccessLog(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			log.Info("type: access, method: %s, url: %s, status: %d, userAgent: %s, requestID: %s, latency: %s",
				r.Method,
				r.URL.Path,
				rec.status,
				r.Header.Get("User-Agent"),
				RequestIDFromContext(r.Context()),
				time.Since(start),
			)
		})
	}
}

// Recover превращает панику в обработчике в ответ 500
func Recover(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if re := recover(); re != nil {
					err, ok := re.(error)
					if !ok {
						err = fmt.Errorf("%v: %w", re, errPanic)
					}
					log.Error("type: panic, requestID: %s, error: %v", RequestIDFromContext(r.Context()), err)
					handlers.RespondInternalError(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
