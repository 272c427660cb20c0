package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
)

// withLogging writes one access log line per request. Server errors are
// logged at error level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		log := logger.FromRequest(r)
		event := log.Info()
		if rw.status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("remote", clientIP(r)).
			Int("status", rw.status).
			Dur("duration", time.Since(start)).
			Int("size", rw.size).
			Send()
	})
}
