package http

import (
	"net/http"
	"time"

	"github.com/hksalaudeen/bookman/internal/logger"
)

// withLogging emits one structured log line per completed request with the
// method, URI, response status, body size and elapsed time.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()

		rw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", rw.status).
			Int("size", rw.size).
			Dur("duration", time.Since(started)).
			Send()
	})
}
