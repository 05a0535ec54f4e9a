package middlewares

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags every response with a request id and logs the request
// once it completes. Health checks and metric scrapes are not logged.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		path := r.URL.Path
		if path == "/health" || path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		lrw := newStatusRecorder(w)
		next.ServeHTTP(lrw, r)

		if r.URL.RawQuery != "" {
			path += "?" + r.URL.RawQuery
		}

		var event *zerolog.Event
		msg := "Request completed"
		switch {
		case lrw.statusCode >= http.StatusInternalServerError:
			event, msg = log.Error(), "Server error"
		case lrw.statusCode >= http.StatusBadRequest:
			event, msg = log.Warn(), "Client error"
		default:
			event = log.Info()
		}

		event.
			Int("status", lrw.statusCode).
			Str("method", r.Method).
			Str("path", path).
			Str("ip", r.RemoteAddr).
			Dur("latency", time.Since(start)).
			Str("user_agent", r.UserAgent()).
			Str("request_id", requestID).
			Msg(msg)
	})
}
