package middleware

import (
	"net/http"
	"time"
)

const TimeoutMessage = "Tiempo de espera agotado"

func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	message := `{"message":"` + TimeoutMessage + `"}`

	return func(next http.Handler) http.Handler {
		limited := http.TimeoutHandler(next, timeout, message)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limited.ServeHTTP(&timeoutResponseWriter{ResponseWriter: w}, r)
		})
	}
}

// timeoutResponseWriter labels the 503 that http.TimeoutHandler writes on its
// own, which carries no Content-Type. Handler responses keep their headers.
type timeoutResponseWriter struct {
	http.ResponseWriter
}

func (w *timeoutResponseWriter) WriteHeader(statusCode int) {
	if statusCode == http.StatusServiceUnavailable && w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.ResponseWriter.WriteHeader(statusCode)
}
