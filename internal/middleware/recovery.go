package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

const InternalErrorMessage = "Error interno del servidor"

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}
				slog.Error("panic recovered",
					"path", r.URL.Path,
					"error", fmt.Sprintf("%v", recovered),
					"stack", string(debug.Stack()))
				writeMessage(w, http.StatusInternalServerError, InternalErrorMessage)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
