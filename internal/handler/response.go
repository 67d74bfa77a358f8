package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"marketplace-api/internal/model"
	"marketplace-api/internal/validation"
	"marketplace-api/pkg/apierror"
)

// Fixed failure responses, one per route. Whatever went wrong underneath, the
// client only ever sees these.
var (
	errLoginFailed      = apierror.New("LOGIN_FAILED", "Usuario no encontrado", "", http.StatusUnauthorized)
	errEmailTaken       = apierror.New("EMAIL_TAKEN", "Email ya registrado", "", http.StatusUnauthorized)
	errRegisterFailed   = apierror.New("REGISTER_FAILED", "Usuario no registrado", "", http.StatusUnauthorized)
	errProfileNotFound  = apierror.New("PROFILE_NOT_FOUND", "Datos no encontrados", "", http.StatusInternalServerError)
	errPublishFailed    = apierror.New("PUBLISH_FAILED", "Producto no publicado error en ruta", "", http.StatusUnauthorized)
	errContactFailed    = apierror.New("CONTACT_FAILED", "Error en el envío del formulario", "", http.StatusUnauthorized)
	errProductsNotFound = apierror.New("PRODUCTS_NOT_FOUND", "Productos no encontrados", "", http.StatusNoContent)
)

const (
	msgLoginOK     = "Usuario encontrado"
	msgRegisterOK  = "Usuario registrado con exito"
	msgPublishOK   = "Producto publicado con exito"
	msgContactSent = "Formulario enviado con éxito"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.MessageResponse{Message: message})
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, text)
}

// writeError logs the cause and renders the route failure. Errors that are not
// an *apierror.APIError become a bare 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr, ok := apierror.As(err)
	if !ok {
		slog.Error("unmapped handler error", "path", r.URL.Path, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	if apiErr.Err != nil {
		slog.Warn("route failed",
			"path", r.URL.Path,
			"code", apiErr.Code,
			"status", apiErr.HTTPStatus,
			"error", apiErr.Err)
	}

	if apiErr.HTTPStatus == http.StatusNoContent {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeMessage(w, apiErr.HTTPStatus, apiErr.Message)
}

// decodeJSON reads one JSON object into dst and validates it.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return fmt.Errorf("%w: empty body", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: decode body: %v", model.ErrInvalidInput, err)
	}
	if decoder.More() {
		return fmt.Errorf("%w: trailing data after JSON body", model.ErrInvalidInput)
	}

	return validation.Struct(dst)
}
