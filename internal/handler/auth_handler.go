package handler

import (
	"errors"
	"net/http"

	"marketplace-api/internal/middleware"
	"marketplace-api/internal/model"
	"marketplace-api/internal/service"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login answers 200 with a token, or 401 "Usuario no encontrado" for any
// failure, so unknown emails and wrong passwords look the same.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload model.LoginRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, errLoginFailed.Wrap(err))
		return
	}

	token, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			writeError(w, r, errLoginFailed)
			return
		}
		writeError(w, r, errLoginFailed.Wrap(err))
		return
	}

	writeJSON(w, http.StatusOK, model.LoginResponse{Message: msgLoginOK, Token: token})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload model.RegisterRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, errRegisterFailed.Wrap(err))
		return
	}

	if _, err := h.service.Register(r.Context(), payload); err != nil {
		if errors.Is(err, model.ErrUserAlreadyExists) {
			writeError(w, r, errEmailTaken)
			return
		}
		writeError(w, r, errRegisterFailed.Wrap(err))
		return
	}

	writeMessage(w, http.StatusCreated, msgRegisterOK)
}

// Profile returns the caller as a single-element array, the shape existing
// clients already consume.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, errProfileNotFound.Wrap(model.ErrUnauthorized))
		return
	}

	profile, err := h.service.Profile(r.Context(), claims)
	if err != nil {
		writeError(w, r, errProfileNotFound.Wrap(err))
		return
	}

	writeJSON(w, http.StatusCreated, []model.Profile{profile})
}
