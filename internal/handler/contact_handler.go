package handler

import (
	"net/http"

	"marketplace-api/internal/model"
	"marketplace-api/internal/service"
)

type ContactHandler struct {
	service *service.ContactService
}

func NewContactHandler(service *service.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit replies in plain text on success and JSON on failure.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var payload model.ContactRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, errContactFailed.Wrap(err))
		return
	}

	if _, err := h.service.Submit(r.Context(), payload); err != nil {
		writeError(w, r, errContactFailed.Wrap(err))
		return
	}

	writeText(w, http.StatusOK, msgContactSent)
}
