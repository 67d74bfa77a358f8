package handler

import (
	"net/http"

	"marketplace-api/internal/middleware"
	"marketplace-api/internal/model"
	"marketplace-api/internal/service"
)

type ProductHandler struct {
	service *service.ProductService
}

func NewProductHandler(service *service.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List answers 204 when there is nothing to show, including when the store
// cannot be reached.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, errProductsNotFound.Wrap(err))
		return
	}
	if len(products) == 0 {
		writeError(w, r, errProductsNotFound)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Mine(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, errProductsNotFound.Wrap(model.ErrUnauthorized))
		return
	}

	products, err := h.service.ListByOwner(r.Context(), claims.ID)
	if err != nil {
		writeError(w, r, errProductsNotFound.Wrap(err))
		return
	}
	if len(products) == 0 {
		writeError(w, r, errProductsNotFound)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Publish(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, errPublishFailed.Wrap(model.ErrUnauthorized))
		return
	}

	var payload model.PublishProductRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, errPublishFailed.Wrap(err))
		return
	}

	if _, err := h.service.Publish(r.Context(), claims.ID, payload); err != nil {
		writeError(w, r, errPublishFailed.Wrap(err))
		return
	}

	writeMessage(w, http.StatusCreated, msgPublishOK)
}
