package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/giftpanner/storefront/internal/platform/response"
)

// Handler exposes catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Get("/products/{asin}", h.getProduct)
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	cards, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, cards)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetByASIN(r.Context(), chi.URLParam(r, "asin"))
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, p)
}
