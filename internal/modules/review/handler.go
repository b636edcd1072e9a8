package review

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/giftpanner/storefront/internal/platform/errs"
	"github.com/giftpanner/storefront/internal/platform/response"
)

// ProductCheck reports an error when productID is not a catalog product.
type ProductCheck func(ctx context.Context, productID int) error

// Handler exposes review HTTP endpoints. It is the form layer: submissions
// are validated here before they reach the store.
type Handler struct {
	service Service
	check   ProductCheck
}

func NewHandler(service Service, check ProductCheck) *Handler {
	return &Handler{service: service, check: check}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/products/{productID}/reviews", func(r chi.Router) {
		r.Get("/", h.listReviews)
		r.Post("/", h.submitReview)
	})
	r.Delete("/api/v1/reviews/{reviewID}", h.deleteReview)
}

type productReviews struct {
	Reviews []Review `json:"reviews"`
	Summary Summary  `json:"summary"`
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.productID(w, r)
	if !ok {
		return
	}
	all, err := h.service.AllReviews(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, productReviews{
		Reviews: SortNewestFirst(ForProduct(all, productID)),
		Summary: Summarize(all, productID),
	})
}

func (h *Handler) submitReview(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.productID(w, r)
	if !ok {
		return
	}
	var req SubmitRequest
	if !response.Decode(w, r, &req) {
		return
	}
	if err := ValidateSubmission(req.Rating, req.Comment, req.Author); err != nil {
		response.Error(w, r, err)
		return
	}
	created, err := h.service.AddReview(r.Context(), productID, req.Rating, req.Comment, req.Author)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteReview(r.Context(), chi.URLParam(r, "reviewID")); err != nil {
		response.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) productID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		response.Error(w, r, errs.Invalid("productId", "product id must be an integer"))
		return 0, false
	}
	if h.check != nil {
		if err := h.check(r.Context(), id); err != nil {
			response.Error(w, r, err)
			return 0, false
		}
	}
	return id, true
}
