package rating

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/giftpanner/storefront/internal/platform/errs"
	"github.com/giftpanner/storefront/internal/platform/response"
)

// Handler exposes batch rating lookups for product cards.
type Handler struct{ projector *Projector }

func NewHandler(projector *Projector) *Handler { return &Handler{projector: projector} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/v1/ratings", h.listRatings)
}

// listRatings answers GET /api/v1/ratings?product_id=1&product_id=2.
func (h *Handler) listRatings(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query()["product_id"]
	ids := make([]int, 0, len(raw))
	for _, v := range raw {
		id, err := strconv.Atoi(v)
		if err != nil {
			response.Error(w, r, errs.Invalid("product_id", "product_id must be an integer"))
			return
		}
		ids = append(ids, id)
	}

	summaries, err := h.projector.ForProducts(r.Context(), ids)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	// JSON object keys must be strings.
	out := make(map[string]Summary, len(summaries))
	for id, s := range summaries {
		out[strconv.Itoa(id)] = s
	}
	response.JSON(w, http.StatusOK, out)
}
