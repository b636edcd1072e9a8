package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/giftpanner/storefront/internal/platform/errs"
	"github.com/giftpanner/storefront/internal/platform/response"
)

// WelcomePath is where ungated clients are sent to enter their details.
const WelcomePath = "/welcome"

type Handler struct {
	service    Service
	allowReset bool
}

// NewHandler builds the profile endpoints. allowReset exposes DELETE, which
// the storefront itself never offers.
func NewHandler(service Service, allowReset bool) *Handler {
	return &Handler{service: service, allowReset: allowReset}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/profile", func(r chi.Router) {
		r.Get("/", h.getProfile)
		r.Post("/", h.saveProfile)
		r.Get("/state", h.getState)
		if h.allowReset {
			r.Delete("/", h.clearProfile)
		}
	})
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Get(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	if p == nil {
		response.Error(w, r, errs.ErrNotFound)
		return
	}
	response.JSON(w, http.StatusOK, p)
}

// saveProfile is the only Ungated → Gated transition. Once gated the entry
// view is unreachable, so a second save is refused.
func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request) {
	var req Profile
	if !response.Decode(w, r, &req) {
		return
	}
	saved, err := h.service.Create(r.Context(), req)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, saved)
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.State(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]GateState{"state": state})
}

func (h *Handler) clearProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context()); err != nil {
		response.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
