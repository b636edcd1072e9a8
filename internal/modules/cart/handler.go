package cart

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/giftpanner/storefront/internal/modules/catalog"
	"github.com/giftpanner/storefront/internal/platform/errs"
	"github.com/giftpanner/storefront/internal/platform/money"
	"github.com/giftpanner/storefront/internal/platform/response"
)

// ProductLookup resolves the product snapshot a new line is built from.
type ProductLookup interface {
	GetProduct(ctx context.Context, id int) (*catalog.Product, error)
}

// Handler exposes the cart drawer endpoints.
type Handler struct {
	service  Service
	products ProductLookup
	format   *money.Formatter
}

func NewHandler(service Service, products ProductLookup, format *money.Formatter) *Handler {
	return &Handler{service: service, products: products, format: format}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.getCart)
		r.Delete("/", h.clearCart)
		r.Post("/items", h.addItem)
		r.Put("/items/{productID}", h.updateItem)
		r.Delete("/items/{productID}", h.removeItem)
	})
}

func (h *Handler) view() View {
	c := h.service.Contents()
	return View{
		Items:          c.Lines,
		Total:          c.Total,
		Count:          c.Count,
		FormattedTotal: h.format.Format(c.Total),
	}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.view())
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if !response.Decode(w, r, &req) {
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	product, err := h.products.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	if err := h.service.AddToCart(r.Context(), *product, quantity); err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, h.view())
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathProductID(w, r)
	if !ok {
		return
	}
	var req UpdateQuantityRequest
	if !response.Decode(w, r, &req) {
		return
	}
	if err := h.service.UpdateQuantity(r.Context(), productID, req.Quantity); err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, h.view())
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathProductID(w, r)
	if !ok {
		return
	}
	if err := h.service.RemoveFromCart(r.Context(), productID); err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, h.view())
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearCart(r.Context()); err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, h.view())
}

func pathProductID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		response.Error(w, r, errs.Invalid("productId", "product id must be an integer"))
		return 0, false
	}
	return id, true
}
