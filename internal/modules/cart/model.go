package cart

import "github.com/giftpanner/storefront/internal/modules/catalog"

// Line is one product-quantity pairing. Product is a snapshot taken when the
// line was created, so later catalog edits do not reprice the cart.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal is price × quantity for the line.
func (l Line) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// AddItemRequest is the payload for putting a product in the cart.
type AddItemRequest struct {
	ProductID int  `json:"product_id"`
	Quantity  *int `json:"quantity,omitempty"`
}

// UpdateQuantityRequest is the payload for setting a line's quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// Contents is one consistent read of the cart.
type Contents struct {
	Lines []Line
	Total float64
	Count int
}

// View is the cart drawer read model.
type View struct {
	Items          []Line  `json:"items"`
	Total          float64 `json:"total"`
	Count          int     `json:"count"`
	FormattedTotal string  `json:"formatted_total"`
}
