package review

// DateLayout is the ISO-8601 form reviews are stamped with (UTC, millisecond
// precision).
const DateLayout = "2006-01-02T15:04:05.000Z"

// Review is one customer's star rating and comment on a product. All
// products share one flat collection; ProductID associates a review with
// its product.
type Review struct {
	ID        string `json:"id"`
	ProductID int    `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Author    string `json:"author"`
	Date      string `json:"date"`
}

// Summary is the aggregate rating of one product.
type Summary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// SubmitRequest is the review form payload.
type SubmitRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Author  string `json:"author"`
}
