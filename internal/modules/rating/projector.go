// Package rating is the read-only rating projection consumed by catalog
// browsing. It reads the persisted review snapshot on demand and never
// mutates it.
package rating

import (
	"context"

	"github.com/giftpanner/storefront/internal/modules/review"
)

// Summary is a product's {average, count}.
type Summary = review.Summary

// Reader is the read half of the review repository.
type Reader interface {
	Load(ctx context.Context) ([]review.Review, error)
}

// Projector computes rating summaries from the stored reviews. Nothing is
// cached; every call reads the current snapshot.
type Projector struct {
	reviews Reader
}

func NewProjector(reviews Reader) *Projector {
	return &Projector{reviews: reviews}
}

// ForProduct summarises one product.
func (p *Projector) ForProduct(ctx context.Context, productID int) (Summary, error) {
	all, err := p.reviews.Load(ctx)
	if err != nil {
		return Summary{}, err
	}
	return review.Summarize(all, productID), nil
}

// ForProducts summarises several products from a single snapshot read, one
// entry per requested id (zero summaries included).
func (p *Projector) ForProducts(ctx context.Context, productIDs []int) (map[int]Summary, error) {
	all, err := p.reviews.Load(ctx)
	if err != nil {
		return nil, err
	}

	type acc struct{ sum, n int }
	wanted := make(map[int]*acc, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = &acc{}
	}
	for _, r := range all {
		if a, ok := wanted[r.ProductID]; ok {
			a.sum += r.Rating
			a.n++
		}
	}

	out := make(map[int]Summary, len(wanted))
	for id, a := range wanted {
		out[id] = Summary{Average: review.RoundedMean(a.sum, a.n), Count: a.n}
	}
	return out, nil
}
