package catalog

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/giftpanner/storefront/internal/modules/rating"
)

// Ratings supplies per-product rating summaries for product cards.
type Ratings interface {
	ForProducts(ctx context.Context, productIDs []int) (map[int]rating.Summary, error)
}

// Service defines catalog lookups. It is the product lookup-by-identity
// source the cart takes snapshots from.
type Service interface {
	GetProduct(ctx context.Context, id int) (*Product, error)
	GetByASIN(ctx context.Context, asin string) (*Product, error)
	ListProducts(ctx context.Context) ([]*ProductCard, error)
	// Search matches query against product names (case-insensitive
	// substring) and ASINs. An empty query lists everything.
	Search(ctx context.Context, query string) ([]*ProductCard, error)
}

type service struct {
	repo    Repository
	ratings Ratings
}

// NewService creates a catalog service. ratings may be nil, in which case
// cards carry no rating.
func NewService(repo Repository, ratings Ratings) Service {
	return &service{repo: repo, ratings: ratings}
}

func (s *service) GetProduct(ctx context.Context, id int) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByASIN(ctx context.Context, asin string) (*Product, error) {
	return s.repo.GetByASIN(ctx, asin)
}

func (s *service) ListProducts(ctx context.Context) ([]*ProductCard, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.cards(ctx, products), nil
}

func (s *service) Search(ctx context.Context, query string) ([]*ProductCard, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if q == "" {
		return s.cards(ctx, products), nil
	}

	var matched []*Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.ASIN), q) {
			matched = append(matched, p)
		}
	}
	return s.cards(ctx, matched), nil
}

// cards decorates products with ratings. A failed rating read leaves the
// cards unrated rather than failing the listing.
func (s *service) cards(ctx context.Context, products []*Product) []*ProductCard {
	out := make([]*ProductCard, 0, len(products))
	if len(products) == 0 {
		return out
	}

	var summaries map[int]rating.Summary
	if s.ratings != nil {
		ids := make([]int, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID)
		}
		var err error
		summaries, err = s.ratings.ForProducts(ctx, ids)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Msg("listing products without ratings")
		}
	}

	for _, p := range products {
		card := &ProductCard{Product: *p}
		if sum, ok := summaries[p.ID]; ok {
			card.Rating, card.ReviewCount = sum.Average, sum.Count
		}
		out = append(out, card)
	}
	return out
}
