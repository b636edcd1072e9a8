package review

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

// Service defines the review store operations.
type Service interface {
	// AddReview stamps a new review with an id and the current time, appends
	// it to the collection and persists. Input is not validated here.
	AddReview(ctx context.Context, productID, rating int, comment, author string) (*Review, error)

	// DeleteReview removes the review with reviewID. Unknown ids are a no-op.
	DeleteReview(ctx context.Context, reviewID string) error

	// ReviewsForProduct returns productID's reviews in stored order.
	ReviewsForProduct(ctx context.Context, productID int) ([]Review, error)

	// RatingSummary aggregates productID's ratings.
	RatingSummary(ctx context.Context, productID int) (Summary, error)

	// AllReviews returns a copy of the whole collection.
	AllReviews(ctx context.Context) ([]Review, error)
}

// Option customises a Service.
type Option func(*service)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithEntropy replaces the randomness behind review ids.
func WithEntropy(r io.Reader) Option {
	return func(s *service) { s.entropy = ulid.Monotonic(r, 0) }
}

type service struct {
	// mu serialises read-modify-write cycles on the snapshot.
	mu      sync.Mutex
	repo    Repository
	now     func() time.Time
	entropy *ulid.MonotonicEntropy
}

// NewService creates a review store over repo.
func NewService(repo Repository, opts ...Option) Service {
	s := &service{
		repo:    repo,
		now:     time.Now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) AddReview(ctx context.Context, productID, rating int, comment, author string) (*Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	id, err := ulid.New(ulid.Timestamp(now), s.entropy)
	if err != nil {
		return nil, fmt.Errorf("generate review id: %w", err)
	}

	r := Review{
		ID:        id.String(),
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
		Author:    author,
		Date:      now.Format(DateLayout),
	}
	if err := s.repo.Save(ctx, append(all, r)); err != nil {
		return nil, fmt.Errorf("failed to persist review: %w", err)
	}

	log.Ctx(ctx).Debug().Str("review_id", r.ID).Int("product_id", productID).Msg("review added")
	return &r, nil
}

func (s *service) DeleteReview(ctx context.Context, reviewID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	kept := make([]Review, 0, len(all))
	for _, r := range all {
		if r.ID != reviewID {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(all) {
		return nil
	}
	if err := s.repo.Save(ctx, kept); err != nil {
		return fmt.Errorf("failed to persist reviews: %w", err)
	}
	return nil
}

func (s *service) ReviewsForProduct(ctx context.Context, productID int) ([]Review, error) {
	all, err := s.AllReviews(ctx)
	if err != nil {
		return nil, err
	}
	return ForProduct(all, productID), nil
}

func (s *service) RatingSummary(ctx context.Context, productID int) (Summary, error) {
	all, err := s.AllReviews(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(all, productID), nil
}

func (s *service) AllReviews(ctx context.Context) ([]Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Load(ctx)
}
