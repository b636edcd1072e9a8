package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/giftpanner/storefront/internal/modules/catalog"
	"github.com/giftpanner/storefront/internal/platform/errs"
)

// Service defines the cart aggregate.
type Service interface {
	// AddToCart merges quantity into the line for product.ID, or appends a
	// new line holding a snapshot of product. Stock is not checked.
	AddToCart(ctx context.Context, product catalog.Product, quantity int) error

	// RemoveFromCart deletes the line for productID. Unknown ids are a no-op.
	RemoveFromCart(ctx context.Context, productID int) error

	// UpdateQuantity sets the line's quantity exactly. Zero or less removes
	// the line; unknown ids are a no-op.
	UpdateQuantity(ctx context.Context, productID, quantity int) error

	// ClearCart empties the cart.
	ClearCart(ctx context.Context) error

	// Lines returns a copy of the current lines in insertion order.
	Lines() []Line

	// Total is the sum of price × quantity over all lines.
	Total() float64

	// Count is the sum of quantities (not the number of lines).
	Count() int

	// Contents reads lines, total and count together, so the three always
	// describe the same cart.
	Contents() Contents
}

// service keeps the lines in memory and writes a full snapshot after every
// mutation. A mutation is built on a copy and only committed once the
// snapshot is stored, so a failed write leaves the cart as it was.
type service struct {
	mu    sync.Mutex
	repo  Repository
	lines []Line
}

// NewService loads the stored cart once. Unreadable stored data has already
// degraded to an empty cart in the repository; an error here means the
// backend itself failed, and starting empty would overwrite the stored cart
// on the next mutation.
func NewService(ctx context.Context, repo Repository) (Service, error) {
	lines, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	log.Ctx(ctx).Debug().Int("lines", len(lines)).Msg("cart restored")
	return &service{repo: repo, lines: lines}, nil
}

func (s *service) AddToCart(ctx context.Context, product catalog.Product, quantity int) error {
	if quantity < 1 {
		return errs.Invalid("quantity", "quantity must be at least 1")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot()
	merged := false
	for i := range next {
		if next[i].Product.ID == product.ID {
			next[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		next = append(next, Line{Product: product, Quantity: quantity})
	}
	return s.commit(ctx, next)
}

func (s *service) RemoveFromCart(ctx context.Context, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(ctx, productID)
}

func (s *service) UpdateQuantity(ctx context.Context, productID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.remove(ctx, productID)
	}

	i := s.indexOf(productID)
	if i < 0 {
		return nil
	}
	next := s.snapshot()
	next[i].Quantity = quantity
	return s.commit(ctx, next)
}

func (s *service) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, []Line{})
}

func (s *service) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *service) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total()
}

func (s *service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count()
}

func (s *service) Contents() Contents {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Contents{Lines: s.snapshot(), Total: s.total(), Count: s.count()}
}

func (s *service) total() float64 {
	var total float64
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

func (s *service) count() int {
	var count int
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// remove expects s.mu to be held.
func (s *service) remove(ctx context.Context, productID int) error {
	i := s.indexOf(productID)
	if i < 0 {
		return nil
	}
	next := make([]Line, 0, len(s.lines)-1)
	next = append(next, s.lines[:i]...)
	next = append(next, s.lines[i+1:]...)
	return s.commit(ctx, next)
}

func (s *service) indexOf(productID int) int {
	for i, l := range s.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}

func (s *service) snapshot() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *service) commit(ctx context.Context, next []Line) error {
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	s.lines = next
	return nil
}
