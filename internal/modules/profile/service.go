package profile

import (
	"context"
	"strings"
	"sync"

	"github.com/giftpanner/storefront/internal/platform/errs"
)

// Service defines the customer profile gate.
type Service interface {
	// Get returns the stored profile, or nil when there is none.
	Get(ctx context.Context) (*Profile, error)

	// Save validates and persists p. Name, phone and address are required
	// after trimming; the first missing one is reported as a ValidationError
	// and nothing is written.
	Save(ctx context.Context, p Profile) (*Profile, error)

	// Create is Save for the Ungated state only: it fails with
	// errs.ErrProfileExists once a profile is stored. The check and the
	// write happen under one lock.
	Create(ctx context.Context, p Profile) (*Profile, error)

	// Clear removes the profile. Reset and tests only.
	Clear(ctx context.Context) error

	// State reports whether the gate has been passed.
	State(ctx context.Context) (GateState, error)
}

type service struct {
	// mu serialises writes so Create's presence check cannot go stale.
	mu   sync.Mutex
	repo Repository
}

// NewService creates a new profile service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context) (*Profile, error) {
	return s.repo.Get(ctx)
}

func (s *service) Save(ctx context.Context, p Profile) (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, p)
}

func (s *service) Create(ctx context.Context, p Profile) (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.ErrProfileExists
	}
	return s.save(ctx, p)
}

func (s *service) save(ctx context.Context, p Profile) (*Profile, error) {
	clean := Profile{
		Name:     strings.TrimSpace(p.Name),
		Phone:    strings.TrimSpace(p.Phone),
		Address:  strings.TrimSpace(p.Address),
		AltPhone: strings.TrimSpace(p.AltPhone),
	}
	if err := validate(clean); err != nil {
		return nil, err
	}
	if err := s.repo.Put(ctx, &clean); err != nil {
		return nil, err
	}
	return &clean, nil
}

func (s *service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Delete(ctx)
}

func (s *service) State(ctx context.Context) (GateState, error) {
	p, err := s.repo.Get(ctx)
	if err != nil {
		return Ungated, err
	}
	if p == nil {
		return Ungated, nil
	}
	return Gated, nil
}

func validate(p Profile) error {
	switch {
	case p.Name == "":
		return errs.Invalid("name", "name is required")
	case p.Phone == "":
		return errs.Invalid("phone", "phone is required")
	case p.Address == "":
		return errs.Invalid("address", "address is required")
	}
	return nil
}
