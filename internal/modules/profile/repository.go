package profile

import (
	"context"

	"github.com/giftpanner/storefront/internal/platform/kv"
)

// StorageKey is where the singleton profile record is persisted.
const StorageKey = "gift_panner_customer"

// Repository persists the singleton profile.
type Repository interface {
	// Get returns nil when no (readable) profile is stored.
	Get(ctx context.Context) (*Profile, error)
	Put(ctx context.Context, p *Profile) error
	Delete(ctx context.Context) error
}

type kvRepository struct {
	store kv.Store
}

// NewKVRepository stores the profile as a JSON object under StorageKey.
func NewKVRepository(store kv.Store) Repository {
	return &kvRepository{store: store}
}

func (r *kvRepository) Get(ctx context.Context) (*Profile, error) {
	p, ok, err := kv.LoadJSON[*Profile](ctx, r.store, StorageKey)
	if err != nil || !ok {
		return nil, err
	}
	return p, nil
}

func (r *kvRepository) Put(ctx context.Context, p *Profile) error {
	return kv.SaveJSON(ctx, r.store, StorageKey, p)
}

func (r *kvRepository) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, StorageKey)
}
