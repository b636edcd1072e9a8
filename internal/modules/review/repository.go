package review

import (
	"context"

	"github.com/giftpanner/storefront/internal/platform/kv"
)

// StorageKey is where the flat review collection is persisted.
const StorageKey = "gift_panner_reviews"

// Repository persists the whole review collection as one snapshot.
type Repository interface {
	Load(ctx context.Context) ([]Review, error)
	Save(ctx context.Context, reviews []Review) error
}

type kvRepository struct {
	store kv.Store
}

// NewKVRepository stores reviews as a JSON array under StorageKey.
func NewKVRepository(store kv.Store) Repository {
	return &kvRepository{store: store}
}

// Load returns the stored collection; missing or unreadable data is an empty
// collection, not an error.
func (r *kvRepository) Load(ctx context.Context) ([]Review, error) {
	reviews, _, err := kv.LoadJSON[[]Review](ctx, r.store, StorageKey)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []Review{}
	}
	return reviews, nil
}

func (r *kvRepository) Save(ctx context.Context, reviews []Review) error {
	if reviews == nil {
		reviews = []Review{}
	}
	return kv.SaveJSON(ctx, r.store, StorageKey, reviews)
}
