package cart

import (
	"context"

	"github.com/giftpanner/storefront/internal/platform/kv"
)

// StorageKey is where the cart snapshot is persisted.
const StorageKey = "gift_panner_cart"

// Repository persists the whole cart as one snapshot.
type Repository interface {
	Load(ctx context.Context) ([]Line, error)
	Save(ctx context.Context, lines []Line) error
}

type kvRepository struct {
	store kv.Store
}

// NewKVRepository stores the cart as a JSON array of lines under StorageKey.
func NewKVRepository(store kv.Store) Repository {
	return &kvRepository{store: store}
}

// Load returns the stored lines. Missing or unreadable data is an empty
// cart. Lines that break the cart invariants (non-positive quantity, a
// repeated product id) are dropped.
func (r *kvRepository) Load(ctx context.Context) ([]Line, error) {
	stored, _, err := kv.LoadJSON[[]Line](ctx, r.store, StorageKey)
	if err != nil {
		return nil, err
	}

	lines := make([]Line, 0, len(stored))
	seen := make(map[int]bool, len(stored))
	for _, l := range stored {
		if l.Quantity < 1 || seen[l.Product.ID] {
			continue
		}
		seen[l.Product.ID] = true
		lines = append(lines, l)
	}
	return lines, nil
}

func (r *kvRepository) Save(ctx context.Context, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	return kv.SaveJSON(ctx, r.store, StorageKey, lines)
}
