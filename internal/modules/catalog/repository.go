package catalog

import "context"

// Repository defines read access to the product catalog.
type Repository interface {
	GetByID(ctx context.Context, id int) (*Product, error)
	GetByASIN(ctx context.Context, asin string) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
}
