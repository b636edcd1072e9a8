package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/giftpanner/storefront/internal/platform/errs"
)

type postgresRepo struct{ db *sqlx.DB }

// NewPostgresRepository reads products from a products table whose columns
// match the Product db tags.
func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepo{db: db} }

const productColumns = `id, name, description, price, sku, asin, quantity, image, amazon_image`

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*Product, error) {
	p := &Product{}
	err := r.db.GetContext(ctx, p, `SELECT `+productColumns+` FROM products WHERE id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", id, errs.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}

func (r *postgresRepo) GetByASIN(ctx context.Context, asin string) (*Product, error) {
	p := &Product{}
	err := r.db.GetContext(ctx, p, `SELECT `+productColumns+` FROM products WHERE UPPER(asin)=UPPER($1)`, asin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %s: %w", asin, errs.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", asin, err)
	}
	return p, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]*Product, error) {
	var products []*Product
	if err := r.db.SelectContext(ctx, &products, `SELECT `+productColumns+` FROM products ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
