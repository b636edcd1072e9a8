package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/giftpanner/storefront/internal/platform/errs"
)

//go:embed products.yaml
var embeddedProducts []byte

type seedFile struct {
	Products []Product `yaml:"products"`
}

type memoryRepo struct {
	products []*Product
	byID     map[int]*Product
	byASIN   map[string]*Product
}

// NewEmbeddedRepository serves the catalog shipped inside the binary.
func NewEmbeddedRepository() (Repository, error) {
	return NewYAMLRepository(embeddedProducts)
}

// NewYAMLRepository parses a products YAML document into a read-only repository.
func NewYAMLRepository(doc []byte) (Repository, error) {
	var seed seedFile
	if err := yaml.Unmarshal(doc, &seed); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	r := &memoryRepo{
		byID:   make(map[int]*Product, len(seed.Products)),
		byASIN: make(map[string]*Product, len(seed.Products)),
	}
	for i := range seed.Products {
		p := seed.Products[i]
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		r.products = append(r.products, &p)
		r.byID[p.ID] = &p
		if p.ASIN != "" {
			r.byASIN[strings.ToUpper(p.ASIN)] = &p
		}
	}
	return r, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int) (*Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, errs.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (r *memoryRepo) GetByASIN(_ context.Context, asin string) (*Product, error) {
	p, ok := r.byASIN[strings.ToUpper(strings.TrimSpace(asin))]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", asin, errs.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (r *memoryRepo) List(_ context.Context) ([]*Product, error) {
	out := make([]*Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}
