// Package storefront assembles the storefront state core into one explicitly
// owned application object.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/giftpanner/storefront/internal/modules/cart"
	"github.com/giftpanner/storefront/internal/modules/catalog"
	"github.com/giftpanner/storefront/internal/modules/profile"
	"github.com/giftpanner/storefront/internal/modules/rating"
	"github.com/giftpanner/storefront/internal/modules/review"
	"github.com/giftpanner/storefront/internal/platform/config"
	"github.com/giftpanner/storefront/internal/platform/kv"
	"github.com/giftpanner/storefront/internal/platform/logging"
	"github.com/giftpanner/storefront/internal/platform/money"
)

// Options tunes a Store beyond its storage.
type Options struct {
	// Catalog defaults to the embedded product list.
	Catalog           catalog.Repository
	CurrencySymbol    string
	Locale            string
	AllowProfileReset bool
}

// Store owns every aggregate of one storefront and the storage behind them.
type Store struct {
	closers []func() error

	Catalog catalog.Service
	Cart    cart.Service
	Reviews review.Service
	Ratings *rating.Projector
	Profile profile.Service

	format     *money.Formatter
	allowReset bool
}

// New builds a Store over store. The cart is restored from storage here, so
// the store must be reachable.
func New(ctx context.Context, store kv.Store, opts Options) (*Store, error) {
	version, err := kv.EnsureSchema(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("storage schema: %w", err)
	}
	log.Ctx(ctx).Debug().Int("schema_version", version).Msg("storage ready")

	products := opts.Catalog
	if products == nil {
		if products, err = catalog.NewEmbeddedRepository(); err != nil {
			return nil, err
		}
	}

	shoppingCart, err := cart.NewService(ctx, cart.NewKVRepository(store))
	if err != nil {
		return nil, err
	}

	reviewRepo := review.NewKVRepository(store)
	ratings := rating.NewProjector(reviewRepo)

	return &Store{
		Catalog:    catalog.NewService(products, ratings),
		Cart:       shoppingCart,
		Reviews:    review.NewService(reviewRepo),
		Ratings:    ratings,
		Profile:    profile.NewService(profile.NewKVRepository(store)),
		format:     money.NewFormatter(opts.Locale, opts.CurrencySymbol),
		allowReset: opts.AllowProfileReset,
	}, nil
}

// Open builds a Store from process configuration, opening the storage
// backend and, when configured, the postgres product catalog.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	store, err := kv.Open(ctx, kv.Options{
		Driver:        cfg.Storage.Driver,
		Path:          cfg.Storage.Path,
		DatabaseURL:   cfg.Storage.DatabaseURL,
		RedisAddr:     cfg.Storage.RedisAddr,
		RedisPassword: cfg.Storage.RedisPassword,
		RedisDB:       cfg.Storage.RedisDB,
		KeyPrefix:     cfg.Storage.KeyPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	closers := []func() error{store.Close}
	fail := func(err error) (*Store, error) {
		for _, c := range closers {
			_ = c()
		}
		return nil, err
	}

	opts := Options{
		CurrencySymbol:    cfg.CurrencySymbol,
		Locale:            cfg.Locale,
		AllowProfileReset: cfg.AllowProfileReset,
	}
	if cfg.Catalog.Source == "postgres" {
		db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Catalog.DatabaseURL)
		if err != nil {
			return fail(fmt.Errorf("connect catalog database: %w", err))
		}
		closers = append(closers, db.Close)
		opts.Catalog = catalog.NewPostgresRepository(db)
	}

	s, err := New(ctx, store, opts)
	if err != nil {
		return fail(err)
	}
	s.closers = closers
	return s, nil
}

// Router mounts every module. Profile endpoints stay reachable while
// ungated; everything else sits behind the profile gate.
func (s *Store) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(logging.Logger)
	r.Use(middleware.Recoverer)

	profile.NewHandler(s.Profile, s.allowReset).RegisterRoutes(r)

	r.Group(func(r chi.Router) {
		r.Use(profile.RequireProfile(s.Profile))

		catalog.NewHandler(s.Catalog).RegisterRoutes(r)
		cart.NewHandler(s.Cart, s.Catalog, s.format).RegisterRoutes(r)
		review.NewHandler(s.Reviews, s.productExists).RegisterRoutes(r)
		rating.NewHandler(s.Ratings).RegisterRoutes(r)
	})
	return r
}

func (s *Store) productExists(ctx context.Context, id int) error {
	_, err := s.Catalog.GetProduct(ctx, id)
	return err
}

// Close releases the storage backend and any catalog database opened by
// Open. A Store built with New leaves its kv.Store to the caller.
func (s *Store) Close() error {
	var errList []error
	for _, c := range s.closers {
		if err := c(); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
