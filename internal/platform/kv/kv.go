// Package kv is the persistent key-value store adapter. It plays the role the
// browser's synchronous string storage plays for a web client: whole string
// values under fixed keys, with several interchangeable backends.
package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Store is a string-keyed store of string values.
type Store interface {
	// Get returns the value under key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set replaces the whole value under key.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

var errNotConfigured = errors.New("storage is not configured")

// Options selects and configures a backend for Open.
type Options struct {
	Driver        string
	Path          string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	KeyPrefix     string
}

// Open builds the backend named by opts.Driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	var (
		store Store
		err   error
	)
	switch strings.ToLower(opts.Driver) {
	case "memory":
		store = NewMemory()
	case "bolt", "":
		store, err = OpenBolt(opts.Path)
	case "sqlite":
		store, err = OpenSQLite(ctx, opts.Path)
	case "postgres":
		store, err = OpenPostgres(ctx, opts.DatabaseURL)
	case "redis":
		store, err = OpenRedis(ctx, RedisOptions{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}
	if opts.KeyPrefix != "" {
		store = WithPrefix(store, opts.KeyPrefix)
	}
	return store, nil
}

func requireKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("storage key is required")
	}
	return nil
}
