package kv

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

const boltBucket = "storefront"

// Bolt is a single-file durable Store backed by BoltDB.
type Bolt struct {
	db *bbolt.DB
}

// OpenBolt opens (creating if needed) a BoltDB file at path.
func OpenBolt(path string) (*Bolt, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucket)); err != nil {
			return fmt.Errorf("create %s bucket: %w", boltBucket, err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Bolt{db: db}, nil
}

func (b *Bolt) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if b == nil || b.db == nil {
		return "", false, errNotConfigured
	}

	var (
		value string
		found bool
	)
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucket))
		if bucket == nil {
			return fmt.Errorf("%s bucket is missing", boltBucket)
		}
		// The returned slice is only valid inside the transaction.
		if raw := bucket.Get([]byte(key)); raw != nil {
			value, found = string(raw), true
		}
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return value, found, nil
}

func (b *Bolt) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b == nil || b.db == nil {
		return errNotConfigured
	}
	if err := requireKey(key); err != nil {
		return err
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucket))
		if bucket == nil {
			return fmt.Errorf("%s bucket is missing", boltBucket)
		}
		return bucket.Put([]byte(key), []byte(value))
	})
}

func (b *Bolt) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b == nil || b.db == nil {
		return errNotConfigured
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucket))
		if bucket == nil {
			return fmt.Errorf("%s bucket is missing", boltBucket)
		}
		return bucket.Delete([]byte(key))
	})
}

// Close is nil-safe so callers can defer it on every startup path.
func (b *Bolt) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}
