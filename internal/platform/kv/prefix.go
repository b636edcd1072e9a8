package kv

import "context"

type prefixed struct {
	Store
	prefix string
}

// WithPrefix namespaces every key of inner, so several storefronts can share
// one database.
func WithPrefix(inner Store, prefix string) Store {
	return &prefixed{Store: inner, prefix: prefix}
}

// The key is checked before prefixing; a prefixed blank key is not blank.
func (p *prefixed) Get(ctx context.Context, key string) (string, bool, error) {
	if err := requireKey(key); err != nil {
		return "", false, err
	}
	return p.Store.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key, value string) error {
	if err := requireKey(key); err != nil {
		return err
	}
	return p.Store.Set(ctx, p.prefix+key, value)
}

func (p *prefixed) Delete(ctx context.Context, key string) error {
	if err := requireKey(key); err != nil {
		return err
	}
	return p.Store.Delete(ctx, p.prefix+key)
}
