package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

// LoadJSON decodes the JSON value under key into a fresh T.
//
// A missing key and an undecodable value both yield the zero T with a nil
// error: a corrupt cache degrades to empty instead of blocking the caller.
// The anomaly is logged. Only backend failures are returned.
func LoadJSON[T any](ctx context.Context, store Store, key string) (T, bool, error) {
	var zero T
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return zero, false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return zero, false, nil
	}

	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("discarding unreadable stored value")
		return zero, false, nil
	}
	return out, true, nil
}

// SaveJSON replaces the value under key with the JSON encoding of v.
func SaveJSON(ctx context.Context, store Store, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(payload)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
