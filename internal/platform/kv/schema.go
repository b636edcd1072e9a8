package kv

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	// SchemaKey holds the layout version of the persisted collections.
	SchemaKey = "gift_panner_schema"
	// SchemaVersion is the layout this build reads and writes.
	SchemaVersion = 1
)

// EnsureSchema records SchemaVersion when no version is stored yet and
// reports the version found. A newer stored version is logged, not rejected:
// readers degrade to empty on anything they cannot decode.
func EnsureSchema(ctx context.Context, store Store) (int, error) {
	raw, ok, err := store.Get(ctx, SchemaKey)
	if err != nil {
		return 0, err
	}
	if !ok {
		if err := store.Set(ctx, SchemaKey, strconv.Itoa(SchemaVersion)); err != nil {
			return 0, err
		}
		return SchemaVersion, nil
	}

	version, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		log.Ctx(ctx).Warn().Str("key", SchemaKey).Str("value", raw).Msg("unreadable schema version")
		return 0, nil
	}
	if version > SchemaVersion {
		log.Ctx(ctx).Warn().
			Int("stored", version).
			Int("supported", SchemaVersion).
			Msg("stored data was written by a newer build")
	}
	return version, nil
}
