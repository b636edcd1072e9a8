package review

import (
	"sort"
	"time"
)

// SortNewestFirst orders reviews for display, newest Date first. The store
// keeps insertion order; display order is the consumer's choice. Reviews
// whose date cannot be parsed sort last.
func SortNewestFirst(reviews []Review) []Review {
	out := make([]Review, len(reviews))
	copy(out, reviews)

	stamps := make(map[string]time.Time, len(out))
	for _, r := range out {
		if t, err := time.Parse(time.RFC3339Nano, r.Date); err == nil {
			stamps[r.ID] = t
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ti, iok := stamps[out[i].ID]
		tj, jok := stamps[out[j].ID]
		switch {
		case iok && !jok:
			return true
		case !iok:
			return false
		case !ti.Equal(tj):
			return ti.After(tj)
		default:
			return out[i].ID > out[j].ID
		}
	})
	return out
}
