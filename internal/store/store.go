// Package store persists fetched datasets between runs.
package store

import (
	"context"
	"crypto/rand"

	"github.com/oklog/ulid/v2"

	"github.com/crimson-sun/sway/internal/model"
)

// Store caches labeled examples so a dataset fetched once can be reused.
type Store interface {
	Put(ctx context.Context, examples []model.Example) error
	List(ctx context.Context) ([]model.Example, error)
	Count(ctx context.Context) (int, error)
	Close() error
}

var entropy = ulid.Monotonic(rand.Reader, 0)

// EnsureIDs returns a copy of examples where every empty ID has been
// assigned a fresh ULID. Existing ids are left untouched.
func EnsureIDs(examples []model.Example) []model.Example {
	out := make([]model.Example, len(examples))
	copy(out, examples)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = ulid.MustNew(ulid.Now(), entropy).String()
		}
	}
	return out
}
