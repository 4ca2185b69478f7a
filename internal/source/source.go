// Package source defines the data-source collaborator that supplies
// labeled examples, and a registry of named source constructors.
package source

import (
	"context"

	"github.com/crimson-sun/sway/internal/model"
)

// DefaultPageSize bounds one retrieval page when a config leaves it unset.
const DefaultPageSize = 100

// Source supplies a dataset of labeled posts. Partial results are expected
// and never an error: ids that no longer resolve (deleted posts) are
// silently omitted from the returned slice.
type Source interface {
	// Fetch returns the examples for the given ids, page by page,
	// preserving id order for the ids that resolve.
	Fetch(ctx context.Context, ids []string) ([]model.Example, error)

	// All returns every example the source holds.
	All(ctx context.Context) ([]model.Example, error)
}

// Config holds provider-specific source settings.
type Config struct {
	Provider string
	Path     string
	PageSize int
	Extra    map[string]string
}
