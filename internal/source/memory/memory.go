// Package memory provides an in-process Source backed by a fixed slice of
// examples. Used as the test fixture source and by the public facade when
// the caller already holds a dataset.
package memory

import (
	"context"

	"github.com/crimson-sun/sway/internal/model"
	"github.com/crimson-sun/sway/internal/source"
)

func init() {
	source.Register("memory", func(cfg source.Config) (source.Source, error) {
		return New(nil, cfg.PageSize), nil
	})
}

// Source holds examples in memory, indexed by id.
type Source struct {
	examples []model.Example
	byID     map[string]model.Example
	pageSize int
}

// New creates a memory Source over the given examples.
func New(examples []model.Example, pageSize int) *Source {
	if pageSize <= 0 {
		pageSize = source.DefaultPageSize
	}
	byID := make(map[string]model.Example, len(examples))
	for _, ex := range examples {
		byID[ex.ID] = ex
	}
	return &Source{examples: examples, byID: byID, pageSize: pageSize}
}

// Fetch resolves ids page by page. Unknown ids are silently omitted.
func (s *Source) Fetch(ctx context.Context, ids []string) ([]model.Example, error) {
	var out []model.Example
	for start := 0; start < len(ids); start += s.pageSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := start + s.pageSize
		if end > len(ids) {
			end = len(ids)
		}
		for _, id := range ids[start:end] {
			if ex, ok := s.byID[id]; ok {
				out = append(out, ex)
			}
		}
	}
	return out, nil
}

// All returns every held example in insertion order.
func (s *Source) All(ctx context.Context) ([]model.Example, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]model.Example, len(s.examples))
	copy(out, s.examples)
	return out, nil
}
