// Package memstore implements the example store in memory.
package memstore

import (
	"context"
	"sync"

	"github.com/crimson-sun/sway/internal/model"
	"github.com/crimson-sun/sway/internal/store"
)

// Store keeps examples in a map keyed by id. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	examples map[string]model.Example
	order    []string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{examples: make(map[string]model.Example)}
}

// Put upserts examples, assigning ULIDs to any without an id.
func (s *Store) Put(ctx context.Context, examples []model.Example) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ex := range store.EnsureIDs(examples) {
		if _, exists := s.examples[ex.ID]; !exists {
			s.order = append(s.order, ex.ID)
		}
		s.examples[ex.ID] = ex
	}
	return nil
}

// List returns all examples in insertion order.
func (s *Store) List(ctx context.Context) ([]model.Example, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Example, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.examples[id])
	}
	return out, nil
}

// Count returns the number of stored examples.
func (s *Store) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.examples), nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error { return nil }
