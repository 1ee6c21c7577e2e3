// Package memory provides a process-local Pokemon repository backed by a map.
// Contents do not survive a restart.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/pokedex/backend/internal/domain/pokemon"
)

var errInjected = errors.New("memory repository configured to fail")

// Repository implements pokemon.Repository using an in-memory map
type Repository struct {
	mu      sync.RWMutex
	records map[uint16]*pokemon.Pokemon
	failing bool
}

// Option configures a Repository
type Option func(*Repository)

// WithError makes every operation fail with pokemon.ErrUnknown.
// Used to exercise failure paths from the use-case layer.
func WithError() Option {
	return func(r *Repository) {
		r.failing = true
	}
}

// WithSeed preloads records without going through Insert
func WithSeed(records ...*pokemon.Pokemon) Option {
	return func(r *Repository) {
		for _, p := range records {
			r.records[p.Number().Value()] = p
		}
	}
}

// NewRepository creates an empty in-memory repository
func NewRepository(opts ...Option) *Repository {
	r := &Repository{
		records: make(map[uint16]*pokemon.Pokemon),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Insert stores p unless the number is already present. The check and the
// write happen under the same lock.
func (r *Repository) Insert(_ context.Context, number pokemon.Number, name pokemon.Name, types pokemon.Types) (*pokemon.Pokemon, error) {
	if r.failing {
		return nil, pokemon.ErrUnknown.Wrap(errInjected)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[number.Value()]; exists {
		return nil, pokemon.ErrConflict
	}

	p := pokemon.New(number, name, types)
	r.records[number.Value()] = p
	return p, nil
}

// FetchAll returns all records ordered by number
func (r *Repository) FetchAll(_ context.Context) ([]*pokemon.Pokemon, error) {
	if r.failing {
		return nil, pokemon.ErrUnknown.Wrap(errInjected)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*pokemon.Pokemon, 0, len(r.records))
	for _, p := range r.records {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Number().Value() < out[j].Number().Value()
	})
	return out, nil
}

// FetchOne returns the record stored under number
func (r *Repository) FetchOne(_ context.Context, number pokemon.Number) (*pokemon.Pokemon, error) {
	if r.failing {
		return nil, pokemon.ErrUnknown.Wrap(errInjected)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.records[number.Value()]
	if !ok {
		return nil, pokemon.ErrNotFound
	}
	return p, nil
}

// Len returns the number of stored records
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

var _ pokemon.Repository = (*Repository)(nil)
