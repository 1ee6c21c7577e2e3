package airtable

import (
	"context"
	"slices"

	"github.com/pokedex/backend/internal/domain/pokemon"
)

// Repository implements pokemon.Repository on top of a remote table.
//
// The API has no conditional insert, so check-then-create is serialized
// in process through a one-slot channel that also honours ctx. Uniqueness
// holds only while a single service instance writes to the table.
type Repository struct {
	client *Client
	writes chan struct{}
}

// NewRepository creates a repository backed by client
func NewRepository(client *Client) *Repository {
	return &Repository{
		client: client,
		writes: make(chan struct{}, 1),
	}
}

// Insert creates the row unless a row with the same number already exists
func (r *Repository) Insert(ctx context.Context, number pokemon.Number, name pokemon.Name, types pokemon.Types) (*pokemon.Pokemon, error) {
	select {
	case r.writes <- struct{}{}:
	case <-ctx.Done():
		return nil, pokemon.ErrUnknown.Wrap(ctx.Err())
	}
	defer func() { <-r.writes }()

	existing, err := r.client.ListRecords(ctx, ListQuery{Formula: numberFormula(number), MaxRecords: 1})
	if err != nil {
		return nil, pokemon.ErrUnknown.Wrap(err)
	}
	if len(existing.Records) > 0 {
		return nil, pokemon.ErrConflict
	}

	p := pokemon.New(number, name, types)
	if _, err := r.client.CreateRecord(ctx, FieldsFromDomain(p)); err != nil {
		return nil, pokemon.ErrUnknown.Wrap(err)
	}
	return p, nil
}

// FetchAll pages through the table and returns every row ordered by number
func (r *Repository) FetchAll(ctx context.Context) ([]*pokemon.Pokemon, error) {
	out := make([]*pokemon.Pokemon, 0)
	q := ListQuery{PageSize: maxPageSize, SortField: FieldNumber}
	for {
		page, err := r.client.ListRecords(ctx, q)
		if err != nil {
			return nil, pokemon.ErrUnknown.Wrap(err)
		}
		for i := range page.Records {
			p, err := page.Records[i].ToDomain()
			if err != nil {
				return nil, pokemon.ErrUnknown.Wrap(err)
			}
			out = append(out, p)
		}
		if page.Offset == "" {
			break
		}
		q.Offset = page.Offset
	}

	// rows edited by hand in the table UI may not honour the sort
	slices.SortStableFunc(out, func(a, b *pokemon.Pokemon) int {
		return int(a.Number().Value()) - int(b.Number().Value())
	})
	return out, nil
}

// FetchOne returns the row stored under number
func (r *Repository) FetchOne(ctx context.Context, number pokemon.Number) (*pokemon.Pokemon, error) {
	page, err := r.client.ListRecords(ctx, ListQuery{Formula: numberFormula(number), MaxRecords: 1})
	if err != nil {
		return nil, pokemon.ErrUnknown.Wrap(err)
	}
	if len(page.Records) == 0 {
		return nil, pokemon.ErrNotFound
	}

	p, err := page.Records[0].ToDomain()
	if err != nil {
		return nil, pokemon.ErrUnknown.Wrap(err)
	}
	return p, nil
}

// Ping checks that the table is reachable
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}

var _ pokemon.Repository = (*Repository)(nil)
