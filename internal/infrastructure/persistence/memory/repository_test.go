package memory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pokedex/backend/internal/domain/pokemon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pikachu() (pokemon.Number, pokemon.Name, pokemon.Types) {
	return pokemon.MustNewNumber(25), pokemon.MustNewName("Pikachu"), pokemon.MustNewTypes("Electric")
}

func TestRepository_Insert(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a new record", func(t *testing.T) {
		repo := NewRepository()
		n, name, types := pikachu()

		p, err := repo.Insert(ctx, n, name, types)
		require.NoError(t, err)
		assert.Equal(t, uint16(25), p.Number().Value())
		assert.Equal(t, 1, repo.Len())
	})

	t.Run("rejects a duplicate number", func(t *testing.T) {
		repo := NewRepository()
		n, name, types := pikachu()

		_, err := repo.Insert(ctx, n, name, types)
		require.NoError(t, err)

		_, err = repo.Insert(ctx, n, pokemon.MustNewName("Raichu"), types)
		assert.True(t, errors.Is(err, pokemon.ErrConflict))
		assert.Equal(t, 1, repo.Len())
	})

	t.Run("failing repository reports unknown", func(t *testing.T) {
		repo := NewRepository(WithError())
		n, name, types := pikachu()

		_, err := repo.Insert(ctx, n, name, types)
		assert.True(t, errors.Is(err, pokemon.ErrUnknown))
	})
}

func TestRepository_InsertIsAtomicUnderContention(t *testing.T) {
	repo := NewRepository()
	n, name, types := pikachu()

	const workers = 64
	var successes, conflicts int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.Insert(context.Background(), n, name, types)
			switch {
			case err == nil:
				atomic.AddInt32(&successes, 1)
			case errors.Is(err, pokemon.ErrConflict):
				atomic.AddInt32(&conflicts, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes)
	assert.Equal(t, int32(workers-1), conflicts)
}

func TestRepository_FetchAll(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store returns empty slice", func(t *testing.T) {
		all, err := NewRepository().FetchAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("returns records ordered by number", func(t *testing.T) {
		repo := NewRepository(WithSeed(
			pokemon.New(pokemon.MustNewNumber(7), pokemon.MustNewName("Squirtle"), pokemon.MustNewTypes("Water")),
			pokemon.New(pokemon.MustNewNumber(1), pokemon.MustNewName("Bulbasaur"), pokemon.MustNewTypes("Grass", "Poison")),
			pokemon.New(pokemon.MustNewNumber(4), pokemon.MustNewName("Charmander"), pokemon.MustNewTypes("Fire")),
		))

		all, err := repo.FetchAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "Bulbasaur", all[0].Name().String())
		assert.Equal(t, "Charmander", all[1].Name().String())
		assert.Equal(t, "Squirtle", all[2].Name().String())
	})

	t.Run("failing repository reports unknown", func(t *testing.T) {
		_, err := NewRepository(WithError()).FetchAll(ctx)
		assert.True(t, errors.Is(err, pokemon.ErrUnknown))
	})
}

func TestRepository_FetchOne(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	n, name, types := pikachu()
	_, err := repo.Insert(ctx, n, name, types)
	require.NoError(t, err)

	t.Run("finds stored record", func(t *testing.T) {
		p, err := repo.FetchOne(ctx, n)
		require.NoError(t, err)
		assert.Equal(t, "Pikachu", p.Name().String())
	})

	t.Run("missing record", func(t *testing.T) {
		_, err := repo.FetchOne(ctx, pokemon.MustNewNumber(26))
		assert.True(t, errors.Is(err, pokemon.ErrNotFound))
	})
}
