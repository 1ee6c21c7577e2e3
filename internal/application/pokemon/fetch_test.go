package pokemon

import (
	"context"
	"errors"
	"testing"

	"github.com/pokedex/backend/internal/domain/pokemon"
	"github.com/pokedex/backend/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAllUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store yields empty list", func(t *testing.T) {
		uc := NewFetchAllUseCase(memory.NewRepository())

		list, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("lists created pokemons", func(t *testing.T) {
		repo := memory.NewRepository()
		create := NewCreateUseCase(repo)
		_, err := create.Execute(ctx, CreatePokemonRequest{Number: 25, Name: "Pikachu", Types: []string{"Electric"}})
		require.NoError(t, err)

		list, err := NewFetchAllUseCase(repo).Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, []PokemonResponse{{Number: 25, Name: "Pikachu", Types: []string{"Electric"}}}, list)
	})

	t.Run("storage failure is unknown", func(t *testing.T) {
		uc := NewFetchAllUseCase(memory.NewRepository(memory.WithError()))

		_, err := uc.Execute(ctx)
		assert.True(t, errors.Is(err, ErrUnknown))
	})

	t.Run("mock storage error is unknown", func(t *testing.T) {
		repo := new(MockPokemonRepository)
		repo.On("FetchAll", ctx).Return(nil, errors.New("boom"))

		_, err := NewFetchAllUseCase(repo).Execute(ctx)
		assert.True(t, errors.Is(err, ErrUnknown))
		repo.AssertExpectations(t)
	})
}

func TestFetchOneUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository(memory.WithSeed(
		pokemon.New(pokemon.MustNewNumber(133), pokemon.MustNewName("Eevee"), pokemon.MustNewTypes("Normal")),
	))
	uc := NewFetchOneUseCase(repo)

	t.Run("returns stored pokemon", func(t *testing.T) {
		resp, err := uc.Execute(ctx, FetchPokemonRequest{Number: 133})
		require.NoError(t, err)
		assert.Equal(t, "Eevee", resp.Name)
	})

	t.Run("unknown number is not found", func(t *testing.T) {
		_, err := uc.Execute(ctx, FetchPokemonRequest{Number: 134})
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("invalid number is a bad request", func(t *testing.T) {
		_, err := uc.Execute(ctx, FetchPokemonRequest{Number: 0})
		assert.True(t, errors.Is(err, ErrBadRequest))
	})

	t.Run("storage failure is unknown", func(t *testing.T) {
		_, err := NewFetchOneUseCase(memory.NewRepository(memory.WithError())).
			Execute(ctx, FetchPokemonRequest{Number: 1})
		assert.True(t, errors.Is(err, ErrUnknown))
	})
}
