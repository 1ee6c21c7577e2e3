package pokemon

import (
	"context"

	"github.com/pokedex/backend/internal/domain/pokemon"
	"go.uber.org/zap"
)

// FetchAllUseCase lists every stored Pokemon
type FetchAllUseCase struct {
	repo   pokemon.Repository
	logger *zap.Logger
}

// NewFetchAllUseCase creates the use case over repo
func NewFetchAllUseCase(repo pokemon.Repository, opts ...Option) *FetchAllUseCase {
	o := applyOptions(opts)
	return &FetchAllUseCase{
		repo:   repo,
		logger: o.logger.Named("pokemon.fetch_all"),
	}
}

// Execute returns all records. An empty store yields an empty slice.
func (uc *FetchAllUseCase) Execute(ctx context.Context) ([]PokemonResponse, error) {
	list, err := uc.repo.FetchAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to fetch pokemons", zap.Error(err))
		return nil, ErrUnknown
	}
	return ToPokemonResponses(list), nil
}
