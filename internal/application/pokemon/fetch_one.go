package pokemon

import (
	"context"
	"errors"

	"github.com/pokedex/backend/internal/domain/pokemon"
	"go.uber.org/zap"
)

// FetchOneUseCase looks up a single Pokemon by number
type FetchOneUseCase struct {
	repo   pokemon.Repository
	logger *zap.Logger
}

// NewFetchOneUseCase creates the use case over repo
func NewFetchOneUseCase(repo pokemon.Repository, opts ...Option) *FetchOneUseCase {
	o := applyOptions(opts)
	return &FetchOneUseCase{
		repo:   repo,
		logger: o.logger.Named("pokemon.fetch_one"),
	}
}

// Execute returns the stored record or ErrNotFound
func (uc *FetchOneUseCase) Execute(ctx context.Context, req FetchPokemonRequest) (*PokemonResponse, error) {
	number, err := pokemon.NewNumber(req.Number)
	if err != nil {
		return nil, ErrBadRequest.Wrap(err)
	}

	p, err := uc.repo.FetchOne(ctx, number)
	switch {
	case err == nil:
		resp := ToPokemonResponse(p)
		return &resp, nil
	case errors.Is(err, pokemon.ErrNotFound):
		return nil, ErrNotFound.Wrap(errors.New("number " + number.String()))
	default:
		uc.logger.Error("Failed to fetch pokemon",
			zap.Uint16("number", number.Value()),
			zap.Error(err),
		)
		return nil, ErrUnknown
	}
}
