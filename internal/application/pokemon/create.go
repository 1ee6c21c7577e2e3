// Package pokemon implements the application use cases over the Pokemon
// storage port.
package pokemon

import (
	"context"
	"errors"

	"github.com/pokedex/backend/internal/domain/pokemon"
	"go.uber.org/zap"
)

// CreateUseCase validates raw input and stores a new Pokemon
type CreateUseCase struct {
	repo   pokemon.Repository
	logger *zap.Logger
}

// NewCreateUseCase creates the use case over repo
func NewCreateUseCase(repo pokemon.Repository, opts ...Option) *CreateUseCase {
	o := applyOptions(opts)
	return &CreateUseCase{
		repo:   repo,
		logger: o.logger.Named("pokemon.create"),
	}
}

// Execute validates all three fields before touching storage. Every
// failing field is reported inside ErrBadRequest.
func (uc *CreateUseCase) Execute(ctx context.Context, req CreatePokemonRequest) (*PokemonResponse, error) {
	number, numberErr := pokemon.NewNumber(req.Number)
	name, nameErr := pokemon.NewName(req.Name)
	types, typesErr := pokemon.NewTypes(req.Types)

	if err := errors.Join(numberErr, nameErr, typesErr); err != nil {
		return nil, ErrBadRequest.Wrap(err)
	}

	p, err := uc.repo.Insert(ctx, number, name, types)
	switch {
	case err == nil:
		resp := ToPokemonResponse(p)
		return &resp, nil
	case errors.Is(err, pokemon.ErrConflict):
		return nil, ErrConflict.Wrap(errors.New("number " + number.String() + " is taken"))
	default:
		uc.logger.Error("Failed to insert pokemon",
			zap.Uint16("number", number.Value()),
			zap.Error(err),
		)
		return nil, ErrUnknown
	}
}
