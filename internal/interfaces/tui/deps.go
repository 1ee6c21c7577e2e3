package tui

import (
	"context"

	apppokemon "github.com/pokedex/backend/internal/application/pokemon"
	"go.uber.org/zap"
)

// Creator stores a new record
type Creator interface {
	Execute(ctx context.Context, req apppokemon.CreatePokemonRequest) (*apppokemon.PokemonResponse, error)
}

// Lister lists every stored record
type Lister interface {
	Execute(ctx context.Context) ([]apppokemon.PokemonResponse, error)
}

type Deps struct {
	Create   Creator
	FetchAll Lister

	Backend string
	Logger  *zap.Logger
}
