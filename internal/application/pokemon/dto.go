package pokemon

import "github.com/pokedex/backend/internal/domain/pokemon"

// CreatePokemonRequest carries raw, unvalidated input for Create
type CreatePokemonRequest struct {
	Number uint16
	Name   string
	Types  []string
}

// FetchPokemonRequest identifies a single pokemon by its raw number
type FetchPokemonRequest struct {
	Number uint16
}

// PokemonResponse mirrors a stored entity as primitives
type PokemonResponse struct {
	Number uint16   `json:"number"`
	Name   string   `json:"name"`
	Types  []string `json:"types"`
}

// ToPokemonResponse converts a domain entity to a response
func ToPokemonResponse(p *pokemon.Pokemon) PokemonResponse {
	return PokemonResponse{
		Number: p.Number().Value(),
		Name:   p.Name().String(),
		Types:  p.Types().Strings(),
	}
}

// ToPokemonResponses converts a slice of domain entities, never returning nil
func ToPokemonResponses(list []*pokemon.Pokemon) []PokemonResponse {
	out := make([]PokemonResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToPokemonResponse(p))
	}
	return out
}
