package tui

import apppokemon "github.com/pokedex/backend/internal/application/pokemon"

type pokemonsLoadedMsg struct {
	list []apppokemon.PokemonResponse
	err  error
}

type pokemonCreatedMsg struct {
	pokemon *apppokemon.PokemonResponse
	err     error
}
