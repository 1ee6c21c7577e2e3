package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	apppokemon "github.com/pokedex/backend/internal/application/pokemon"
)

const requestTimeout = 15 * time.Second

func cmdLoadPokemons(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.FetchAll == nil {
			return pokemonsLoadedMsg{err: errors.New("FetchAll is nil")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		list, err := deps.FetchAll.Execute(ctx)
		return pokemonsLoadedMsg{list: list, err: err}
	}
}

func cmdCreatePokemon(deps Deps, req apppokemon.CreatePokemonRequest) tea.Cmd {
	return func() tea.Msg {
		if deps.Create == nil {
			return pokemonCreatedMsg{err: errors.New("Create is nil")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		p, err := deps.Create.Execute(ctx, req)
		return pokemonCreatedMsg{pokemon: p, err: err}
	}
}
