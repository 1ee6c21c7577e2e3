package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/list"
	apppokemon "github.com/pokedex/backend/internal/application/pokemon"
)

type pokemonItem struct {
	p apppokemon.PokemonResponse
}

func (i pokemonItem) Title() string       { return fmt.Sprintf("#%03d %s", i.p.Number, i.p.Name) }
func (i pokemonItem) Description() string { return strings.Join(i.p.Types, " / ") }
func (i pokemonItem) FilterValue() string { return i.p.Name }

func toItems(records []apppokemon.PokemonResponse) []list.Item {
	items := make([]list.Item, 0, len(records))
	for _, p := range records {
		items = append(items, pokemonItem{p: p})
	}
	return items
}

// substringFilter keeps items whose name contains term, ignoring case.
// Items keep their list order.
func substringFilter(term string, targets []string) []list.Rank {
	needle := strings.ToLower(term)
	width := utf8.RuneCountInString(needle)
	var ranks []list.Rank
	for i, target := range targets {
		lower := strings.ToLower(target)
		idx := strings.Index(lower, needle)
		if idx < 0 {
			continue
		}
		start := utf8.RuneCountInString(lower[:idx])
		matched := make([]int, 0, width)
		for j := range width {
			matched = append(matched, start+j)
		}
		ranks = append(ranks, list.Rank{Index: i, MatchedIndexes: matched})
	}
	return ranks
}
