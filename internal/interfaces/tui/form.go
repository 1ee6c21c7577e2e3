package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	apppokemon "github.com/pokedex/backend/internal/application/pokemon"
	"github.com/pokedex/backend/internal/domain/pokemon"
)

const (
	fieldNumber = iota
	fieldName
	fieldTypes
	fieldCount
)

var fieldLabels = [fieldCount]string{"Number", "Name", "Types"}

type form struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

func newForm() form {
	var f form

	f.inputs[fieldNumber] = textinput.New()
	f.inputs[fieldNumber].Placeholder = "25"
	f.inputs[fieldNumber].CharLimit = 5

	f.inputs[fieldName] = textinput.New()
	f.inputs[fieldName].Placeholder = "Pikachu"

	f.inputs[fieldTypes] = textinput.New()
	f.inputs[fieldTypes].Placeholder = "Grass, Poison"

	for i := range f.inputs {
		f.inputs[i].Prompt = ""
	}
	return f
}

// reset clears every field and pre-fills the number with next
func (f *form) reset(next string) tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.inputs[fieldNumber].SetValue(next)
	return f.setFocus(fieldNumber)
}

func (f *form) setFocus(i int) tea.Cmd {
	f.focus = (i + fieldCount) % fieldCount
	var cmd tea.Cmd
	for idx := range f.inputs {
		if idx == f.focus {
			cmd = f.inputs[idx].Focus()
			continue
		}
		f.inputs[idx].Blur()
	}
	return cmd
}

func (f *form) next() tea.Cmd { return f.setFocus(f.focus + 1) }
func (f *form) prev() tea.Cmd { return f.setFocus(f.focus - 1) }

func (f form) update(msg tea.Msg) (form, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// request converts the raw fields. Only the number needs parsing here;
// every invariant is checked by the use case.
func (f form) request() (apppokemon.CreatePokemonRequest, error) {
	raw := strings.TrimSpace(f.inputs[fieldNumber].Value())
	n, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return apppokemon.CreatePokemonRequest{}, apppokemon.ErrBadRequest.Wrap(fmt.Errorf("%w: %q", pokemon.ErrInvalidNumber, raw))
	}

	return apppokemon.CreatePokemonRequest{
		Number: uint16(n),
		Name:   f.inputs[fieldName].Value(),
		Types:  parseTypes(f.inputs[fieldTypes].Value()),
	}, nil
}

// parseTypes splits a comma separated list, dropping blank entries
func parseTypes(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// nextNumber suggests the number after the highest stored one
func nextNumber(records []apppokemon.PokemonResponse) string {
	var highest uint16
	for _, p := range records {
		highest = max(highest, p.Number)
	}
	if highest == 0 {
		return pokemon.MustNewNumber(pokemon.MinNumber).String()
	}
	current, err := pokemon.NewNumber(highest)
	if err != nil {
		return ""
	}
	next, ok := current.Next()
	if !ok {
		return ""
	}
	return next.String()
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, apppokemon.ErrBadRequest):
		return "BadRequest"
	case errors.Is(err, apppokemon.ErrConflict):
		return "Conflict"
	case errors.Is(err, apppokemon.ErrNotFound):
		return "NotFound"
	case errors.Is(err, apppokemon.ErrUnknown):
		return "Unknown"
	default:
		return "Error"
	}
}

func userMessage(err error) string {
	if err == nil {
		return ""
	}
	return errorKind(err) + ": " + strings.ReplaceAll(err.Error(), "\n", "; ")
}
