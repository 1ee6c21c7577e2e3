package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	apppokemon "github.com/pokedex/backend/internal/application/pokemon"
	"github.com/pokedex/backend/internal/domain/pokemon"
	"go.uber.org/zap"
)

type screen int

const (
	screenList screen = iota
	screenForm
)

type model struct {
	theme Theme
	deps  Deps
	log   *zap.Logger

	scr  screen
	list list.Model
	form form

	loading    bool
	submitting bool
	status     string
	err        error
}

// Run starts the full-screen program and blocks until the user quits
func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Pokemons"
	l.Filter = substringFilter
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme:   DefaultTheme(),
		deps:    deps,
		log:     log.Named("tui"),
		scr:     screenList,
		list:    l,
		form:    newForm(),
		loading: true,
	}
}

func (m model) Init() tea.Cmd { return cmdLoadPokemons(m.deps) }

func (m model) records() []apppokemon.PokemonResponse {
	items := m.list.Items()
	out := make([]apppokemon.PokemonResponse, 0, len(items))
	for _, it := range items {
		if pi, ok := it.(pokemonItem); ok {
			out = append(out, pi.p)
		}
	}
	return out
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(max(msg.Width/2-4, 0), max(msg.Height-10, 0))
		return m, nil

	case pokemonsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.log.Warn("Failed to load pokemons", zap.Error(msg.err))
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		return m, m.list.SetItems(toItems(msg.list))

	case pokemonCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.log.Info("Stored pokemon", zap.Uint16("number", msg.pokemon.Number))
		n := len(m.list.Items())
		cmd := m.list.InsertItem(n, pokemonItem{p: *msg.pokemon})
		m.list.Select(n)
		m.scr = screenList
		m.err = nil
		m.status = fmt.Sprintf("Stored #%03d %s", msg.pokemon.Number, msg.pokemon.Name)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.scr == screenForm {
			return m.updateForm(msg)
		}
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "n":
				if m.loading {
					return m, nil
				}
				m.scr = screenForm
				m.err = nil
				m.status = ""
				return m, m.form.reset(nextNumber(m.records()))
			case "r":
				m.loading = true
				m.status = ""
				return m, cmdLoadPokemons(m.deps)
			}
		}
	}

	var cmd tea.Cmd
	if m.scr == screenForm {
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.scr = screenList
		m.err = nil
		return m, nil
	case "tab", "down":
		return m, m.form.next()
	case "shift+tab", "up":
		return m, m.form.prev()
	case "enter":
		if m.submitting {
			return m, nil
		}
		req, err := m.form.request()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.submitting = true
		m.err = nil
		return m, cmdCreatePokemon(m.deps, req)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Pokedex") + "\n" +
		m.theme.Subtitle.Render("backend: "+m.deps.Backend) + "\n"

	switch m.scr {
	case screenList:
		if m.loading {
			return wrap.Render(header + "\n" + m.theme.Card.Render("Loading pokemons..."))
		}
		body := lipgloss.JoinHorizontal(lipgloss.Top,
			m.theme.Card.Render(m.list.View()),
			m.theme.Card.Render(m.detailView()),
		)
		help := m.theme.Help.Render("↑/↓ navigate • / filter • n new • r reload • q quit")
		return wrap.Render(header + "\n" + body + "\n" + m.statusLine() + "\n" + help)

	case screenForm:
		help := m.theme.Help.Render("tab next field • enter save • esc back")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.formView()) + "\n" + m.statusLine() + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) detailView() string {
	it, ok := m.list.SelectedItem().(pokemonItem)
	if !ok {
		return "No pokemon stored yet.\n\nPress n to add one."
	}
	return fmt.Sprintf("%s\n\n%s %d\n%s %s\n%s %s",
		m.theme.Title.Render(it.p.Name),
		m.theme.Label.Render("Number"), it.p.Number,
		m.theme.Label.Render("Name"), it.p.Name,
		m.theme.Label.Render("Types"), strings.Join(it.p.Types, ", "),
	)
}

func (m model) formView() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("New pokemon"))
	b.WriteString("\n\n")
	for i := range m.form.inputs {
		label := m.theme.Label.Render(fieldLabels[i])
		if i == m.form.focus {
			label = m.theme.Focused.Render(m.theme.Label.Render(fieldLabels[i]))
		}
		b.WriteString(label)
		b.WriteString(" ")
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
	}

	tags := pokemon.AllTypeTags()
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.String())
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("types: " + strings.Join(names, ", ")))

	if m.submitting {
		b.WriteString("\n\nSaving...")
	}
	return b.String()
}

func (m model) statusLine() string {
	if m.err != nil {
		return m.theme.Error.Render(userMessage(m.err))
	}
	if m.status != "" {
		return m.theme.Success.Render(m.status)
	}
	return ""
}
