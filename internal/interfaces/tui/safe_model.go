package tui

import (
	"fmt"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type safeModel struct {
	m   model
	log *zap.Logger
}

func wrapSafe(m model, log *zap.Logger) safeModel {
	if log == nil {
		log = zap.NewNop()
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Panic recovered",
				zap.String("where", "tui.update"),
				zap.String("panic", fmt.Sprint(r)),
				zap.String("stack", string(debug.Stack())),
			)

			s.m.scr = screenList
			s.m.submitting = false
			s.m.err = nil
			s.m.status = "Unexpected error (see logs)"
			tm = s
			cmd = nil
		}
	}()

	inner, c := s.m.Update(msg)

	if mm, ok := inner.(model); ok {
		s.m = mm
	}

	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Panic recovered",
				zap.String("where", "tui.view"),
				zap.String("panic", fmt.Sprint(r)),
				zap.String("stack", string(debug.Stack())),
			)
			out = "Unexpected error (see logs)"
		}
	}()
	return s.m.View()
}

var _ tea.Model = safeModel{}
