package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pageshell/core"
	"github.com/jask/pageshell/core/theme"
)

// GoToScreen prompts for a location and submits it as a navigation request.
// Tab completes the first suggestion.
type GoToScreen struct {
	input   textinput.Model
	suggest func(prefix string) []string
}

func NewGoToScreen(current string, suggest func(prefix string) []string) *GoToScreen {
	inp := textinput.New()
	inp.Prompt = "go to: "
	inp.Placeholder = "/"
	inp.SetValue(current)
	inp.CursorEnd()
	inp.Focus()
	return &GoToScreen{input: inp, suggest: suggest}
}

func (s *GoToScreen) Title() string { return "Go to" }
func (s *GoToScreen) Scope() string { return core.ScopeGoTo }

func (s *GoToScreen) Value() string { return s.input.Value() }

func (s *GoToScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			return s, nil, true
		case "enter":
			path := strings.TrimSpace(s.input.Value())
			if path == "" {
				return s, nil, true
			}
			if !strings.HasPrefix(path, "/") {
				path = "/" + path
			}
			return s, core.NavigateCmd(path), true
		case "tab":
			if hints := s.hints(); len(hints) > 0 {
				s.input.SetValue(hints[0])
				s.input.CursorEnd()
			}
			return s, nil, false
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, false
}

func (s *GoToScreen) hints() []string {
	if s.suggest == nil {
		return nil
	}
	return s.suggest(strings.TrimSpace(s.input.Value()))
}

func (s *GoToScreen) View(width, height int) string {
	styles := theme.Current()
	s.input.Width = max(10, width-12)
	lines := []string{styles.Title.Render(s.Title()), s.input.View()}
	if hints := s.hints(); len(hints) > 0 {
		lines = append(lines, "")
		for _, h := range hints {
			lines = append(lines, styles.Muted.Render("  "+h))
		}
	}
	lines = append(lines, "", styles.Muted.Render("enter: go  tab: complete  esc: cancel"))
	return strings.Join(lines, "\n")
}
