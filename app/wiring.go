package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pageshell/core"
	"github.com/jask/pageshell/core/route"
	"github.com/jask/pageshell/core/screens"
)

const gotoHints = 3

func ConfigureModel(m *core.Model) {
	if m == nil || m.Nav() == nil {
		return
	}
	table := m.Nav().Table()

	m.OpenGoTo = func(model *core.Model) core.Screen {
		return screens.NewGoToScreen(model.Nav().Location().String(), func(prefix string) []string {
			return completions(table, prefix)
		})
	}

	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		return screens.NewCommandScreen(scope,
			func(query string) []screens.CommandOption {
				return screens.FromResults(model.CommandRegistry().Search(query, scope, model))
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}

	RegisterCommands(m.CommandRegistry(), table)
}

// completions lists literal routes starting with prefix, falling back to
// near misses when none do.
func completions(table *route.Table, prefix string) []string {
	if table == nil {
		return nil
	}
	var out []string
	for _, r := range table.Routes() {
		p := route.Canonical(r.Pattern)
		if !route.Literal(p) || p == prefix || !strings.HasPrefix(p, prefix) {
			continue
		}
		out = append(out, p)
		if len(out) == gotoHints {
			return out
		}
	}
	if len(out) > 0 || prefix == "" {
		return out
	}
	return table.Suggest(prefix, gotoHints)
}

func RegisterCommands(reg *core.CommandRegistry, table *route.Table) {
	reg.Register(core.Command{
		ID:          "go-home",
		Name:        "Go home",
		Description: "Navigate to /",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return core.NavigateCmd("/")
		},
	})
	reg.Register(core.Command{
		ID:          "go-back",
		Name:        "Go back",
		Description: "Previous location",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return func() tea.Msg { return core.BackMsg{} }
		},
	})
	reg.Register(core.Command{
		ID:          "go-forward",
		Name:        "Go forward",
		Description: "Next location",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return func() tea.Msg { return core.ForwardMsg{} }
		},
	})
	if table == nil {
		return
	}
	for _, r := range table.Routes() {
		p := route.Canonical(r.Pattern)
		if !route.Literal(p) {
			continue
		}
		title := r.Content.Title()
		reg.Register(core.Command{
			ID:          "open-" + p,
			Name:        "Open " + title,
			Description: p,
			Scopes:      []string{"*"},
			Execute: func(m *core.Model) tea.Cmd {
				return core.NavigateCmd(p)
			},
			Disabled: func(m *core.Model) (bool, string) {
				if m.Nav() != nil && route.Canonical(m.Nav().Location().Path) == p {
					return true, "already here"
				}
				return false, ""
			},
		})
	}
}
