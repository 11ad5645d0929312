package core

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case NavigateMsg:
		m.navigate(msg.Path)
		return m, nil
	case BackMsg:
		m.back()
		return m, nil
	case ForwardMsg:
		m.forward()
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.screens.Top() != nil {
			return m, m.updateTopScreen(msg)
		}
		return m, m.handlePageKey(msg)
	}

	if m.screens.Top() != nil {
		return m, m.updateTopScreen(msg)
	}
	return m, nil
}

func (m *Model) updateTopScreen(msg tea.Msg) tea.Cmd {
	top := m.screens.Top()
	next, cmd, pop := top.Update(msg)
	if pop {
		m.screens.Pop()
		return cmd
	}
	m.screens.replaceTop(next)
	return cmd
}

func (m *Model) handlePageKey(msg tea.KeyMsg) tea.Cmd {
	scope := m.ActiveScope()
	action, _ := m.keys.ActionFor(msg, scope)
	switch {
	case action == "quit":
		m.quitting = true
		return tea.Quit
	case action == "back":
		m.back()
		return nil
	case action == "forward":
		m.forward()
		return nil
	case action == "home":
		m.navigate("/")
		return nil
	case action == "open-goto" && m.OpenGoTo != nil:
		m.screens.Push(m.OpenGoTo(m))
		return nil
	case action == "open-command-palette" && m.OpenCommandModal != nil:
		m.screens.Push(m.OpenCommandModal(m, scope))
		return nil
	}
	if m.nav == nil {
		return nil
	}
	if h, ok := m.nav.Content().(KeyHandler); ok {
		if handled, cmd := h.HandleKey(m.pageContext(), msg); handled {
			return cmd
		}
	}
	return nil
}

func (m *Model) navigate(path string) {
	if m.nav == nil {
		return
	}
	if err := m.nav.Navigate(path); err != nil {
		m.logger.Warn("navigation rejected", zap.String("path", path), zap.Error(err))
		m.SetError(err)
		return
	}
	m.reportOutcome()
}

func (m *Model) back() {
	if m.nav == nil || !m.nav.Back() {
		m.SetStatus("No earlier location")
		return
	}
	m.reportOutcome()
}

func (m *Model) forward() {
	if m.nav == nil || !m.nav.Forward() {
		m.SetStatus("No later location")
		return
	}
	m.reportOutcome()
}

func (m *Model) reportOutcome() {
	o := m.nav.Outcome()
	if o.Found {
		m.SetStatus(o.Location.String())
		return
	}
	m.SetStatus("No route for " + o.Location.String())
}
