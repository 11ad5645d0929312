package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/pageshell/core/theme"
	"github.com/jask/pageshell/core/widgets"
)

func (m Model) View() string {
	if m.onRender != nil {
		m.onRender()
	}
	if m.quitting {
		return "Goodbye\n"
	}
	styles := theme.Current()
	header := renderHeader(m, styles)
	status := RenderStatusBar(m, styles)
	footer := RenderFooter(m, styles)
	bodyHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))

	var body string
	if m.nav != nil && bodyHeight > 0 {
		body = m.nav.Render(max(1, m.width-2), bodyHeight)
	}
	if top := m.screens.Top(); top != nil && bodyHeight > 0 {
		body = widgets.RenderPopup(body, top.View(max(20, m.width-12), max(8, m.height-8)), m.width-2, bodyHeight)
	}
	body = fitHeight(body, bodyHeight)
	main := strings.Join([]string{header, status, body}, "\n")
	view := strings.Join([]string{main, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return styles.App.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func renderHeader(m Model, styles theme.Styles) string {
	left := styles.HeaderApp.Render(m.title)
	loc := "-"
	if m.nav != nil && m.nav.Initialized() {
		loc = m.nav.Location().String()
	}
	right := styles.Location.Render(loc)
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderBar(styles.HeaderBar, max(1, m.width), left+strings.Repeat(" ", gap)+right)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
