package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/pageshell/core/theme"
)

func RenderFooter(m Model, styles theme.Styles) string {
	bindings := m.keys.BindingsForScope(m.ActiveScope())
	space := styles.Footer.Render(" ")
	sep := styles.Footer.Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, styles.Key.Render(h.Key)+space+styles.HelpDesc.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = styles.HelpDesc.Render("No shortcuts")
	}
	return renderBar(styles.Footer, max(1, m.width), line)
}

func RenderStatusBar(m Model, styles theme.Styles) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.statusErr {
		return renderBar(styles.StatusErr, max(1, m.width), msg)
	}
	return renderBar(styles.StatusBar, max(1, m.width), msg)
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := ansi.Truncate(strings.ReplaceAll(text, "\n", " "), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
