package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the shell-wide lipgloss styles derived from a theme.
type Styles struct {
	Theme Theme

	App       lipgloss.Style
	HeaderBar lipgloss.Style
	HeaderApp lipgloss.Style
	Location  lipgloss.Style
	StatusBar lipgloss.Style
	StatusErr lipgloss.Style
	Footer    lipgloss.Style
	Key       lipgloss.Style
	HelpDesc  lipgloss.Style

	Title   lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Link    lipgloss.Style
	Warning lipgloss.Style

	PaneBorder   lipgloss.Style
	PaneSelected lipgloss.Style
	PaneFocused  lipgloss.Style
	PaneTitle    lipgloss.Style
}

func NewStyles(t Theme) Styles {
	p := t.Palette
	return Styles{
		Theme: t,

		App: lipgloss.NewStyle().Foreground(p.Text),
		HeaderBar: lipgloss.NewStyle().
			Background(p.Mantle).
			Foreground(p.Text),
		HeaderApp: lipgloss.NewStyle().Foreground(p.Brand).Background(p.Mantle).Bold(true),
		Location: lipgloss.NewStyle().
			Background(p.Surface).
			Foreground(p.Accent).
			Bold(true).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(p.Success).
			Background(p.Surface),
		StatusErr: lipgloss.NewStyle().
			Foreground(p.Error).
			Background(p.Surface),
		Footer:   lipgloss.NewStyle().Background(p.Mantle),
		Key:      lipgloss.NewStyle().Foreground(p.Accent).Background(p.Mantle).Bold(true),
		HelpDesc: lipgloss.NewStyle().Foreground(p.Subtext).Background(p.Mantle),

		Title:   lipgloss.NewStyle().Foreground(p.Brand).Bold(true),
		Body:    lipgloss.NewStyle().Foreground(p.Text),
		Muted:   lipgloss.NewStyle().Foreground(p.Subtext),
		Link:    lipgloss.NewStyle().Foreground(p.Accent).Underline(true),
		Warning: lipgloss.NewStyle().Foreground(p.Warning),

		PaneBorder:   lipgloss.NewStyle().Foreground(p.Overlay),
		PaneSelected: lipgloss.NewStyle().Foreground(p.Accent),
		PaneFocused:  lipgloss.NewStyle().Foreground(p.Success),
		PaneTitle:    lipgloss.NewStyle().Foreground(p.Text).Bold(true),
	}
}

func plainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{
		App: s, HeaderBar: s, HeaderApp: s, Location: s, StatusBar: s, StatusErr: s,
		Footer: s, Key: s, HelpDesc: s, Title: s, Body: s, Muted: s, Link: s, Warning: s,
		PaneBorder: s, PaneSelected: s, PaneFocused: s, PaneTitle: s,
	}
}
