package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/pageshell/core/theme"
)

// Pane is a rounded box with the title set into the top border.
type Pane struct {
	Title   string
	Content string
	Focused bool
}

func (p Pane) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	width = max(width, 4)
	height = max(height, 3)

	styles := theme.Current()
	border := styles.PaneBorder
	prefix := ""
	if p.Focused {
		border = styles.PaneFocused
		prefix = "● "
	}

	innerWidth := width - 2
	contentWidth := max(1, innerWidth-2)

	title := strings.TrimSpace(prefix + p.Title)
	titleText := " " + title + " "
	if ansi.StringWidth(titleText) > innerWidth {
		titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
	}
	if strings.TrimSpace(title) == "" {
		titleText = ""
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := border.Render("│")
	rows := make([]string, 0, height)
	rows = append(rows, border.Render("╭"+strings.Repeat("─", leftDash))+
		styles.PaneTitle.Render(titleText)+
		border.Render(strings.Repeat("─", rightDash)+"╮"))

	content := strings.Split(p.Content, "\n")
	for i := 0; i < height-2; i++ {
		line := ""
		if i < len(content) {
			line = content[i]
		}
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, border.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}
