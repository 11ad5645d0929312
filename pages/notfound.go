package pages

import (
	"strings"

	"github.com/jask/pageshell/core/route"
	"github.com/jask/pageshell/core/theme"
	"github.com/jask/pageshell/core/widgets"
)

const suggestionLimit = 3

// NotFound is the fallback mounted under the page no-match policy.
type NotFound struct {
	table *route.Table
}

func NewNotFound() *NotFound {
	return &NotFound{}
}

// SetTable gives the page the routes it suggests from.
func (n *NotFound) SetTable(table *route.Table) {
	n.table = table
}

func (n *NotFound) Title() string { return "Not found" }

func (n *NotFound) View(ctx route.Context) string {
	styles := theme.Current()
	lines := []string{
		styles.Warning.Render("Nothing is declared at " + ctx.Path),
	}
	if hints := n.table.Suggest(ctx.Path, suggestionLimit); len(hints) > 0 {
		lines = append(lines, "", styles.Muted.Render("Did you mean:"))
		for _, h := range hints {
			lines = append(lines, "  "+styles.Link.Render(h))
		}
	}
	lines = append(lines, "", styles.Muted.Render("h: back  ~: home"))
	return widgets.Pane{Title: n.Title(), Content: strings.Join(lines, "\n")}.Render(ctx.Width, ctx.Height)
}
