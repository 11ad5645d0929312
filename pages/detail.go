package pages

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jask/pageshell/core/route"
	"github.com/jask/pageshell/core/theme"
	"github.com/jask/pageshell/core/widgets"
)

// Detail renders a single item addressed by the "id" parameter.
type Detail struct{}

func (Detail) Title() string { return "Detail" }

func (d Detail) View(ctx route.Context) string {
	styles := theme.Current()
	id := ctx.Params.Get("id")
	lines := []string{styles.Title.Render("Item " + id)}
	if len(ctx.Query) > 0 {
		keys := make([]string, 0, len(ctx.Query))
		for k := range ctx.Query {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		lines = append(lines, "")
		for _, k := range keys {
			lines = append(lines, styles.Muted.Render(fmt.Sprintf("%s = %s", k, strings.Join(ctx.Query[k], ", "))))
		}
	}
	return widgets.Pane{Title: d.Title(), Content: strings.Join(lines, "\n")}.Render(ctx.Width, ctx.Height)
}
