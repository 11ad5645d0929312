package pages

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pageshell/core"
	"github.com/jask/pageshell/core/route"
	"github.com/jask/pageshell/core/theme"
	"github.com/jask/pageshell/core/widgets"
)

const maxShortcutLinks = 9

// Homepage is the landing page mounted at "/". It lists the other literal
// routes with numeric shortcuts.
type Homepage struct {
	heading string
	links   []string
}

func NewHomepage(heading string) *Homepage {
	if strings.TrimSpace(heading) == "" {
		heading = "Homepage"
	}
	return &Homepage{heading: heading}
}

// SetLinks records the literal patterns offered as shortcuts. The root is
// skipped since it is this page.
func (h *Homepage) SetLinks(table *route.Table) {
	h.links = h.links[:0]
	for _, r := range table.Routes() {
		p := route.Canonical(r.Pattern)
		if p == "/" || !route.Literal(p) {
			continue
		}
		h.links = append(h.links, p)
		if len(h.links) == maxShortcutLinks {
			return
		}
	}
}

func (h *Homepage) Links() []string {
	return append([]string(nil), h.links...)
}

func (h *Homepage) Title() string { return "Homepage" }

func (h *Homepage) View(ctx route.Context) string {
	styles := theme.Current()
	lines := []string{
		styles.Title.Render(h.heading),
		"",
		styles.Body.Render("Press g to go to a location, ctrl+k for commands."),
	}
	if len(h.links) == 0 {
		lines = append(lines, "", styles.Muted.Render("No other pages are declared."))
	} else {
		lines = append(lines, "")
		for i, link := range h.links {
			lines = append(lines, fmt.Sprintf("%s  %s", styles.Key.Render(strconv.Itoa(i+1)), styles.Link.Render(link)))
		}
	}
	return widgets.Pane{Title: h.Title(), Content: strings.Join(lines, "\n")}.Render(ctx.Width, ctx.Height)
}

// HandleKey maps digit keys onto the listed links.
func (h *Homepage) HandleKey(_ route.Context, msg tea.KeyMsg) (bool, tea.Cmd) {
	n, err := strconv.Atoi(msg.String())
	if err != nil || n < 1 || n > len(h.links) {
		return false, nil
	}
	return true, core.NavigateCmd(h.links[n-1])
}
