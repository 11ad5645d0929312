package pages

import (
	"net/url"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pageshell/core"
	"github.com/jask/pageshell/core/route"
)

func TestHomepageListsOtherLiteralRoutes(t *testing.T) {
	home := NewHomepage("Disruption Monitor")
	table := route.MustNew(
		route.Route{Pattern: "/", Content: home},
		route.Route{Pattern: "/:id", Content: Detail{}},
		route.Route{Pattern: "/about", Content: Detail{}},
	)
	home.SetLinks(table)
	if links := home.Links(); len(links) != 1 || links[0] != "/about" {
		t.Fatalf("links = %v, want [/about]", links)
	}
	out := home.View(route.Context{Path: "/", Width: 60, Height: 12})
	for _, want := range []string{"Disruption Monitor", "/about"} {
		if !strings.Contains(out, want) {
			t.Fatalf("homepage missing %q:\n%s", want, out)
		}
	}
}

func TestHomepageDigitNavigates(t *testing.T) {
	home := NewHomepage("")
	home.SetLinks(route.MustNew(
		route.Route{Pattern: "/", Content: home},
		route.Route{Pattern: "/news", Content: Detail{}},
	))
	handled, cmd := home.HandleKey(route.Context{}, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	if !handled || cmd == nil {
		t.Fatalf("expected digit 1 to be handled")
	}
	if msg, ok := cmd().(core.NavigateMsg); !ok || msg.Path != "/news" {
		t.Fatalf("unexpected message %#v", cmd())
	}
	if handled, _ := home.HandleKey(route.Context{}, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}}); handled {
		t.Fatalf("out of range digit should pass through")
	}
	if !strings.Contains(home.View(route.Context{Width: 50, Height: 8}), "Homepage") {
		t.Fatalf("empty heading should default to Homepage")
	}
}

func TestDetailShowsCapturedID(t *testing.T) {
	out := Detail{}.View(route.Context{
		Path:   "/42",
		Params: route.Params{"id": "42"},
		Query:  url.Values{"tab": {"map"}},
		Width:  40,
		Height: 8,
	})
	if !strings.Contains(out, "Item 42") || !strings.Contains(out, "tab = map") {
		t.Fatalf("detail view:\n%s", out)
	}
}

func TestNotFoundSuggestsNearbyRoutes(t *testing.T) {
	nf := NewNotFound()
	nf.SetTable(route.MustNew(
		route.Route{Pattern: "/", Content: NewHomepage("")},
		route.Route{Pattern: "/about", Content: Detail{}},
	))
	out := nf.View(route.Context{Path: "/abot", Width: 50, Height: 10})
	if !strings.Contains(out, "/abot") || !strings.Contains(out, "/about") {
		t.Fatalf("not found view:\n%s", out)
	}
	bare := NewNotFound().View(route.Context{Path: "/x", Width: 50, Height: 10})
	if strings.Contains(bare, "Did you mean") {
		t.Fatalf("no table means no suggestions")
	}
}
