package route

import (
	"errors"
	"reflect"
	"testing"
)

type stubContent struct{ title string }

func (c stubContent) Title() string       { return c.title }
func (c stubContent) View(Context) string { return c.title }

func page(title string) Content { return stubContent{title: title} }

func TestNewRejectsMalformedRoutes(t *testing.T) {
	tests := []struct {
		name   string
		routes []Route
		want   error
	}{
		{name: "empty pattern", routes: []Route{{Pattern: "  ", Content: page("a")}}, want: ErrEmptyPattern},
		{name: "relative pattern", routes: []Route{{Pattern: "about", Content: page("a")}}, want: ErrInvalidPattern},
		{name: "query in pattern", routes: []Route{{Pattern: "/a?b=1", Content: page("a")}}, want: ErrInvalidPattern},
		{name: "unnamed parameter", routes: []Route{{Pattern: "/:", Content: page("a")}}, want: ErrInvalidPattern},
		{name: "repeated parameter", routes: []Route{{Pattern: "/:id/:id", Content: page("a")}}, want: ErrInvalidPattern},
		{name: "missing content", routes: []Route{{Pattern: "/"}}, want: ErrMissingContent},
		{
			name:   "duplicate pattern",
			routes: []Route{{Pattern: "/about", Content: page("a")}, {Pattern: "/about/", Content: page("b")}},
			want:   ErrDuplicatePattern,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.routes...)
			if !errors.Is(err, tc.want) {
				t.Fatalf("New() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestMustNewPanicsOnInvalidTable(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for missing content")
		}
	}()
	MustNew(Route{Pattern: "/"})
}

func TestMatchRootOnlyTable(t *testing.T) {
	home := page("Homepage")
	table := MustNew(Route{Pattern: "/", Content: home})

	m, ok := table.Match("/")
	if !ok {
		t.Fatalf("expected / to match")
	}
	if m.Route.Content.Title() != "Homepage" {
		t.Fatalf("matched %q, want Homepage", m.Route.Content.Title())
	}
	if len(m.Params) != 0 {
		t.Fatalf("root match should capture nothing, got %v", m.Params)
	}
	if _, ok := table.Match("/missing"); ok {
		t.Fatalf("did not expect /missing to match")
	}
}

func TestMatchCapturesParameters(t *testing.T) {
	table := MustNew(
		Route{Pattern: "/", Content: page("Homepage")},
		Route{Pattern: "/:id", Content: page("Detail")},
		Route{Pattern: "/reports/:year/:region", Content: page("Report")},
	)
	m, ok := table.Match("/42")
	if !ok || m.Route.Content.Title() != "Detail" {
		t.Fatalf("expected /42 to match Detail, got %+v ok=%v", m, ok)
	}
	if got := m.Params.Get("id"); got != "42" {
		t.Fatalf("id = %q, want 42", got)
	}

	m, ok = table.Match("/reports/2024/apac?sort=desc")
	if !ok || m.Route.Content.Title() != "Report" {
		t.Fatalf("expected report match, got %+v ok=%v", m, ok)
	}
	want := Params{"year": "2024", "region": "apac"}
	if !reflect.DeepEqual(m.Params, want) {
		t.Fatalf("params = %v, want %v", m.Params, want)
	}
	if m.Path != "/reports/2024/apac" {
		t.Fatalf("canonical path = %q", m.Path)
	}
}

func TestMatchDecodesSegments(t *testing.T) {
	table := MustNew(
		Route{Pattern: "/about us", Content: page("About")},
		Route{Pattern: "/:id", Content: page("Detail")},
	)
	tests := []struct {
		path    string
		title   string
		id      string
		matched string
	}{
		{path: "/about%20us", title: "About", matched: "/about%20us"},
		{path: "/about us", title: "About", matched: "/about us"},
		{path: "/caf%C3%A9", title: "Detail", id: "café", matched: "/caf%C3%A9"},
		{path: "/a%2Fb", title: "Detail", id: "a/b", matched: "/a%2Fb"},
		{path: "/100%zz", title: "Detail", id: "100%zz", matched: "/100%zz"},
	}
	for _, tt := range tests {
		m, ok := table.Match(tt.path)
		if !ok || m.Route.Content.Title() != tt.title {
			t.Fatalf("%s: matched %+v ok=%v, want %s", tt.path, m, ok, tt.title)
		}
		if got := m.Params.Get("id"); got != tt.id {
			t.Fatalf("%s: id = %q, want %q", tt.path, got, tt.id)
		}
		if m.Path != tt.matched {
			t.Fatalf("%s: path = %q, want %q", tt.path, m.Path, tt.matched)
		}
	}

	encoded := MustNew(Route{Pattern: "/caf%C3%A9", Content: page("Cafe")})
	if m, ok := encoded.Match("/café"); !ok || m.Route.Content.Title() != "Cafe" {
		t.Fatalf("encoded literal pattern should match its decoded form")
	}
}

func TestMatchFirstDeclaredWins(t *testing.T) {
	table := MustNew(
		Route{Pattern: "/:slug", Content: page("Slug")},
		Route{Pattern: "/about", Content: page("About")},
	)
	m, ok := table.Match("/about")
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.Route.Content.Title() != "Slug" {
		t.Fatalf("first declared route should win, got %q", m.Route.Content.Title())
	}
}

func TestMatchEveryDeclaredLiteralPattern(t *testing.T) {
	patterns := []string{"/", "/about", "/news", "/news/latest", "/settings/theme"}
	routes := make([]Route, 0, len(patterns))
	for _, p := range patterns {
		routes = append(routes, Route{Pattern: p, Content: page(p)})
	}
	table := MustNew(routes...)
	for _, p := range patterns {
		m, ok := table.Match(p)
		if !ok {
			t.Fatalf("pattern %q did not match itself", p)
		}
		if m.Route.Content.Title() != p {
			t.Fatalf("navigating to %q rendered %q", p, m.Route.Content.Title())
		}
	}
}

func TestMatchNormalizesLocation(t *testing.T) {
	table := MustNew(Route{Pattern: "/news/latest", Content: page("Latest")})
	for _, path := range []string{"/news/latest/", "//news//latest", "/news/latest#top", "/news/latest?x=1"} {
		if _, ok := table.Match(path); !ok {
			t.Fatalf("expected %q to match /news/latest", path)
		}
	}
	if _, ok := table.Match("/news"); ok {
		t.Fatalf("prefix must not match")
	}
}

func TestNilTableNeverMatches(t *testing.T) {
	var table *Table
	if _, ok := table.Match("/"); ok {
		t.Fatalf("nil table should not match")
	}
	if table.Len() != 0 || table.Routes() != nil {
		t.Fatalf("nil table should be empty")
	}
}

func TestRoutesPreservesDeclarationOrder(t *testing.T) {
	table := MustNew(
		Route{Pattern: "/b", Content: page("b")},
		Route{Pattern: "/a", Content: page("a")},
	)
	routes := table.Routes()
	if len(routes) != 2 || routes[0].Pattern != "/b" || routes[1].Pattern != "/a" {
		t.Fatalf("unexpected order: %+v", routes)
	}
}

func TestSuggestRanksNearestLiteralPatterns(t *testing.T) {
	table := MustNew(
		Route{Pattern: "/", Content: page("home")},
		Route{Pattern: "/about", Content: page("about")},
		Route{Pattern: "/contact", Content: page("contact")},
		Route{Pattern: "/:id", Content: page("detail")},
	)
	got := table.Suggest("/abuot", 3)
	if len(got) == 0 || got[0] != "/about" {
		t.Fatalf("suggestions = %v, want /about first", got)
	}
	for _, s := range got {
		if s == "/:id" {
			t.Fatalf("parametric patterns should not be suggested")
		}
	}
	if got := table.Suggest("/abuot", 0); got != nil {
		t.Fatalf("zero limit should return nil, got %v", got)
	}
}

func TestSplitPathAndQuery(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{name: "root", path: "/", want: []string{}},
		{name: "empty", path: "", want: []string{}},
		{name: "repeated slashes", path: " /news//latest/ ", want: []string{"news", "latest"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SplitPath(tc.path); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitPath(%q) = %#v, want %#v", tc.path, got, tc.want)
			}
		})
	}
	if got := ParseQuery("/news?tag=flood&tag=fire#top"); len(got["tag"]) != 2 {
		t.Fatalf("ParseQuery tags = %v", got["tag"])
	}
	if got := Canonical("/news/?tag=flood"); got != "/news" {
		t.Fatalf("Canonical = %q", got)
	}
}
