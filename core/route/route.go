// Package route declares the static route table and the first-match-wins
// matcher that the navigation container evaluates against the current location.
//
// Allowed here:
// - pattern parsing, table validation, path canonicalisation, matching
//
// Not allowed here:
// - location ownership or rendering (core/nav) and page content (pages)
package route

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrEmptyPattern     = errors.New("route: empty pattern")
	ErrInvalidPattern   = errors.New("route: invalid pattern")
	ErrMissingContent   = errors.New("route: missing content")
	ErrDuplicatePattern = errors.New("route: duplicate pattern")
)

// Content is an opaque renderable page. The shell imposes no contract beyond
// being renderable from a Context.
type Content interface {
	Title() string
	View(ctx Context) string
}

// Context is what a mounted page receives when it is rendered.
type Context struct {
	Path   string
	Query  url.Values
	Params Params
	Width  int
	Height int
}

// Params holds the values captured by parametric segments, keyed by name.
type Params map[string]string

func (p Params) Get(name string) string {
	if p == nil {
		return ""
	}
	return p[name]
}

// Route pairs a path pattern with the content mounted when it matches.
type Route struct {
	Pattern string
	Content Content
}

type segment struct {
	literal string
	param   string
}

func (s segment) isParam() bool { return s.param != "" }

type compiled struct {
	route     Route
	canonical string
	segments  []segment
}

// Match is the result of a successful lookup.
type Match struct {
	Route  Route
	Params Params
	Path   string
}

// Table is an ordered, immutable list of routes.
type Table struct {
	routes []compiled
}

// New validates routes and freezes them in declaration order.
func New(routes ...Route) (*Table, error) {
	t := &Table{routes: make([]compiled, 0, len(routes))}
	seen := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		c, err := compile(r)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[c.canonical]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePattern, r.Pattern)
		}
		seen[c.canonical] = struct{}{}
		t.routes = append(t.routes, c)
	}
	return t, nil
}

// MustNew is New for tables declared at composition time.
func MustNew(routes ...Route) *Table {
	t, err := New(routes...)
	if err != nil {
		panic(err)
	}
	return t
}

func compile(r Route) (compiled, error) {
	pattern := strings.TrimSpace(r.Pattern)
	if pattern == "" {
		return compiled{}, ErrEmptyPattern
	}
	if !strings.HasPrefix(pattern, "/") {
		return compiled{}, fmt.Errorf("%w: %q must start with /", ErrInvalidPattern, r.Pattern)
	}
	if strings.ContainsAny(pattern, "?#") {
		return compiled{}, fmt.Errorf("%w: %q must not carry a query or fragment", ErrInvalidPattern, r.Pattern)
	}
	if r.Content == nil {
		return compiled{}, fmt.Errorf("%w: %q", ErrMissingContent, r.Pattern)
	}
	parts := SplitPath(pattern)
	segs := make([]segment, 0, len(parts))
	names := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		if !strings.HasPrefix(part, ":") {
			segs = append(segs, segment{literal: unescape(part)})
			continue
		}
		name := strings.TrimPrefix(part, ":")
		if name == "" {
			return compiled{}, fmt.Errorf("%w: %q has an unnamed parameter", ErrInvalidPattern, r.Pattern)
		}
		if _, dup := names[name]; dup {
			return compiled{}, fmt.Errorf("%w: %q repeats parameter %q", ErrInvalidPattern, r.Pattern, name)
		}
		names[name] = struct{}{}
		segs = append(segs, segment{param: name})
	}
	return compiled{route: r, canonical: JoinPath(parts), segments: segs}, nil
}

// Match scans the table in declared order and returns the first route whose
// pattern matches path. Segments are percent-decoded before comparison, so
// captured params hold decoded values.
func (t *Table) Match(path string) (Match, bool) {
	if t == nil {
		return Match{}, false
	}
	parts := SplitPath(StripQuery(path))
	canonical := JoinPath(parts)
	decoded := make([]string, len(parts))
	for i, p := range parts {
		decoded[i] = unescape(p)
	}
	for _, c := range t.routes {
		params, ok := c.match(decoded)
		if ok {
			return Match{Route: c.route, Params: params, Path: canonical}, true
		}
	}
	return Match{}, false
}

func (c compiled) match(parts []string) (Params, bool) {
	if len(parts) != len(c.segments) {
		return nil, false
	}
	var params Params
	for i, seg := range c.segments {
		if !seg.isParam() {
			if parts[i] != seg.literal {
				return nil, false
			}
			continue
		}
		if params == nil {
			params = Params{}
		}
		params[seg.param] = parts[i]
	}
	return params, true
}

// unescape decodes a single path segment, keeping it raw when it is not
// valid percent-encoding.
func unescape(seg string) string {
	if !strings.Contains(seg, "%") {
		return seg
	}
	out, err := url.PathUnescape(seg)
	if err != nil {
		return seg
	}
	return out
}

// Routes returns the declared routes in order.
func (t *Table) Routes() []Route {
	if t == nil {
		return nil
	}
	out := make([]Route, 0, len(t.routes))
	for _, c := range t.routes {
		out = append(out, c.route)
	}
	return out
}

// Len reports how many routes the table declares.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.routes)
}

// Literal reports whether pattern has no parametric segments.
func Literal(pattern string) bool {
	for _, part := range SplitPath(pattern) {
		if strings.HasPrefix(part, ":") {
			return false
		}
	}
	return true
}
