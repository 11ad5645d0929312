package core

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding ties keys to an action inside scopes. A scope is "kind:name":
// "page:/about" is the page mounted for that pattern, "page:*" every page,
// "page:/reports/*" every route declared under /reports and "*" anything.
// No scopes means "*".
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// KeyRegistry resolves key presses to actions for the active scope.
type KeyRegistry struct {
	bindings []KeyBinding
	byKey    map[string][]int
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	r := &KeyRegistry{}
	for _, b := range bindings {
		r.Register(b)
	}
	return r
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	if r.byKey == nil {
		r.byKey = make(map[string][]int)
	}
	r.bindings = append(r.bindings, binding)
	idx := len(r.bindings) - 1
	for _, k := range binding.Keys {
		nk := normalizeKey(k)
		r.byKey[nk] = append(r.byKey[nk], idx)
	}
}

// ActionFor returns the action msg triggers in scope. When several bindings
// share the key, the narrowest scope wins and later registrations break ties,
// so a route-specific binding shadows a page-wide one.
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) (string, bool) {
	idx := r.resolve(normalizeKey(msg.String()), scope)
	if idx < 0 {
		return "", false
	}
	return r.bindings[idx].Action, true
}

// IsAction reports whether msg triggers action in scope.
func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	got, ok := r.ActionFor(msg, scope)
	return ok && got == action
}

// BindingsForScope lists the bindings reachable in scope, skipping those
// whose every key is shadowed by a narrower binding.
func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for i, b := range r.bindings {
		if bindingRank(b, scope) < 0 {
			continue
		}
		for _, k := range b.Keys {
			if r.resolve(normalizeKey(k), scope) == i {
				out = append(out, b)
				break
			}
		}
	}
	return out
}

func (r *KeyRegistry) resolve(key, scope string) int {
	best, bestRank := -1, -1
	for _, i := range r.byKey[key] {
		if rank := bindingRank(r.bindings[i], scope); rank >= 0 && rank >= bestRank {
			best, bestRank = i, rank
		}
	}
	return best
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func bindingRank(b KeyBinding, scope string) int {
	if len(b.Scopes) == 0 {
		return 0
	}
	best := -1
	for _, s := range b.Scopes {
		best = max(best, scopeRank(s, scope))
	}
	return best
}

func scopeMatch(scope string, scopes []string) bool {
	return bindingRank(KeyBinding{Scopes: scopes}, scope) >= 0
}

const exactScope = 1 << 16

// scopeRank is -1 when pattern does not cover scope, otherwise larger for
// narrower patterns.
func scopeRank(pattern, scope string) int {
	if pattern == "*" {
		return 0
	}
	if pattern == scope {
		return exactScope
	}
	pkind, pname, ok := strings.Cut(pattern, ":")
	if !ok {
		return -1
	}
	kind, name, ok := strings.Cut(scope, ":")
	if !ok || kind != pkind {
		return -1
	}
	prefix, wild := strings.CutSuffix(pname, "*")
	switch {
	case !wild:
		return -1
	case prefix == "":
		return 1
	case strings.HasPrefix(name, prefix), name == strings.TrimSuffix(prefix, "/"):
		return 2 + len(prefix)
	}
	return -1
}
