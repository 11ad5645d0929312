package core

import "strings"

const (
	ScopeNoMatch      = "page:none"
	ScopeGoTo         = "screen:goto"
	ScopeCommand      = "screen:command"
	pageScopeWildcard = "page:*"
)

// PageScope is the key scope of a mounted route.
func PageScope(pattern string) string {
	return "page:" + pattern
}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{pageScopeWildcard}},
		{Keys: []string{"h", "alt+left"}, Action: "back", Description: "back", Scopes: []string{pageScopeWildcard}},
		{Keys: []string{"l", "alt+right"}, Action: "forward", Description: "forward", Scopes: []string{pageScopeWildcard}},
		{Keys: []string{"~"}, Action: "home", Description: "home", Scopes: []string{pageScopeWildcard}},
		{Keys: []string{"g"}, Action: "open-goto", Description: "go to", Scopes: []string{pageScopeWildcard}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{pageScopeWildcard}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{ScopeGoTo, ScopeCommand}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{ScopeGoTo, ScopeCommand}},
	}
}

// ApplyActionKeybindings overrides the keys of the listed actions, leaving
// descriptions and scopes alone.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[strings.TrimSpace(b.Action)]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
