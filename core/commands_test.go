package core

import (
	"testing"
)

func TestSearchFiltersByScopeAndDisabled(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Alpha", Scopes: []string{"page:/"}},
		{ID: "b", Name: "Beta", Scopes: []string{"page:/about"}, Disabled: func(m *Model) (bool, string) { return true, "blocked" }},
	})
	m := NewModel(Options{Commands: reg})
	resA := reg.Search("", "page:/", &m)
	if len(resA) != 1 || resA[0].CommandID != "a" {
		t.Fatalf("expected only command a on page:/, got %+v", resA)
	}
	resB := reg.Search("", "page:/about", &m)
	if len(resB) != 1 || !resB[0].Disabled || resB[0].Reason != "blocked" {
		t.Fatalf("expected disabled command on page:/about, got %+v", resB)
	}
}

func TestSearchPrefersNamePrefix(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "open-home", Name: "Open /", Description: "go home"},
		{ID: "go-home", Name: "Go home", Description: "root"},
		{ID: "off", Name: "Go nowhere", Disabled: func(*Model) (bool, string) { return true, "" }},
	})
	m := NewModel(Options{Commands: reg})
	res := reg.Search("go", "page:/", &m)
	if len(res) != 3 {
		t.Fatalf("expected three results, got %+v", res)
	}
	if res[0].CommandID != "go-home" || res[1].CommandID != "open-home" || res[2].CommandID != "off" {
		t.Fatalf("unexpected order: %+v", res)
	}
}

func TestExecuteUnknownAndDisabled(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "off", Name: "Off", Disabled: func(*Model) (bool, string) { return true, "" }},
		{ID: "noop", Name: "Noop"},
	})
	m := NewModel(Options{Commands: reg})
	if msg := reg.Execute("missing", &m)().(StatusMsg); msg.Text != "Unknown command: missing" {
		t.Fatalf("unexpected status %q", msg.Text)
	}
	if msg := reg.Execute("off", &m)().(StatusMsg); msg.Text != "command is disabled" {
		t.Fatalf("unexpected status %q", msg.Text)
	}
	if cmd := reg.Execute("noop", &m); cmd != nil {
		t.Fatalf("command without Execute should return nil")
	}
	if reg.Len() != 2 {
		t.Fatalf("Len() = %d", reg.Len())
	}
}
