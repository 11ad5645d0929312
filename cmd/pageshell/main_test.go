package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/jask/pageshell/core/nav"
	"github.com/jask/pageshell/internal/config"
	"github.com/jask/pageshell/internal/history"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PAGESHELL_CONFIG", "")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoutesCommandPrintsTable(t *testing.T) {
	out, err := execute(t, "routes")
	if err != nil {
		t.Fatalf("routes: %v", err)
	}
	if !strings.Contains(out, "PATTERN") || !strings.Contains(out, "Homepage") || !strings.Contains(out, "literal") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestConfigInitWritesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	out, err := execute(t, "config", "init", "--config", path)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if _, err := execute(t, "config", "init", "--config", path); err == nil {
		t.Fatalf("second init without --force should fail")
	}
	if _, err := execute(t, "config", "init", "--config", path, "--force"); err != nil {
		t.Fatalf("forced init: %v", err)
	}
}

func TestConfigInitIgnoresFlagOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if _, err := execute(t, "-v", "config", "init", "--config", path); err != nil {
		t.Fatalf("config init: %v", err)
	}
	c, err := config.Load(path)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if c.Log.Debug {
		t.Fatalf("--verbose leaked into the written config")
	}
}

func TestHistoryCommandEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[history]\ndriver = \"sqlite\"\npath = \"" + filepath.ToSlash(filepath.Join(t.TempDir(), "h.db")) + "\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out, err := execute(t, "history", "--config", path)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "no history recorded") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestOpenStoreFallsBackToMemory(t *testing.T) {
	cfg := config.Default()
	cfg.UI.InitialLocation = "/about"

	store, done := openStore(context.Background(), cfg, false, zap.NewNop())
	defer done()
	if _, ok := store.(*nav.MemoryHistory); !ok {
		t.Fatalf("memory driver gave %T", store)
	}

	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg.History.Driver = "sqlite"
	cfg.History.Path = filepath.Join(blocker, "h.db")
	store, done2 := openStore(context.Background(), cfg, false, zap.NewNop())
	defer done2()
	if _, ok := store.(*nav.MemoryHistory); !ok {
		t.Fatalf("unopenable sqlite should degrade to memory, got %T", store)
	}
	if store.Current().Path != "/about" {
		t.Fatalf("fallback ignored initial location: %v", store.Current())
	}

	cfg.History.Path = filepath.Join(t.TempDir(), "h.db")
	store, done3 := openStore(context.Background(), cfg, false, zap.NewNop())
	defer done3()
	if _, ok := store.(*history.Store); !ok {
		t.Fatalf("sqlite driver gave %T", store)
	}
}
