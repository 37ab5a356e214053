package state

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/activities/internal/activity"
	"github.com/Paintersrp/activities/internal/config"
	"github.com/Paintersrp/activities/internal/panel"
)

type captureContainer struct {
	items []string
	empty bool
}

func (c *captureContainer) Clear() {
	c.items = nil
	c.empty = false
}

func (c *captureContainer) Append(e panel.Element) {
	switch e.Kind {
	case panel.KindItem:
		c.items = append(c.items, e.Text)
	case panel.KindEmptyState:
		c.empty = true
	}
}

func setupHome(t *testing.T, vault string) string {
	t.Helper()

	home := t.TempDir()
	cfgPath := config.GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	data := map[string]any{}
	if vault != "" {
		data["vaultdir"] = vault
	}
	raw, err := yaml.Marshal(data)
	if err != nil {
		t.Fatalf("failed to marshal config: %v", err)
	}
	if err := os.WriteFile(cfgPath, raw, 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return home
}

func TestSettingsChangeRefreshesOpenPanels(t *testing.T) {
	vault := t.TempDir()
	for _, name := range []string{"beta.md", "Alpha.md"} {
		if err := os.WriteFile(filepath.Join(vault, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write note: %v", err)
		}
	}

	s, err := NewStateAt(context.Background(), setupHome(t, vault), Options{})
	if err != nil {
		t.Fatalf("NewStateAt returned error: %v", err)
	}
	defer s.Close()

	if err := s.RequireVault(); err != nil {
		t.Fatalf("RequireVault returned error: %v", err)
	}

	left, right := &captureContainer{}, &captureContainer{}
	for i, c := range []*captureContainer{left, right} {
		p := s.NewPanel(string(rune('a'+i)), c, nil)
		if err := s.Workspace.Open(context.Background(), p); err != nil {
			t.Fatalf("Open returned error: %v", err)
		}
	}

	if want := []string{"Alpha", "beta"}; !slices.Equal(left.items, want) {
		t.Fatalf("left items = %v, want %v", left.items, want)
	}

	if _, err := s.Settings.Set(context.Background(), activity.WithShowExtension(true)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	want := []string{"Alpha.md", "beta.md"}
	if !slices.Equal(left.items, want) || !slices.Equal(right.items, want) {
		t.Fatalf("panels not refreshed: left %v right %v", left.items, right.items)
	}

	reloaded, err := config.Load(s.Home)
	if err != nil {
		t.Fatalf("reloading config: %v", err)
	}
	if !reloaded.DisplaySettings().ShowExtension {
		t.Fatal("expected settings change to be persisted")
	}
}

func TestMissingVaultReportsInitError(t *testing.T) {
	s, err := NewStateAt(context.Background(), setupHome(t, ""), Options{})
	if err != nil {
		t.Fatalf("NewStateAt returned error: %v", err)
	}
	defer s.Close()

	if err := s.RequireVault(); !errors.Is(err, config.ErrVaultNotSet) {
		t.Fatalf("expected ErrVaultNotSet, got %v", err)
	}

	c := &captureContainer{}
	p := s.NewPanel("p", c, nil)
	if err := s.Workspace.Open(context.Background(), p); !errors.Is(err, panel.ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}
	if !c.empty {
		t.Fatal("expected empty state without a vault")
	}
}
