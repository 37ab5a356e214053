// Package statetest builds a State over a throwaway home and vault.
package statetest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/activities/internal/config"
	"github.com/Paintersrp/activities/internal/state"
)

// Note is a markdown file to create in the vault. A zero ModTime keeps the
// time the file was written.
type Note struct {
	Path    string
	ModTime time.Time
}

// New writes a config pointing at a fresh vault containing notes and returns
// the assembled state. Extra config keys can be passed through cfg.
func New(t *testing.T, cfg map[string]any, notes ...Note) *state.State {
	t.Helper()

	home := t.TempDir()
	vaultDir := filepath.Join(home, "vault")
	if err := os.MkdirAll(vaultDir, 0o755); err != nil {
		t.Fatalf("failed to create vault: %v", err)
	}

	for _, note := range notes {
		path := filepath.Join(vaultDir, filepath.FromSlash(note.Path))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create note dir: %v", err)
		}
		if err := os.WriteFile(path, []byte("# "+note.Path+"\n"), 0o644); err != nil {
			t.Fatalf("failed to write note: %v", err)
		}
		if !note.ModTime.IsZero() {
			if err := os.Chtimes(path, note.ModTime, note.ModTime); err != nil {
				t.Fatalf("failed to set note times: %v", err)
			}
		}
	}

	data := map[string]any{"vaultdir": vaultDir, "editor": "nvim"}
	for k, v := range cfg {
		data[k] = v
	}
	WriteConfig(t, home, data)

	s, err := state.NewStateAt(context.Background(), home, state.Options{})
	if err != nil {
		t.Fatalf("NewStateAt returned error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// Paths lists note paths in the order given, for building fixtures quickly.
func Paths(paths ...string) []Note {
	notes := make([]Note, len(paths))
	for i, p := range paths {
		notes[i] = Note{Path: p}
	}
	return notes
}

// WriteConfig replaces the config file under home with data.
func WriteConfig(t *testing.T, home string, data map[string]any) {
	t.Helper()

	cfgPath := config.GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	raw, err := yaml.Marshal(data)
	if err != nil {
		t.Fatalf("failed to marshal config: %v", err)
	}
	if err := os.WriteFile(cfgPath, raw, 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}
