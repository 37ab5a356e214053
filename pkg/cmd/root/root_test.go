package root

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Paintersrp/activities/internal/config"
	"github.com/Paintersrp/activities/internal/state/statetest"
)

func TestRootRegistersCommands(t *testing.T) {
	s := statetest.New(t, nil)

	cmd, err := NewCmdRoot(s)
	if err != nil {
		t.Fatalf("NewCmdRoot returned error: %v", err)
	}

	for _, name := range []string{"initialize", "panel", "list", "settings", "copy"} {
		found, _, err := cmd.Find([]string{name})
		if err != nil || found.Name() != name {
			t.Fatalf("expected %q to be registered, got %v", name, err)
		}
	}
}

func TestLogLevelFlagSetsGlobalLevel(t *testing.T) {
	previous := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })
	s := statetest.New(t, nil, statetest.Paths("a.md")...)

	cmd, err := NewCmdRoot(s)
	if err != nil {
		t.Fatalf("NewCmdRoot returned error: %v", err)
	}

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list", "--log-level", "error"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute returned error: %v", err)
	}

	if zerolog.GlobalLevel() != zerolog.ErrorLevel {
		t.Fatalf("expected global level error, got %s", zerolog.GlobalLevel())
	}
	if !strings.Contains(out.String(), "1. a") {
		t.Fatalf("expected list output, got %q", out.String())
	}
}

func TestLogLevelFlagLowersConfiguredLevel(t *testing.T) {
	previous := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })
	s := statetest.New(t, map[string]any{"log_level": "warn"}, statetest.Paths("a.md")...)

	cmd, err := NewCmdRoot(s)
	if err != nil {
		t.Fatalf("NewCmdRoot returned error: %v", err)
	}

	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"list", "--log-level", "debug"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute returned error: %v", err)
	}

	data, err := os.ReadFile(config.GetLogPath(s.Home))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "listed markdown files") {
		t.Fatalf("expected debug line in log file, got %q", data)
	}
}

func TestInvalidLogLevelFails(t *testing.T) {
	s := statetest.New(t, nil)

	cmd, err := NewCmdRoot(s)
	if err != nil {
		t.Fatalf("NewCmdRoot returned error: %v", err)
	}

	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"list", "--log-level", "loud"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an unknown log level to be rejected")
	}
}
