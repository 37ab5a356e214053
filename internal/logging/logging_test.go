package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	if lvl, err := ParseLevel(""); err != nil || lvl != zerolog.InfoLevel {
		t.Fatalf("ParseLevel(\"\") = %v, %v", lvl, err)
	}
	if lvl, err := ParseLevel(" Debug "); err != nil || lvl != zerolog.DebugLevel {
		t.Fatalf("ParseLevel(Debug) = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestSetLevelMovesBothWays(t *testing.T) {
	previous := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	var buf bytes.Buffer
	logger := New(&buf)

	if err := SetLevel("warn"); err != nil {
		t.Fatalf("SetLevel returned error: %v", err)
	}
	logger.Info().Msg("hidden")
	logger.Warn().Str("panel", "p1").Msg("shown")

	if err := SetLevel("trace"); err != nil {
		t.Fatalf("SetLevel returned error: %v", err)
	}
	logger.Debug().Msg("lowered")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info message should be filtered: %q", out)
	}
	if !strings.Contains(out, `"panel":"p1"`) {
		t.Fatalf("expected structured field in output: %q", out)
	}
	if !strings.Contains(out, "lowered") {
		t.Fatalf("expected debug message after lowering the level: %q", out)
	}
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	previous := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	if err := SetLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if zerolog.GlobalLevel() != previous {
		t.Fatalf("global level changed to %s", zerolog.GlobalLevel())
	}
}

func TestOpenFileAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "activities.log")

	logger, closer, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile returned error: %v", err)
	}
	logger.Info().Msg("first")
	closer.Close()

	logger, closer, err = OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile returned error: %v", err)
	}
	logger.Info().Msg("second")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Fatalf("expected both messages, got %q", data)
	}
}
