package copy

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Paintersrp/activities/internal/state/statetest"
)

func stubClipboard(t *testing.T) *string {
	t.Helper()

	var copied string
	original := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = original })
	return &copied
}

func TestCopyUsesListPosition(t *testing.T) {
	copied := stubClipboard(t)
	s := statetest.New(t, nil, statetest.Paths("b.md", "notes/a.md")...)

	var out bytes.Buffer
	cmd := NewCmdCopy(s)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"1"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("copy returned error: %v", err)
	}

	if *copied != "notes/a.md" {
		t.Fatalf("copied %q, want notes/a.md", *copied)
	}
	if !strings.Contains(out.String(), "notes/a.md") {
		t.Fatalf("expected confirmation, got %q", out.String())
	}
}

func TestCopyAbsolute(t *testing.T) {
	copied := stubClipboard(t)
	s := statetest.New(t, nil, statetest.Paths("b.md")...)

	cmd := NewCmdCopy(s)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"1", "--absolute"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("copy returned error: %v", err)
	}

	want := filepath.Join(s.Vault.Root(), "b.md")
	if *copied != want {
		t.Fatalf("copied %q, want %q", *copied, want)
	}
}

func TestCopyRejectsBadPositions(t *testing.T) {
	stubClipboard(t)
	s := statetest.New(t, nil, statetest.Paths("a.md")...)

	for _, arg := range []string{"0", "2", "first"} {
		cmd := NewCmdCopy(s)
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{arg})
		if err := cmd.Execute(); err == nil {
			t.Fatalf("expected position %q to be rejected", arg)
		}
	}
}
