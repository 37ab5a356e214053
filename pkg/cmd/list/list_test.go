package list

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Paintersrp/activities/internal/constants"
	"github.com/Paintersrp/activities/internal/state/statetest"
)

func TestListPrintsAlphabeticalByDefault(t *testing.T) {
	s := statetest.New(t, nil, statetest.Paths("beta.md", "Alpha.md", "notes/gamma.md")...)

	var out bytes.Buffer
	cmd := NewCmdList(s)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("list returned error: %v", err)
	}

	want := strings.Join([]string{
		constants.PanelTitle,
		"1. Alpha",
		"2. beta",
		"3. gamma",
		"",
	}, "\n")
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestListOverridesDoNotPersist(t *testing.T) {
	now := time.Now()
	s := statetest.New(t, nil,
		statetest.Note{Path: "old.md", ModTime: now.Add(-2 * time.Hour)},
		statetest.Note{Path: "new.md", ModTime: now},
	)

	var out bytes.Buffer
	cmd := NewCmdList(s)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--sort", "modifiedTime", "--show-extension", "--paths"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("list returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected heading and two items, got %q", out.String())
	}
	if lines[1] != "1. new.md  new.md" || lines[2] != "2. old.md  old.md" {
		t.Fatalf("unexpected items: %q", lines[1:])
	}

	if got := s.Settings.Get(); got.ShowExtension || got.SortMode != "alphabetical" {
		t.Fatalf("expected saved settings untouched, got %+v", got)
	}
}

func TestListEmptyVault(t *testing.T) {
	s := statetest.New(t, nil)

	var out bytes.Buffer
	cmd := NewCmdList(s)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("list returned error: %v", err)
	}

	want := constants.PanelTitle + "\n" + constants.EmptyStateText + "\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestListRejectsUnknownSort(t *testing.T) {
	s := statetest.New(t, nil, statetest.Paths("a.md")...)

	cmd := NewCmdList(s)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--sort", "size"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an unknown sort order to be rejected")
	}
}
