package activity

import (
	"strings"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	s := DefaultSettings()
	if s.ShowExtension {
		t.Fatalf("expected extensions hidden by default")
	}
	if s.SortMode != SortAlphabetical {
		t.Fatalf("expected alphabetical default, got %q", s.SortMode)
	}
}

func TestValidateRejectsUnknownMode(t *testing.T) {
	t.Parallel()

	s := DisplaySettings{SortMode: "size"}
	err := s.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "sort_mode") {
		t.Fatalf("expected error to name sort_mode, got %v", err)
	}

	ok := DefaultSettings()
	if err := ok.Validate(); err != nil {
		t.Fatalf("default settings failed validation: %v", err)
	}
}

func TestNormalizeMapsLegacyNames(t *testing.T) {
	t.Parallel()

	tests := map[SortMode]SortMode{
		"modified":     SortModifiedTime,
		"created":      SortCreatedTime,
		"alphabetical": SortAlphabetical,
		"":             SortAlphabetical,
		"garbage":      SortAlphabetical,
	}

	for in, want := range tests {
		got := DisplaySettings{SortMode: in}.Normalize().SortMode
		if got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPatchApply(t *testing.T) {
	t.Parallel()

	base := DefaultSettings()

	if !(SettingsPatch{}).Empty() {
		t.Fatal("zero patch should be empty")
	}

	got := WithShowExtension(true).Apply(base)
	if !got.ShowExtension || got.SortMode != SortAlphabetical {
		t.Fatalf("unexpected result %+v", got)
	}

	got = WithSortMode(SortCreatedTime).Apply(got)
	if !got.ShowExtension || got.SortMode != SortCreatedTime {
		t.Fatalf("unexpected result %+v", got)
	}

	if base.ShowExtension {
		t.Fatal("Apply mutated its argument")
	}
}

func TestSortModeNextCycles(t *testing.T) {
	t.Parallel()

	mode := SortAlphabetical
	seen := []SortMode{mode}
	for i := 0; i < len(SortModes); i++ {
		mode = mode.Next()
		seen = append(seen, mode)
	}

	want := []SortMode{SortAlphabetical, SortModifiedTime, SortCreatedTime, SortAlphabetical}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("step %d: got %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestParseSortModeRejectsUnknown(t *testing.T) {
	t.Parallel()

	if _, err := ParseSortMode("size"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if mode, err := ParseSortMode(" Modified "); err != nil || mode != SortModifiedTime {
		t.Fatalf("ParseSortMode() = %q, %v", mode, err)
	}
}
