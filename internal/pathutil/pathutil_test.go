package pathutil

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestVaultRelativeReturnsForwardSlashes(t *testing.T) {
	vaultParts := []string{"home", "user", "vault"}
	fileParts := append(append([]string{}, vaultParts...), "subdir", "file.md")

	posixVault := filepath.Join(vaultParts...)
	posixFile := filepath.Join(fileParts...)

	rel, err := VaultRelative(posixVault, posixFile)
	if err != nil {
		t.Fatalf("VaultRelative returned error for POSIX paths: %v", err)
	}
	if rel != "subdir/file.md" {
		t.Fatalf("expected relative path 'subdir/file.md', got %q", rel)
	}

	windowsVault := strings.ReplaceAll(posixVault, string(filepath.Separator), "\\")
	windowsFile := strings.ReplaceAll(posixFile, string(filepath.Separator), "\\")

	rel, err = VaultRelative(windowsVault, windowsFile)
	if err != nil {
		t.Fatalf("VaultRelative returned error for Windows paths: %v", err)
	}
	if rel != "subdir/file.md" {
		t.Fatalf("expected relative path 'subdir/file.md', got %q", rel)
	}
}

func TestVaultRelativeOutsideVaultIsEmpty(t *testing.T) {
	root := filepath.Join("home", "user", "vault")

	for _, target := range []string{
		root,
		filepath.Join("home", "user", "other.md"),
		filepath.Join("home", "user"),
	} {
		rel, err := VaultRelative(root, target)
		if err != nil {
			t.Fatalf("VaultRelative(%q) returned error: %v", target, err)
		}
		if rel != "" {
			t.Fatalf("VaultRelative(%q) = %q, want empty", target, rel)
		}
	}
}

func TestIsMarkdownIgnoresCase(t *testing.T) {
	for name, want := range map[string]bool{
		"note.md":   true,
		"NOTE.MD":   true,
		"note.mdx":  false,
		"note.txt":  false,
		"markdown":  false,
		".hidden.md": true,
	} {
		if got := IsMarkdown(name); got != want {
			t.Fatalf("IsMarkdown(%q) = %t, want %t", name, got, want)
		}
	}
}
