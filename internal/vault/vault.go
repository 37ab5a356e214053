// Package vault lists and watches the markdown files of a notes vault.
package vault

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Paintersrp/activities/internal/activity"
	"github.com/Paintersrp/activities/internal/pathutil"
)

// Vault is a directory of markdown notes.
type Vault struct {
	root    string
	ignored map[string]struct{}
	logger  zerolog.Logger
}

// New returns a Vault rooted at dir. ignoredFolders are vault-relative
// directories that are skipped along with every hidden directory.
func New(dir string, ignoredFolders []string, logger zerolog.Logger) (*Vault, error) {
	root := pathutil.NormalizePath(dir)
	if root == "" {
		return nil, errors.New("vault directory cannot be empty")
	}

	ignored := make(map[string]struct{}, len(ignoredFolders))
	for _, folder := range ignoredFolders {
		trimmed := strings.Trim(filepath.ToSlash(strings.TrimSpace(folder)), "/")
		if trimmed != "" {
			ignored[trimmed] = struct{}{}
		}
	}

	return &Vault{
		root:    root,
		ignored: ignored,
		logger:  logger.With().Str("component", "vault").Logger(),
	}, nil
}

func (v *Vault) Root() string {
	return v.root
}

// Abs resolves a vault-relative path.
func (v *Vault) Abs(rel string) string {
	return filepath.Join(v.root, filepath.FromSlash(rel))
}

// ListMarkdownFiles returns a snapshot of every markdown file in the vault.
// Entries that cannot be read are logged and skipped.
func (v *Vault) ListMarkdownFiles(ctx context.Context) ([]activity.FileRecord, error) {
	var records []activity.FileRecord

	err := filepath.WalkDir(v.root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if path == v.root {
				return err
			}
			v.logger.Warn().Err(err).Str("path", path).Msg("skipping unreadable entry")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if path == v.root {
			return nil
		}

		rel, relErr := pathutil.VaultRelative(v.root, path)
		if relErr != nil || rel == "" {
			return nil
		}

		if d.IsDir() {
			if pathutil.IsHidden(d.Name()) || v.isIgnored(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if pathutil.IsHidden(d.Name()) || !pathutil.IsMarkdown(d.Name()) || !d.Type().IsRegular() {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			v.logger.Warn().Err(infoErr).Str("path", rel).Msg("skipping file without stat")
			return nil
		}

		records = append(records, activity.NewFileRecord(
			rel,
			info.ModTime().UnixMilli(),
			createdMillis(path, info),
		))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list vault %s: %w", v.root, err)
	}

	v.logger.Debug().Int("files", len(records)).Msg("listed markdown files")
	return records, nil
}

func (v *Vault) isIgnored(rel string) bool {
	_, ok := v.ignored[rel]
	return ok
}
