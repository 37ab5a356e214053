// Package activity holds the note ordering and labelling rules used by the
// activities panel.
package activity

import (
	"fmt"
	"path"
	"strings"
)

// FileRecord is a snapshot of one markdown file in the vault. Timestamps are
// Unix milliseconds.
type FileRecord struct {
	Path         string `json:"path"`
	Basename     string `json:"basename"`
	Name         string `json:"name"`
	ModifiedTime int64  `json:"mtime"`
	CreatedTime  int64  `json:"ctime"`
}

// NewFileRecord derives Name and Basename from a vault-relative path.
func NewFileRecord(relPath string, modified, created int64) FileRecord {
	name := path.Base(relPath)
	return FileRecord{
		Path:         relPath,
		Name:         name,
		Basename:     strings.TrimSuffix(name, path.Ext(name)),
		ModifiedTime: modified,
		CreatedTime:  created,
	}
}

type SortMode string

const (
	SortAlphabetical SortMode = "alphabetical"
	SortModifiedTime SortMode = "modifiedTime"
	SortCreatedTime  SortMode = "createdTime"
)

// SortModes lists the modes in the order they are offered to the user.
var SortModes = []SortMode{SortAlphabetical, SortModifiedTime, SortCreatedTime}

var sortModeLabels = map[SortMode]string{
	SortAlphabetical: "Alphabetical",
	SortModifiedTime: "Last modified",
	SortCreatedTime:  "Date created",
}

// Label returns the human readable name of the mode.
func (m SortMode) Label() string {
	if label, ok := sortModeLabels[m]; ok {
		return label
	}
	return string(m)
}

func (m SortMode) Valid() bool {
	_, ok := sortModeLabels[m]
	return ok
}

// Next cycles through SortModes, wrapping around.
func (m SortMode) Next() SortMode {
	for i, mode := range SortModes {
		if mode == m {
			return SortModes[(i+1)%len(SortModes)]
		}
	}
	return SortAlphabetical
}

// ParseSortMode accepts the canonical mode names, their labels and the short
// "modified"/"created" names older settings files were written with.
func ParseSortMode(s string) (SortMode, error) {
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(trimmed) {
	case "alphabetical", "alpha", "name":
		return SortAlphabetical, nil
	case "modifiedtime", "modified", "mtime", "last modified":
		return SortModifiedTime, nil
	case "createdtime", "created", "ctime", "date created":
		return SortCreatedTime, nil
	}
	return "", fmt.Errorf(
		"invalid sort mode: %q. Please choose from 'alphabetical', 'modifiedTime', or 'createdTime'",
		s,
	)
}
