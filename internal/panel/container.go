package panel

import (
	"context"

	"github.com/Paintersrp/activities/internal/activity"
)

type ElementKind int

const (
	KindHeading ElementKind = iota
	KindItem
	KindEmptyState
)

func (k ElementKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindItem:
		return "item"
	case KindEmptyState:
		return "empty-state"
	default:
		return "unknown"
	}
}

// Element is one rendered child of a Container. Title is the tooltip, which
// for items is the note's vault path.
type Element struct {
	Kind    ElementKind
	Text    string
	Title   string
	Path    string
	OnClick func() error
}

// Container is the UI region a panel renders into.
type Container interface {
	Clear()
	Append(Element)
}

// Source supplies the markdown files of the vault.
type Source interface {
	ListMarkdownFiles(ctx context.Context) ([]activity.FileRecord, error)
}

// Navigator opens a note when an item is activated.
type Navigator interface {
	NavigateTo(path string) error
}

// SettingsReader exposes the current display settings.
type SettingsReader interface {
	Get() activity.DisplaySettings
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string) error

func (f NavigatorFunc) NavigateTo(path string) error {
	return f(path)
}

// FixedSettings is a SettingsReader that always reports the same settings.
type FixedSettings activity.DisplaySettings

func (f FixedSettings) Get() activity.DisplaySettings {
	return activity.DisplaySettings(f)
}
