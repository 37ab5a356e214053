package activity

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DisplaySettings are the user-facing panel options.
type DisplaySettings struct {
	ShowExtension bool     `yaml:"show_extension" json:"show_extension"`
	SortMode      SortMode `yaml:"sort_mode"      json:"sort_mode"`
}

// DefaultSettings hides extensions and sorts alphabetically.
func DefaultSettings() DisplaySettings {
	return DisplaySettings{
		ShowExtension: false,
		SortMode:      SortAlphabetical,
	}
}

// Validate rejects unknown sort modes.
func (s *DisplaySettings) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(
			&s.SortMode,
			validation.Required,
			validation.In(SortAlphabetical, SortModifiedTime, SortCreatedTime).
				Error("must be one of alphabetical, modifiedTime, createdTime"),
		),
	)
}

// Normalize maps legacy sort mode names onto canonical ones and replaces
// anything unrecognised with the default.
func (s DisplaySettings) Normalize() DisplaySettings {
	if s.SortMode == "" {
		s.SortMode = SortAlphabetical
		return s
	}
	mode, err := ParseSortMode(string(s.SortMode))
	if err != nil {
		mode = SortAlphabetical
	}
	s.SortMode = mode
	return s
}

// SettingsPatch is a partial update. Nil fields are left untouched.
type SettingsPatch struct {
	ShowExtension *bool
	SortMode      *SortMode
}

var ErrEmptyPatch = errors.New("settings patch changes nothing")

func (p SettingsPatch) Empty() bool {
	return p.ShowExtension == nil && p.SortMode == nil
}

// Apply returns s with the patch merged in.
func (p SettingsPatch) Apply(s DisplaySettings) DisplaySettings {
	if p.ShowExtension != nil {
		s.ShowExtension = *p.ShowExtension
	}
	if p.SortMode != nil {
		s.SortMode = *p.SortMode
	}
	return s
}

// WithShowExtension is a convenience constructor for a single-field patch.
func WithShowExtension(show bool) SettingsPatch {
	return SettingsPatch{ShowExtension: &show}
}

// WithSortMode is a convenience constructor for a single-field patch.
func WithSortMode(mode SortMode) SettingsPatch {
	return SettingsPatch{SortMode: &mode}
}
