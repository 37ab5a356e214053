package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/activities/internal/activity"
	"github.com/Paintersrp/activities/internal/constants"
)

type Config struct {
	VaultDir        string                    `yaml:"vaultdir"         json:"vault_dir"`
	Editor          string                    `yaml:"editor"           json:"editor"`
	NvimArgs        string                    `yaml:"nvimargs"         json:"nvim_args"`
	CollationLocale string                    `yaml:"collation_locale" json:"collation_locale"`
	IgnoredFolders  []string                  `yaml:"ignored_folders"  json:"ignored_folders"`
	LogLevel        string                    `yaml:"log_level"        json:"log_level"`
	Display         *activity.DisplaySettings `yaml:"display"          json:"display"`

	home string `yaml:"-"`
}

var validEditorNames = []string{"nvim", "obsidian", "vscode", "code", "vim", "nano"}

var ValidEditors = func() map[string]bool {
	editors := make(map[string]bool, len(validEditorNames))
	for _, editor := range validEditorNames {
		editors[editor] = true
	}

	return editors
}()

var validLogLevels = []any{"", "trace", "debug", "info", "warn", "error", "disabled"}

func ValidateEditor(editor string) error {
	if _, valid := ValidEditors[editor]; valid {
		return nil
	}

	return fmt.Errorf(
		"invalid editor: %q. Please choose from %s.",
		editor,
		validEditorList(),
	)
}

func validEditorList() string {
	quoted := make([]string, len(validEditorNames))
	for i, name := range validEditorNames {
		quoted[i] = fmt.Sprintf("'%s'", name)
	}

	if len(quoted) == 0 {
		return ""
	}

	if len(quoted) == 1 {
		return quoted[0]
	}

	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

// Validate checks the fields a user can get wrong by hand-editing the file.
// The display block is not validated here; bad values there are normalized
// back to defaults on load.
func (cfg *Config) Validate() error {
	if cfg.Editor != "" {
		if err := ValidateEditor(cfg.Editor); err != nil {
			return err
		}
	}

	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.LogLevel, validation.In(validLogLevels...)),
	)
}

func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	cfg.home = home
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.syncViper()
	return cfg, nil
}

// applyEnvOverrides lets ACTIVITIES_VAULTDIR, ACTIVITIES_EDITOR and
// ACTIVITIES_LOG_LEVEL win over the file for this process.
func (cfg *Config) applyEnvOverrides() {
	env := viper.New()
	env.SetEnvPrefix(constants.EnvPrefix)
	env.AutomaticEnv()

	if v := strings.TrimSpace(env.GetString("vaultdir")); v != "" {
		cfg.VaultDir = v
	}
	if v := strings.TrimSpace(env.GetString("editor")); v != "" {
		cfg.Editor = v
	}
	if v := strings.TrimSpace(env.GetString("log_level")); v != "" {
		cfg.LogLevel = v
	}
}

func (cfg *Config) syncViper() {
	viper.Set("vaultdir", cfg.VaultDir)
	viper.Set("editor", cfg.Editor)
	viper.Set("nvimargs", cfg.NvimArgs)
	viper.Set("collation_locale", cfg.CollationLocale)
	viper.Set("log_level", cfg.LogLevel)
	if cfg.IgnoredFolders == nil {
		viper.Set("ignored_folders", []string{})
	} else {
		viper.Set("ignored_folders", append([]string(nil), cfg.IgnoredFolders...))
	}

	display := cfg.DisplaySettings()
	viper.Set("display.show_extension", display.ShowExtension)
	viper.Set("display.sort_mode", string(display.SortMode))
}

// DisplaySettings returns the persisted display settings merged over the
// defaults.
func (cfg *Config) DisplaySettings() activity.DisplaySettings {
	if cfg.Display == nil {
		return activity.DefaultSettings()
	}
	return cfg.Display.Normalize()
}

// LoadSettings reports the persisted display settings, or false when none
// have been written yet.
func (cfg *Config) LoadSettings(ctx context.Context) (activity.DisplaySettings, bool, error) {
	if err := ctx.Err(); err != nil {
		return activity.DisplaySettings{}, false, err
	}
	if cfg.Display == nil {
		return activity.DefaultSettings(), false, nil
	}
	return cfg.Display.Normalize(), true, nil
}

// PersistSettings stores s under the display key and writes the file.
func (cfg *Config) PersistSettings(ctx context.Context, s activity.DisplaySettings) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	previous := cfg.Display
	cfg.Display = &s
	if err := cfg.Save(); err != nil {
		cfg.Display = previous
		return err
	}
	return nil
}

func (cfg *Config) GetConfigPath() string {
	if cfg.home != "" {
		return GetConfigPath(cfg.home)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return GetConfigPath(homeDir)
}

func (cfg *Config) ChangeVault(dir string) error {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return ErrVaultNotSet
	}

	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("vault directory %q: %w", abs, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("vault path %q is not a directory", abs)
	}

	cfg.VaultDir = abs
	return cfg.Save()
}

func (cfg *Config) ChangeEditor(editor string) error {
	if err := ValidateEditor(editor); err != nil {
		return err
	}

	cfg.Editor = editor
	return cfg.Save()
}

func (cfg *Config) Save() error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.syncViper()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	configPath := cfg.GetConfigPath()
	if configPath == "" {
		return fmt.Errorf("unable to resolve config path")
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}
