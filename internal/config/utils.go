package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Paintersrp/activities/internal/constants"
)

func GetConfigPath(homeDir string) string {
	return filepath.Join(
		homeDir,
		constants.ConfigDir,
		constants.ConfigFile+"."+constants.ConfigFileType,
	)
}

// GetLogPath returns the log file location next to the config file.
func GetLogPath(homeDir string) string {
	return filepath.Join(homeDir, constants.ConfigDir, constants.LogFile)
}

// EnsureConfigExists creates an empty config file when missing and reports a
// *ConfigInitError when the vault has not been set up yet.
func EnsureConfigExists(homeDir string) (*Config, error) {
	configPath := GetConfigPath(homeDir)
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		file, err := os.Create(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create config file: %w", err)
		}
		file.Close()
	} else if err != nil {
		return nil, fmt.Errorf("failed to check config file existence: %w", err)
	}

	cfg, err := Load(homeDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if strings.TrimSpace(cfg.VaultDir) == "" {
		return cfg, &ConfigInitError{
			msg: `required config variable "VaultDir" is not set, run "activities init <vault>"`,
		}
	}

	return cfg, nil
}
