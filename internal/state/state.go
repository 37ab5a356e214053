package state

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/Paintersrp/activities/internal/activity"
	"github.com/Paintersrp/activities/internal/config"
	"github.com/Paintersrp/activities/internal/constants"
	"github.com/Paintersrp/activities/internal/editor"
	"github.com/Paintersrp/activities/internal/logging"
	"github.com/Paintersrp/activities/internal/panel"
	"github.com/Paintersrp/activities/internal/settings"
	"github.com/Paintersrp/activities/internal/vault"
)

type State struct {
	Config    *config.Config
	Home      string
	Vault     *vault.Vault
	Settings  *settings.Manager
	Workspace *panel.Workspace
	Sorter    activity.Sorter
	Launcher  editor.Launcher
	Logger    zerolog.Logger

	// InitErr is set when the config exists but no vault is configured yet.
	// Commands that need the vault report it through RequireVault.
	InitErr error

	logCloser   io.Closer
	unsubscribe func()
}

type Options struct {
	// LogLevel overrides the configured level when non-empty.
	LogLevel string
	// LogToStderr sends logs to stderr instead of the log file.
	LogToStderr bool
}

func NewState(opts Options) (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}
	return NewStateAt(context.Background(), home, opts)
}

// NewStateAt builds the state for a given home directory.
func NewStateAt(ctx context.Context, home string, opts Options) (*State, error) {
	cfg, initErr := LoadConfig(home)
	if cfg == nil {
		return nil, initErr
	}

	level := cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}

	s := &State{
		Config:    cfg,
		Home:      home,
		Workspace: panel.NewWorkspace(),
		Sorter:    activity.NewSorter(cfg.CollationLocale),
		InitErr:   initErr,
	}

	if err := logging.SetLevel(level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if opts.LogToStderr {
		s.Logger = logging.NewConsole()
	} else {
		logger, closer, err := logging.OpenFile(config.GetLogPath(home))
		if err != nil {
			return nil, err
		}
		s.Logger, s.logCloser = logger, closer
	}

	s.Settings = settings.NewManager(cfg, s.Logger)
	s.Settings.Load(ctx)
	s.unsubscribe = s.Settings.Subscribe(s.Workspace.OnSettingsChanged)

	if initErr == nil {
		v, err := vault.New(cfg.VaultDir, cfg.IgnoredFolders, s.Logger)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to open vault: %w", err)
		}
		s.Vault = v
	}
	s.Launcher = editor.FromViper()

	s.Logger.Debug().
		Str("vault", cfg.VaultDir).
		Str("locale", s.Sorter.Locale()).
		Msg("state initialised")

	return s, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

// LoadConfig returns the config together with a *config.ConfigInitError when
// the vault is not configured. Any other failure returns a nil config.
func LoadConfig(home string) (*config.Config, error) {
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()

	cfg, err := config.EnsureConfigExists(home)
	if err != nil {
		var initErr *config.ConfigInitError
		if errors.As(err, &initErr) {
			return cfg, err
		}
		return nil, err
	}

	return cfg, nil
}

// RequireVault reports why the vault is unavailable, if it is.
func (s *State) RequireVault() error {
	if s.InitErr != nil {
		return s.InitErr
	}
	if s.Vault == nil {
		return config.ErrVaultNotSet
	}
	return nil
}

// NewPanel creates a panel bound to the vault and settings. The caller opens
// it through the workspace.
func (s *State) NewPanel(id string, c panel.Container, nav panel.Navigator) *panel.Panel {
	var src panel.Source
	if s.Vault != nil {
		src = s.Vault
	}
	return panel.New(panel.Options{
		ID:        id,
		Container: c,
		Source:    src,
		Settings:  s.Settings,
		Navigator: nav,
		Sorter:    s.Sorter,
		Logger:    s.Logger,
	})
}

// Close releases the log file and detaches the workspace from settings.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	if s.Workspace != nil {
		s.Workspace.CloseAll()
	}
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	if s.logCloser != nil {
		err := s.logCloser.Close()
		s.logCloser = nil
		return err
	}
	return nil
}
