// Package editor opens vault notes in the user's configured editor.
package editor

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Launch is a prepared editor process. Wait reports whether the editor takes
// over the terminal, in which case the caller must hand it stdin/stdout and
// wait for it to exit.
type Launch struct {
	Cmd  *exec.Cmd
	Wait bool
}

type command struct {
	name    string
	args    []string
	wait    bool
	silence bool
}

func (c command) launch() *Launch {
	cmd := exec.Command(c.name, c.args...)
	if c.silence {
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
	}
	return &Launch{Cmd: cmd, Wait: c.wait}
}

// Launcher builds editor commands for notes in one vault.
type Launcher struct {
	Editor   string
	NvimArgs string
	VaultDir string
	GOOS     string
}

// FromViper reads the editor settings mirrored into viper by the config
// package.
func FromViper() Launcher {
	return Launcher{
		Editor:   strings.TrimSpace(viper.GetString("editor")),
		NvimArgs: strings.TrimSpace(viper.GetString("nvimargs")),
		VaultDir: viper.GetString("vaultdir"),
		GOOS:     runtime.GOOS,
	}
}

// Prepare returns the command that opens the vault-relative path rel.
func (l Launcher) Prepare(rel string) (*Launch, error) {
	c, err := l.build(rel)
	if err != nil {
		return nil, err
	}
	return c.launch(), nil
}

// NavigateTo opens rel and, for terminal editors, blocks until the editor
// exits. It is the CLI flavour of navigation; the TUI suspends itself
// instead.
func (l Launcher) NavigateTo(rel string) error {
	launch, err := l.Prepare(rel)
	if err != nil {
		return err
	}

	if launch.Wait {
		launch.Cmd.Stdin = os.Stdin
		launch.Cmd.Stdout = os.Stdout
		launch.Cmd.Stderr = os.Stderr
		return launch.Cmd.Run()
	}

	if err := launch.Cmd.Start(); err != nil {
		return fmt.Errorf("failed to start editor: %w", err)
	}
	return launch.Cmd.Process.Release()
}

func (l Launcher) abs(rel string) string {
	return filepath.Join(l.VaultDir, filepath.FromSlash(rel))
}

func (l Launcher) build(rel string) (command, error) {
	if strings.TrimSpace(rel) == "" {
		return command{}, fmt.Errorf("no note path given")
	}

	path := l.abs(rel)
	switch l.Editor {
	case "nvim":
		args := strings.Fields(l.NvimArgs)
		return command{name: "nvim", args: append(args, path), wait: true}, nil
	case "vim":
		return command{name: "vim", args: []string{path}, wait: true}, nil
	case "nano":
		return command{name: "nano", args: []string{path}, wait: true}, nil
	case "vscode", "code":
		return l.vscode(path)
	case "obsidian":
		return l.obsidian(rel)
	case "":
		return command{}, fmt.Errorf("editor not configured")
	default:
		return command{}, fmt.Errorf("unsupported editor: %s", l.Editor)
	}
}

func (l Launcher) vscode(path string) (command, error) {
	switch l.GOOS {
	case "darwin":
		return command{name: "open", args: []string{"-n", "-b", "com.microsoft.VSCode", "--args", path}, silence: true}, nil
	case "linux":
		return command{name: "code", args: []string{path}, silence: true}, nil
	case "windows":
		return command{name: "cmd", args: []string{"/c", "code", path}, silence: true}, nil
	default:
		return command{}, fmt.Errorf("unsupported operating system: %s", l.GOOS)
	}
}

// ObsidianURI returns the obsidian:// link for a vault-relative path.
func (l Launcher) ObsidianURI(rel string) string {
	vaultName := filepath.Base(filepath.Clean(l.VaultDir))
	q := url.Values{}
	q.Set("vault", vaultName)
	q.Set("file", rel)
	return "obsidian://open?" + strings.ReplaceAll(q.Encode(), "+", "%20")
}

func (l Launcher) obsidian(rel string) (command, error) {
	uri := l.ObsidianURI(rel)

	switch l.GOOS {
	case "darwin":
		return command{name: "open", args: []string{uri}, silence: true}, nil
	case "linux":
		return command{name: "xdg-open", args: []string{uri}, silence: true}, nil
	case "windows":
		// cmd.exe would split the URI at '&'.
		return command{name: "rundll32", args: []string{"url.dll,FileProtocolHandler", uri}, silence: true}, nil
	default:
		return command{}, fmt.Errorf("unsupported operating system: %s", l.GOOS)
	}
}
