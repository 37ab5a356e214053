/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package initialize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/activities/internal/config"
	"github.com/Paintersrp/activities/internal/state"
	"github.com/Paintersrp/activities/internal/tui/initialize"
)

// runPrompt is swapped out in tests.
var runPrompt = initialize.Run

type options struct {
	editor   string
	nvimArgs string
}

func NewCmdInit(s *state.State) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "initialize [vault]",
		Aliases: []string{"i", "init"},
		Short:   "Point activities at a vault",
		Long: heredoc.Doc(`
			Sets the vault directory and editor used by activities. The directory
			is created when it does not exist yet.

			Without arguments a form asks for the values.

			Examples:
			  activities init ~/notes
			  activities init ~/notes --editor obsidian
			  activities init
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				answers := initialize.Answers{
					VaultDir: args[0],
					Editor:   opts.editor,
					NvimArgs: opts.nvimArgs,
				}
				if err := apply(s.Config, answers); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Initialization complete! Vault: %s\n", s.Config.VaultDir)
				return nil
			}

			saved, err := runPrompt(defaults(s.Config, opts), func(a initialize.Answers) error {
				return apply(s.Config, a)
			})
			if err != nil {
				return err
			}
			if saved {
				fmt.Fprintln(cmd.OutOrStdout(), "Initialization complete!")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.editor, "editor", "e", "", "editor used to open notes (nvim, vim, nano, vscode, obsidian)")
	cmd.Flags().StringVar(&opts.nvimArgs, "editor-args", "", "extra arguments passed to nvim")

	return cmd
}

func defaults(cfg *config.Config, opts options) initialize.Answers {
	a := initialize.Answers{
		VaultDir: cfg.VaultDir,
		Editor:   cfg.Editor,
		NvimArgs: cfg.NvimArgs,
	}
	if a.VaultDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			a.VaultDir = filepath.Join(home, "notes")
		}
	}
	if opts.editor != "" {
		a.Editor = opts.editor
	}
	if a.Editor == "" {
		a.Editor = "nvim"
	}
	if opts.nvimArgs != "" {
		a.NvimArgs = opts.nvimArgs
	}
	return a
}

func apply(cfg *config.Config, a initialize.Answers) error {
	dir := expandHome(strings.TrimSpace(a.VaultDir))
	if dir == "" {
		return config.ErrVaultNotSet
	}

	if a.Editor != "" {
		if err := config.ValidateEditor(a.Editor); err != nil {
			return err
		}
		cfg.Editor = a.Editor
	}
	if a.NvimArgs != "" {
		cfg.NvimArgs = a.NvimArgs
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create vault directory: %w", err)
	}
	return cfg.ChangeVault(dir)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
