package settings

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/activities/internal/activity"
	"github.com/Paintersrp/activities/internal/state"
	"github.com/Paintersrp/activities/internal/tui/activities"
)

// runSurface is swapped out in tests.
var runSurface = activities.RunSettings

func NewCmdSettings(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"s"},
		Short:   "Activities display settings",
		Long: heredoc.Doc(`
			Opens the settings menu, where the file extension can be toggled and
			the sort order chosen. Every change is saved immediately and open
			panels refresh.

			Examples:
			  activities settings
			  activities settings show
			  activities settings set --sort modifiedTime --show-extension=false
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSurface(s)
		},
	}

	cmd.AddCommand(newCmdShow(s), newCmdSet(s))
	return cmd
}

func newCmdShow(s *state.State) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current display settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return show(cmd.OutOrStdout(), s.Settings.Get(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "text", "output format: text, yaml or json")
	return cmd
}

func show(out io.Writer, current activity.DisplaySettings, format string) error {
	switch format {
	case "", "text":
		fmt.Fprintf(out, "show_extension: %t\n", current.ShowExtension)
		fmt.Fprintf(out, "sort_mode:      %s (%s)\n", current.SortMode, current.SortMode.Label())
		return nil
	case "yaml":
		data, err := yaml.Marshal(current)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(current)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func newCmdSet(s *state.State) *cobra.Command {
	var (
		showExt  bool
		sortMode string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change display settings without opening the menu",
		Long: heredoc.Doc(`
			Updates one or both display settings. Settings that are not given keep
			their current value.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch activity.SettingsPatch
			if cmd.Flags().Changed("show-extension") {
				patch.ShowExtension = &showExt
			}
			if cmd.Flags().Changed("sort") {
				mode, err := activity.ParseSortMode(sortMode)
				if err != nil {
					return err
				}
				patch.SortMode = &mode
			}
			if patch.Empty() {
				return fmt.Errorf("%w: pass --show-extension or --sort", activity.ErrEmptyPatch)
			}

			next, err := s.Settings.Set(cmd.Context(), patch)
			if err != nil {
				return err
			}
			return show(cmd.OutOrStdout(), next, "text")
		},
	}

	cmd.Flags().BoolVar(&showExt, "show-extension", false, "show the .md extension in activity names")
	cmd.Flags().StringVar(&sortMode, "sort", "", "sort order: alphabetical, modifiedTime or createdTime")
	return cmd
}
