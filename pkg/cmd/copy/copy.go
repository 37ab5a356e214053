package copy

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/activities/internal/state"
	"github.com/Paintersrp/activities/pkg/cmd/list"
)

type options struct {
	absolute bool
	sortMode string
}

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func NewCmdCopy(s *state.State) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "copy [n]",
		Aliases: []string{"cp", "y"},
		Short:   "Copy the path of the nth note in the activities list",
		Long: heredoc.Doc(`
			Copies the vault path of a note to the clipboard. The number is the
			position shown by "activities list" with the same sort order.

			Examples:
			  activities copy 1
			  activities copy 3 --absolute
			  activities copy 2 --sort createdTime
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolve(cmd, s, args[0], opts)
			if err != nil {
				return err
			}
			if err := writeClipboard(path); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.absolute, "absolute", "a", false, "copy the absolute file path")
	cmd.Flags().StringVar(&opts.sortMode, "sort", "", "sort order used to number the notes")

	return cmd
}

func resolve(cmd *cobra.Command, s *state.State, arg string, opts options) (string, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return "", fmt.Errorf("invalid position %q: expected a number starting at 1", arg)
	}

	snap, err := list.Render(cmd.Context(), s, list.Overrides{SortMode: opts.sortMode})
	if err != nil {
		return "", err
	}

	items := snap.Items()
	if n > len(items) {
		return "", fmt.Errorf("position %d is out of range: %d notes listed", n, len(items))
	}

	path := items[n-1].Path
	if opts.absolute {
		return filepath.Join(s.Vault.Root(), filepath.FromSlash(path)), nil
	}
	return path, nil
}
