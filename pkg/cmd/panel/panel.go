package panel

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/activities/internal/state"
	"github.com/Paintersrp/activities/internal/tui/activities"
)

const maxPanes = 4

// runPanel is swapped out in tests.
var runPanel = activities.Run

func NewCmdPanel(s *state.State) *cobra.Command {
	var panes int

	cmd := &cobra.Command{
		Use:     "panel",
		Aliases: []string{"p", "open"},
		Short:   "Open the interactive activities panel",
		Long: heredoc.Doc(`
			Opens the activities panel: every markdown note in the vault, sorted by
			the saved sort order. Press enter to open a note in your editor.

			More panels can be opened side by side with "|" or --panes; all of them
			refresh whenever a setting changes or a note is written.

			Keys:
			  enter  open note        S  settings
			  E      toggle .md       O  cycle sort order
			  R      refresh          |  open another panel
			  X      close panel      Y  copy note path
			  tab    next panel       q  quit
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if panes < 1 || panes > maxPanes {
				return fmt.Errorf("--panes must be between 1 and %d, got %d", maxPanes, panes)
			}
			return runPanel(s, panes)
		},
	}

	cmd.Flags().IntVarP(&panes, "panes", "n", 1, "number of panels to open side by side")

	return cmd
}
