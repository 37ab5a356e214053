package root

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/activities/internal/constants"
	"github.com/Paintersrp/activities/internal/logging"
	"github.com/Paintersrp/activities/internal/state"
	"github.com/Paintersrp/activities/pkg/cmd/copy"
	"github.com/Paintersrp/activities/pkg/cmd/initialize"
	"github.com/Paintersrp/activities/pkg/cmd/list"
	"github.com/Paintersrp/activities/pkg/cmd/panel"
	"github.com/Paintersrp/activities/pkg/cmd/settings"
)

var logLevel string

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	panelCmd := panel.NewCmdPanel(s)

	cmd := &cobra.Command{
		Use:     constants.AppName,
		Short:   "A sorted, live list of the notes in your markdown vault.",
		Version: constants.Version,
		Long: heredoc.Doc(`
			activities lists every markdown note in your vault, sorted alphabetically,
			by last modification or by creation date, and opens the one you pick in
			your editor.

			  activities init ~/notes      point at a vault
			  activities                   open the interactive panel
			  activities list              print the list once
			  activities settings          change the display settings
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("log-level") {
				return nil
			}
			if err := logging.SetLevel(logLevel); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return panelCmd.RunE(panelCmd, args)
		},
	}

	cmd.PersistentFlags().
		StringVar(
			&logLevel,
			"log-level",
			"",
			"log level for this run (trace, debug, info, warn, error, disabled)",
		)

	cmd.AddCommand(
		initialize.NewCmdInit(s),
		panelCmd,
		list.NewCmdList(s),
		settings.NewCmdSettings(s),
		copy.NewCmdCopy(s),
	)

	return cmd, nil
}
