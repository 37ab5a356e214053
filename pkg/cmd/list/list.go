package list

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/activities/internal/activity"
	"github.com/Paintersrp/activities/internal/panel"
	"github.com/Paintersrp/activities/internal/state"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFDF5")).Background(lipgloss.Color("#25A065")).Padding(0, 1)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})
	emptyStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})
)

// Overrides change the display settings for one listing without saving them.
type Overrides struct {
	SortMode      string
	ShowExtension *bool
}

type options struct {
	Overrides
	paths bool
}

func NewCmdList(s *state.State) *cobra.Command {
	var opts options
	var showExt bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "Print the activities list once",
		Long: heredoc.Doc(`
			Renders the activities panel a single time and prints it.

			The saved display settings are used unless --sort or --show-extension
			is given; those flags apply to this listing only.

			Examples:
			  activities list
			  activities list --sort modifiedTime --paths
			  activities ls --show-extension
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("show-extension") {
				opts.ShowExtension = &showExt
			}
			return run(cmd.Context(), s, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.SortMode, "sort", "", "sort order: alphabetical, modifiedTime or createdTime")
	cmd.Flags().BoolVar(&showExt, "show-extension", false, "show the .md extension")
	cmd.Flags().BoolVarP(&opts.paths, "paths", "p", false, "print the vault path of each note")

	return cmd
}

// Render runs one refresh cycle into a snapshot using the saved settings with
// o applied on top.
func Render(ctx context.Context, s *state.State, o Overrides) (*panel.Snapshot, error) {
	if err := s.RequireVault(); err != nil {
		return nil, err
	}

	settings := s.Settings.Get()
	if o.SortMode != "" {
		mode, err := activity.ParseSortMode(o.SortMode)
		if err != nil {
			return nil, err
		}
		settings.SortMode = mode
	}
	if o.ShowExtension != nil {
		settings.ShowExtension = *o.ShowExtension
	}

	snap := &panel.Snapshot{}
	p := panel.New(panel.Options{
		ID:        "list",
		Container: snap,
		Source:    s.Vault,
		Settings:  panel.FixedSettings(settings),
		Sorter:    s.Sorter,
		Logger:    s.Logger,
	})

	if ctx == nil {
		ctx = context.Background()
	}
	// The panel is never closed: closing would clear the snapshot.
	return snap, p.OnOpen(ctx)
}

func run(ctx context.Context, s *state.State, out io.Writer, opts options) error {
	snap, err := Render(ctx, s, opts.Overrides)
	if err != nil && snap == nil {
		return err
	}

	write(out, snap, opts.paths, isTerminal(out))
	return err
}

func write(out io.Writer, snap *panel.Snapshot, paths, styled bool) {
	render := func(style lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return style.Render(text)
	}

	for _, e := range snap.Elements {
		switch e.Kind {
		case panel.KindHeading:
			fmt.Fprintln(out, render(headingStyle, e.Text))
		case panel.KindEmptyState:
			fmt.Fprintln(out, render(emptyStyle, e.Text))
		}
	}

	items := snap.Items()
	width := len(fmt.Sprint(len(items)))
	for i, e := range items {
		line := fmt.Sprintf("%*d. %s", width, i+1, e.Text)
		if paths {
			line += "  " + render(pathStyle, e.Path)
		}
		fmt.Fprintln(out, truncate(line, out, styled))
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// truncate clips a line to the terminal width when writing to one.
func truncate(line string, out io.Writer, styled bool) string {
	if !styled {
		return line
	}
	f, ok := out.(*os.File)
	if !ok {
		return line
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || lipgloss.Width(line) <= width {
		return line
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.TrimRight(line, " "))
}
