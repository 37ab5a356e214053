// Package panel renders the sorted note list into a host container and keeps
// every open panel in sync with the display settings.
package panel

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Paintersrp/activities/internal/activity"
	"github.com/Paintersrp/activities/internal/constants"
)

var (
	ErrClosed   = errors.New("panel is closed")
	ErrNoSource = errors.New("panel has no file source")
)

// Panel is one open instance of the activities list.
type Panel struct {
	id        string
	container Container
	source    Source
	settings  SettingsReader
	navigator Navigator
	sorter    activity.Sorter
	logger    zerolog.Logger

	open  bool
	items int
}

type Options struct {
	ID        string
	Container Container
	Source    Source
	Settings  SettingsReader
	Navigator Navigator
	Sorter    activity.Sorter
	Logger    zerolog.Logger
}

func New(opts Options) *Panel {
	return &Panel{
		id:        opts.ID,
		container: opts.Container,
		source:    opts.Source,
		settings:  opts.Settings,
		navigator: opts.Navigator,
		sorter:    opts.Sorter,
		logger:    opts.Logger.With().Str("panel", opts.ID).Logger(),
	}
}

func (p *Panel) ID() string {
	return p.id
}

func (p *Panel) IsOpen() bool {
	return p.open
}

// Items reports how many notes the last render produced.
func (p *Panel) Items() int {
	return p.items
}

// OnOpen marks the panel open and renders it.
func (p *Panel) OnOpen(ctx context.Context) error {
	p.open = true
	return p.Render(ctx)
}

// OnClose empties the container. A closed panel ignores Render.
func (p *Panel) OnClose() {
	p.open = false
	p.items = 0
	p.container.Clear()
}

// Render replaces everything in the container with a freshly sorted list, or
// with a single empty-state message when there is nothing to show. A listing
// failure is logged and rendered as the empty state; the error is returned so
// callers can surface it.
func (p *Panel) Render(ctx context.Context) error {
	if !p.open {
		return ErrClosed
	}

	records, listErr := p.list(ctx)
	if listErr != nil {
		p.logger.Error().Err(listErr).Msg("failed to list vault files")
		records = nil
	}

	s := p.settings.Get()
	sorted := p.sorter.Sort(records, s.SortMode)

	p.container.Clear()
	p.container.Append(Element{Kind: KindHeading, Text: constants.PanelTitle})

	if len(sorted) == 0 {
		p.items = 0
		p.container.Append(Element{Kind: KindEmptyState, Text: constants.EmptyStateText})
		return listErr
	}

	for _, record := range sorted {
		path := record.Path
		p.container.Append(Element{
			Kind:  KindItem,
			Text:  activity.DisplayName(record, s.ShowExtension),
			Title: path,
			Path:  path,
			OnClick: func() error {
				return p.navigate(path)
			},
		})
	}
	p.items = len(sorted)

	p.logger.Debug().
		Int("items", p.items).
		Str("sort_mode", string(s.SortMode)).
		Msg("rendered panel")

	return listErr
}

func (p *Panel) list(ctx context.Context) ([]activity.FileRecord, error) {
	if p.source == nil {
		return nil, ErrNoSource
	}
	return p.source.ListMarkdownFiles(ctx)
}

func (p *Panel) navigate(path string) error {
	if p.navigator == nil {
		return nil
	}
	if err := p.navigator.NavigateTo(path); err != nil {
		p.logger.Error().Err(err).Str("path", path).Msg("failed to open note")
		return err
	}
	return nil
}
