package activities

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/activities/internal/panel"
)

// ListItem is one note row. Description shows the vault path, which is the
// item's tooltip.
type ListItem struct {
	title   string
	path    string
	onClick func() error
}

func (i ListItem) Title() string       { return i.title }
func (i ListItem) Description() string { return i.path }
func (i ListItem) FilterValue() string { return i.title }
func (i ListItem) Path() string        { return i.path }

// pane renders one panel into a bubbles list. It is the panel's Container.
type pane struct {
	panel   *panel.Panel
	list    list.Model
	heading string
	empty   string
	width   int
	height  int
}

func newPane(keys *listKeyMap) *pane {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = selectedItemStyle
	d.Styles.SelectedDesc = selectedItemStyle

	l := list.New(nil, d, 0, 0)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.Styles.Title = titleStyle
	l.AdditionalShortHelpKeys = keys.shortHelp
	l.AdditionalFullHelpKeys = keys.fullHelp
	l.KeyMap.Quit = key.NewBinding(key.WithDisabled())

	return &pane{list: l}
}

func (p *pane) Clear() {
	p.heading = ""
	p.empty = ""
	p.list.Title = ""
	p.list.SetItems(nil)
}

func (p *pane) Append(e panel.Element) {
	switch e.Kind {
	case panel.KindHeading:
		p.heading = e.Text
		p.list.Title = e.Text
	case panel.KindEmptyState:
		p.empty = e.Text
	case panel.KindItem:
		p.list.InsertItem(len(p.list.Items()), ListItem{
			title:   e.Text,
			path:    e.Path,
			onClick: e.OnClick,
		})
	}
}

func (p *pane) selected() (ListItem, bool) {
	item, ok := p.list.SelectedItem().(ListItem)
	return item, ok
}

func (p *pane) setSize(width, height int) {
	p.width, p.height = width, height
	p.list.SetSize(width, height)
}

func (p *pane) view(focused bool) string {
	style := paneStyle
	if focused {
		style = focusedPaneStyle
	}

	var body string
	if p.empty != "" {
		body = lipgloss.JoinVertical(
			lipgloss.Left,
			titleStyle.Render(p.heading),
			emptyStateStyle.Width(p.width).Render(p.empty),
		)
	} else {
		body = p.list.View()
	}

	return style.Width(p.width).Height(p.height).Render(body)
}
