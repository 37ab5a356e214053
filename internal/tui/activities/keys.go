package activities

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	openNote      key.Binding
	settings      key.Binding
	toggleExt     key.Binding
	cycleSort     key.Binding
	refresh       key.Binding
	split         key.Binding
	closePane     key.Binding
	focusNext     key.Binding
	copyPath      key.Binding
	quit          key.Binding
	exitAltView   key.Binding
	submitAltView key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		openNote: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open"),
		),
		settings: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "settings"),
		),
		toggleExt: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "toggle extension"),
		),
		cycleSort: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "cycle sort"),
		),
		refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh"),
		),
		split: key.NewBinding(
			key.WithKeys("|"),
			key.WithHelp("|", "split"),
		),
		closePane: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "close pane"),
		),
		focusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		copyPath: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "copy path"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		exitAltView: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		submitAltView: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "change"),
		),
	}
}

func (k *listKeyMap) shortHelp() []key.Binding {
	return []key.Binding{k.openNote, k.settings, k.toggleExt, k.cycleSort}
}

func (k *listKeyMap) fullHelp() []key.Binding {
	return []key.Binding{k.refresh, k.split, k.closePane, k.focusNext, k.copyPath}
}
