package activities

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/erikgeiser/promptkit/selection"

	"github.com/Paintersrp/activities/internal/activity"
	"github.com/Paintersrp/activities/internal/constants"
)

const (
	settingShowExtension = "Show file extension"
	settingSortOrder     = "Sort order"
)

type settingItem struct {
	title       string
	description string
	value       string
}

func (i settingItem) Title() string       { return i.title }
func (i settingItem) Description() string { return i.description + " · " + i.value }
func (i settingItem) FilterValue() string { return i.title }

// ChangeFunc applies a partial settings update.
type ChangeFunc func(activity.SettingsPatch) error

// SettingsModel is the settings surface: a toggle for the extension and a
// dropdown for the sort order.
type SettingsModel struct {
	list         list.Model
	keys         *listKeyMap
	current      activity.DisplaySettings
	onChange     ChangeFunc
	sortSelect   *selection.Model[string]
	selectActive bool
	width        int
	height       int
}

func NewSettingsModel(keys *listKeyMap) *SettingsModel {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = selectedItemStyle
	d.Styles.SelectedDesc = selectedItemStyle

	l := list.New(nil, d, 0, 0)
	l.Title = constants.SettingsTitle
	l.Styles.Title = titleStyle
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.KeyMap.Quit = key.NewBinding(key.WithDisabled())
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.submitAltView, keys.exitAltView}
	}

	return &SettingsModel{list: l, keys: keys}
}

// Render shows s and routes every change through onChange.
func (m *SettingsModel) Render(s activity.DisplaySettings, onChange ChangeFunc) {
	m.current = s
	m.onChange = onChange

	ext := "off"
	if s.ShowExtension {
		ext = "on"
	}

	idx := m.list.Index()
	m.list.SetItems([]list.Item{
		settingItem{
			title:       settingShowExtension,
			description: "Display .md extension in activity names",
			value:       ext,
		},
		settingItem{
			title:       settingSortOrder,
			description: "How to sort the activities in the list",
			value:       s.SortMode.Label(),
		},
	})
	m.list.Select(idx)
}

func (m *SettingsModel) SetSize(width, height int) {
	m.width, m.height = width, height
	m.list.SetSize(width, height)
}

func newSortSelect() *selection.Model[string] {
	labels := make([]string, len(activity.SortModes))
	for i, mode := range activity.SortModes {
		labels[i] = mode.Label()
	}

	sel := selection.New("How should activities be sorted?", labels)
	sel.Filter = nil
	return selection.NewModel(sel)
}

// Update handles a key while the surface is shown. done reports that the
// user left the surface.
func (m *SettingsModel) Update(msg tea.Msg) (cmd tea.Cmd, done bool) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if m.selectActive {
		if isKey && key.Matches(keyMsg, m.keys.exitAltView) {
			m.selectActive = false
			return nil, false
		}

		_, cmd = m.sortSelect.Update(msg)

		// The selection quits its own program on submit, so its command is
		// dropped here.
		if isKey && key.Matches(keyMsg, m.keys.submitAltView) {
			m.selectActive = false
			label, err := m.sortSelect.Value()
			if err != nil {
				return nil, false
			}
			mode, err := activity.ParseSortMode(label)
			if err != nil {
				return m.list.NewStatusMessage(errorStyle(err.Error())), false
			}
			return m.apply(activity.WithSortMode(mode), "Sort order"), false
		}
		return cmd, false
	}

	if isKey {
		switch {
		case key.Matches(keyMsg, m.keys.exitAltView), key.Matches(keyMsg, m.keys.quit):
			return nil, true
		case key.Matches(keyMsg, m.keys.submitAltView):
			item, ok := m.list.SelectedItem().(settingItem)
			if !ok {
				return nil, false
			}
			switch item.title {
			case settingShowExtension:
				return m.apply(activity.WithShowExtension(!m.current.ShowExtension), "Show file extension"), false
			case settingSortOrder:
				m.sortSelect = newSortSelect()
				m.selectActive = true
				return m.sortSelect.Init(), false
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return cmd, false
}

func (m *SettingsModel) apply(patch activity.SettingsPatch, name string) tea.Cmd {
	if m.onChange == nil {
		return nil
	}
	if err := m.onChange(patch); err != nil {
		return m.list.NewStatusMessage(errorStyle(fmt.Sprintf("Failed to update %s: %v", name, err)))
	}
	return m.list.NewStatusMessage(statusStyle("Updated and Saved: " + name))
}

func (m *SettingsModel) View() string {
	if m.selectActive && m.sortSelect != nil {
		return m.sortSelect.View()
	}
	return m.list.View()
}
