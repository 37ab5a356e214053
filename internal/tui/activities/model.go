// Package activities is the terminal sidebar: one or more panes listing the
// vault's notes plus a settings surface.
package activities

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/Paintersrp/activities/internal/activity"
	"github.com/Paintersrp/activities/internal/editor"
	"github.com/Paintersrp/activities/internal/state"
	"github.com/Paintersrp/activities/internal/vault"
)

type viewMode int

const (
	modePanels viewMode = iota
	modeSettings
)

type editorClosedMsg struct {
	path string
	err  error
}

// OpenFunc turns a vault-relative path into the command that opens it.
type OpenFunc func(rel string) (tea.Cmd, error)

// EditorOpener opens notes with l, suspending the program for terminal
// editors.
func EditorOpener(l editor.Launcher) OpenFunc {
	return func(rel string) (tea.Cmd, error) {
		launch, err := l.Prepare(rel)
		if err != nil {
			return nil, err
		}

		if launch.Wait {
			return tea.ExecProcess(launch.Cmd, func(err error) tea.Msg {
				return editorClosedMsg{path: rel, err: err}
			}), nil
		}

		if err := launch.Cmd.Start(); err != nil {
			return nil, fmt.Errorf("failed to start editor: %w", err)
		}
		_ = launch.Cmd.Process.Release()
		return nil, nil
	}
}

// navigator adapts an OpenFunc to panel.Navigator. The command produced by
// the last click is held until Update collects it.
type navigator struct {
	open    OpenFunc
	pending tea.Cmd
}

func (n *navigator) NavigateTo(path string) error {
	cmd, err := n.open(path)
	if err != nil {
		return err
	}
	n.pending = cmd
	return nil
}

func (n *navigator) take() tea.Cmd {
	cmd := n.pending
	n.pending = nil
	return cmd
}

type Model struct {
	state    *state.State
	keys     *listKeyMap
	panes    []*pane
	focus    int
	mode     viewMode
	settings *SettingsModel
	nav      *navigator
	watcher  *vault.Watcher
	logger   zerolog.Logger
	status   string
	nextID   int
	width    int
	height   int
}

type Options struct {
	// Panes is the number of panels opened at start. Values below one open one.
	Panes   int
	Open    OpenFunc
	Watcher *vault.Watcher
}

func NewModel(s *state.State, opts Options) (*Model, error) {
	open := opts.Open
	if open == nil {
		open = EditorOpener(s.Launcher)
	}

	keys := newListKeyMap()
	m := &Model{
		state:    s,
		keys:     keys,
		settings: NewSettingsModel(keys),
		nav:      &navigator{open: open},
		watcher:  opts.Watcher,
		logger:   s.Logger.With().Str("component", "tui").Logger(),
	}

	count := opts.Panes
	if count < 1 {
		count = 1
	}

	var errs []error
	for i := 0; i < count; i++ {
		if err := m.openPane(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		m.status = errorStyle(err.Error())
	}

	return m, nil
}

func (m *Model) openPane() error {
	p := newPane(m.keys)
	m.nextID++
	p.panel = m.state.NewPanel(fmt.Sprintf("pane-%d", m.nextID), p, m.nav)
	m.panes = append(m.panes, p)
	m.focus = len(m.panes) - 1
	m.resize()
	return m.state.Workspace.Open(context.Background(), p.panel)
}

func (m *Model) closeFocused() bool {
	if len(m.panes) <= 1 {
		return false
	}
	p := m.panes[m.focus]
	m.state.Workspace.Close(p.panel)
	m.panes = append(m.panes[:m.focus], m.panes[m.focus+1:]...)
	if m.focus >= len(m.panes) {
		m.focus = len(m.panes) - 1
	}
	m.resize()
	return true
}

func (m *Model) resize() {
	if m.width == 0 || len(m.panes) == 0 {
		return
	}
	h, v := appStyle.GetFrameSize()
	width := (m.width-h)/len(m.panes) - paneStyle.GetHorizontalFrameSize()
	height := m.height - v - 1
	for _, p := range m.panes {
		p.setSize(width, height)
	}
	m.settings.SetSize(m.width-h, m.height-v)
}

func (m *Model) focused() *pane {
	if len(m.panes) == 0 {
		return nil
	}
	return m.panes[m.focus]
}

// changeSettings is the single path through which the UI updates settings.
// The settings manager persists the change and refreshes every open pane.
func (m *Model) changeSettings(patch activity.SettingsPatch) error {
	next, err := m.state.Settings.Set(context.Background(), patch)
	m.settings.Render(next, m.changeSettings)
	return err
}

func (m *Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Next()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case vault.ChangedMsg:
		m.logger.Debug().Str("path", msg.Path).Msg("vault changed")
		if err := m.state.Workspace.RefreshAll(context.Background()); err != nil {
			m.status = errorStyle(err.Error())
		}
		return m, m.watcher.Next()

	case vault.WatcherErrMsg:
		m.logger.Error().Err(msg.Err).Msg("vault watcher error")
		m.status = errorStyle("Watcher error: " + msg.Err.Error())
		return m, m.watcher.Next()

	case editorClosedMsg:
		if msg.err != nil {
			m.status = errorStyle(fmt.Sprintf("Editor exited with error: %v", msg.err))
		}
		if err := m.state.Workspace.RefreshAll(context.Background()); err != nil {
			m.status = errorStyle(err.Error())
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeSettings {
			if cmd, handled := m.handleKey(msg); handled {
				return m, cmd
			}
		}
	}

	// The settings surface owns every other message while shown, including
	// its own status timeouts.
	if m.mode == modeSettings {
		cmd, done := m.settings.Update(msg)
		if done {
			m.mode = modePanels
		}
		return m, cmd
	}

	p := m.focused()
	if p == nil {
		return m, nil
	}
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	p := m.focused()

	switch {
	case key.Matches(msg, m.keys.quit):
		return tea.Quit, true

	case key.Matches(msg, m.keys.openNote):
		item, ok := p.selected()
		if !ok || item.onClick == nil {
			return nil, true
		}
		if err := item.onClick(); err != nil {
			m.status = errorStyle(fmt.Sprintf("Failed to open %s: %v", item.path, err))
			return nil, true
		}
		m.status = ""
		return m.nav.take(), true

	case key.Matches(msg, m.keys.settings):
		m.settings.Render(m.state.Settings.Get(), m.changeSettings)
		m.mode = modeSettings
		return nil, true

	case key.Matches(msg, m.keys.toggleExt):
		current := m.state.Settings.Get()
		m.reportSettingsErr(m.changeSettings(activity.WithShowExtension(!current.ShowExtension)))
		return nil, true

	case key.Matches(msg, m.keys.cycleSort):
		current := m.state.Settings.Get()
		m.reportSettingsErr(m.changeSettings(activity.WithSortMode(current.SortMode.Next())))
		return nil, true

	case key.Matches(msg, m.keys.refresh):
		if err := m.state.Workspace.RefreshAll(context.Background()); err != nil {
			m.status = errorStyle(err.Error())
		} else {
			m.status = statusStyle("Refreshed")
		}
		return nil, true

	case key.Matches(msg, m.keys.split):
		if err := m.openPane(); err != nil {
			m.status = errorStyle(err.Error())
		}
		return nil, true

	case key.Matches(msg, m.keys.closePane):
		if !m.closeFocused() {
			m.status = statusStyle("Cannot close the last pane")
		}
		return nil, true

	case key.Matches(msg, m.keys.focusNext):
		if len(m.panes) > 0 {
			m.focus = (m.focus + 1) % len(m.panes)
		}
		return nil, true

	case key.Matches(msg, m.keys.copyPath):
		item, ok := p.selected()
		if !ok {
			return nil, true
		}
		if err := clipboard.WriteAll(item.path); err != nil {
			m.status = errorStyle(fmt.Sprintf("Failed to copy path: %v", err))
		} else {
			m.status = statusStyle("Copied " + item.path)
		}
		return nil, true
	}

	return nil, false
}

func (m *Model) reportSettingsErr(err error) {
	if err != nil {
		m.status = errorStyle(fmt.Sprintf("Failed to update settings: %v", err))
		return
	}
	s := m.state.Settings.Get()
	ext := "hidden"
	if s.ShowExtension {
		ext = "shown"
	}
	m.status = statusStyle(fmt.Sprintf("Sort: %s · Extensions %s", s.SortMode.Label(), ext))
}

func (m *Model) View() string {
	if m.mode == modeSettings {
		return appStyle.Render(m.settings.View())
	}

	views := make([]string, len(m.panes))
	for i, p := range m.panes {
		views[i] = p.view(i == m.focus)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, views...)
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, m.status))
}

// Run starts the interactive panel.
func Run(s *state.State, panes int) error {
	if err := s.RequireVault(); err != nil {
		return err
	}

	watcher, err := vault.NewWatcher(s.Vault)
	if err != nil {
		s.Logger.Warn().Err(err).Msg("vault watcher unavailable, live refresh disabled")
	}
	defer watcher.Close()

	m, err := NewModel(s, Options{Panes: panes, Watcher: watcher})
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// RunSettings shows only the settings surface.
func RunSettings(s *state.State) error {
	keys := newListKeyMap()
	sm := NewSettingsModel(keys)

	var onChange ChangeFunc
	onChange = func(patch activity.SettingsPatch) error {
		next, err := s.Settings.Set(context.Background(), patch)
		sm.Render(next, onChange)
		return err
	}
	sm.Render(s.Settings.Get(), onChange)

	_, err := tea.NewProgram(settingsProgram{model: sm}, tea.WithAltScreen()).Run()
	return err
}

type settingsProgram struct {
	model *SettingsModel
}

func (p settingsProgram) Init() tea.Cmd { return nil }

func (p settingsProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		h, v := appStyle.GetFrameSize()
		p.model.SetSize(size.Width-h, size.Height-v)
		return p, nil
	}

	cmd, done := p.model.Update(msg)
	if done {
		return p, tea.Quit
	}
	return p, cmd
}

func (p settingsProgram) View() string {
	return appStyle.Render(p.model.View())
}
