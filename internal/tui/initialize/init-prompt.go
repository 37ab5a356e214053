package initialize

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#25A065"))
	focusedDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#585b70"))
	blurredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#25A065"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6B6B"})
	cursorStyle         = focusedStyle.Copy()
	noStyle             = lipgloss.NewStyle()
	helpStyle           = blurredStyle.Copy()
	cursorModeHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#25A065"))

	focusedButton = focusedStyle.Copy().Render("[ Submit ]")
	blurredButton = fmt.Sprintf(
		"[ %s ]",
		blurredStyle.Render("Submit"),
	)
)

const (
	inputVault = iota
	inputEditor
	inputEditorArgs
	inputCount
)

// Answers are the values collected by the prompt.
type Answers struct {
	VaultDir string
	Editor   string
	NvimArgs string
}

// SubmitFunc saves the answers. A returned error is shown in the form and
// the prompt stays open.
type SubmitFunc func(Answers) error

type InitPromptModel struct {
	inputs     []textinput.Model
	focusIndex int
	cursorMode cursor.Mode
	defaults   Answers
	submit     SubmitFunc
	err        error
	Done       bool
}

// InitialPrompt builds the form. Blank inputs fall back to defaults on
// submit.
func InitialPrompt(defaults Answers, submit SubmitFunc) InitPromptModel {
	m := InitPromptModel{
		inputs:   make([]textinput.Model, inputCount),
		defaults: defaults,
		submit:   submit,
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 32
		t.PlaceholderStyle = focusedDimStyle

		switch i {
		case inputVault:
			t.Prompt = "Vault Directory: "
			t.Placeholder = defaults.VaultDir
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
			t.CharLimit = 256
		case inputEditor:
			t.Prompt = "Editor: "
			t.Placeholder = defaults.Editor
			t.PromptStyle = noStyle
		case inputEditorArgs:
			t.Prompt = "Editor Arguments: "
			t.Placeholder = "none"
			t.PromptStyle = noStyle
			t.CharLimit = 128
		}

		m.inputs[i] = t
	}

	return m
}

func (m InitPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m InitPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+r":
			m.cursorMode++
			if m.cursorMode > cursor.CursorHide {
				m.cursorMode = cursor.CursorBlink
			}
			cmds := make([]tea.Cmd, len(m.inputs))
			for i := range m.inputs {
				cmds[i] = m.inputs[i].Cursor.SetMode(m.cursorMode)
			}
			return m, tea.Batch(cmds...)

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				m.err = m.submit(m.answers())
				if m.err != nil {
					return m, nil
				}
				m.Done = true
				return m, tea.Quit
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := 0; i <= len(m.inputs)-1; i++ {
				if i == m.focusIndex {
					cmds[i] = m.inputs[i].Focus()
					m.inputs[i].PromptStyle = focusedStyle
					m.inputs[i].TextStyle = focusedStyle
					continue
				}
				m.inputs[i].Blur()
				m.inputs[i].PromptStyle = noStyle
				m.inputs[i].TextStyle = noStyle
			}

			return m, tea.Batch(cmds...)
		}
	}

	cmd := m.updateInputs(msg)

	return m, cmd
}

func (m InitPromptModel) answers() Answers {
	value := func(i int, fallback string) string {
		if v := strings.TrimSpace(m.inputs[i].Value()); v != "" {
			return v
		}
		return fallback
	}

	return Answers{
		VaultDir: value(inputVault, m.defaults.VaultDir),
		Editor:   value(inputEditor, m.defaults.Editor),
		NvimArgs: value(inputEditorArgs, m.defaults.NvimArgs),
	}
}

func (m *InitPromptModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (m InitPromptModel) View() string {
	var b strings.Builder

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		if i < len(m.inputs)-1 {
			b.WriteRune('\n')
		}
	}

	button := &blurredButton
	if m.focusIndex == len(m.inputs) {
		button = &focusedButton
	}
	fmt.Fprintf(&b, "\n\n%s\n\n", *button)

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("cursor mode is "))
	b.WriteString(cursorModeHelpStyle.Render(m.cursorMode.String()))
	b.WriteString(helpStyle.Render(" (ctrl+r to change style)"))
	b.WriteString(
		helpStyle.Render("\n(Leave inputs blank for default values)"),
	)

	return b.String()
}

// Run shows the prompt and reports whether the answers were saved.
func Run(defaults Answers, submit SubmitFunc) (bool, error) {
	final, err := tea.NewProgram(InitialPrompt(defaults, submit)).Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(InitPromptModel)
	return ok && m.Done, nil
}
