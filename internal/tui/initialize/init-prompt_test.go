package initialize

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m InitPromptModel, msgs ...tea.Msg) InitPromptModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(InitPromptModel)
	}
	return m
}

func typeText(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var tab = tea.KeyMsg{Type: tea.KeyTab}

func TestSubmitFillsBlankInputsWithDefaults(t *testing.T) {
	var got Answers
	m := InitialPrompt(Answers{VaultDir: "/notes", Editor: "nvim"}, func(a Answers) error {
		got = a
		return nil
	})

	m = press(m, typeText("/vaults/work"), tab, tab, tab, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.Done {
		t.Fatal("expected the prompt to finish")
	}
	want := Answers{VaultDir: "/vaults/work", Editor: "nvim"}
	if got != want {
		t.Fatalf("answers = %+v, want %+v", got, want)
	}
}

func TestSubmitErrorKeepsPromptOpen(t *testing.T) {
	m := InitialPrompt(Answers{VaultDir: "/notes", Editor: "nvim"}, func(Answers) error {
		return errors.New("vault path is not a directory")
	})

	m = press(m, tab, tab, tab, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Done {
		t.Fatal("expected the prompt to stay open after a failed submit")
	}
	if !strings.Contains(m.View(), "not a directory") {
		t.Fatalf("expected the error in the view, got %q", m.View())
	}
}

func TestFocusWrapsAround(t *testing.T) {
	m := InitialPrompt(Answers{}, func(Answers) error { return nil })

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focusIndex != inputCount {
		t.Fatalf("expected focus on the submit button, got %d", m.focusIndex)
	}

	m = press(m, tab)
	if m.focusIndex != inputVault {
		t.Fatalf("expected focus to wrap to the first input, got %d", m.focusIndex)
	}
}
