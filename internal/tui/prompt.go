package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is a one-shot yes/no prompt.
type confirmModel struct {
	question string
	answer   bool
	done     bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch strings.ToLower(key.String()) {
		case "y":
			m.answer = true
			m.done = true
			return m, tea.Quit
		case "n", "esc", "ctrl+c":
			m.answer = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return promptStyle.Render(m.question) + helpStyle.Render(" (y/n) ")
}

// Confirm blocks on a terminal yes/no prompt. Declining and failing to
// run the prompt both report false.
func Confirm(question string) (bool, error) {
	m, err := tea.NewProgram(confirmModel{question: question}).Run()
	if err != nil {
		return false, err
	}
	return m.(confirmModel).answer, nil
}

// textModel is a one-shot free-text prompt.
type textModel struct {
	question string
	input    textinput.Model
	done     bool
}

func newTextModel(question string) textModel {
	ti := textinput.New()
	ti.Placeholder = "leave empty to skip"
	ti.Width = 40
	ti.CharLimit = 200
	ti.Focus()
	return textModel{question: question, input: ti}
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.input.SetValue("")
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	if m.done {
		return ""
	}
	return promptStyle.Render(m.question) + "\n" + m.input.View()
}

// Text blocks on a terminal free-text prompt and returns the trimmed
// answer, which may be empty.
func Text(question string) (string, error) {
	m, err := tea.NewProgram(newTextModel(question)).Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(m.(textModel).input.Value()), nil
}
