package notify

import (
	"fmt"
	"strings"

	"github.com/pdxmph/remindr/internal/tui"
)

// TerminalNotifier delivers everything through the controlling
// terminal: styled prints for info, interactive prompts for questions.
// It is the always-available fallback for headless sessions.
type TerminalNotifier struct{}

// NewTerminalNotifier creates a new terminal backend
func NewTerminalNotifier(Options) Notifier {
	return &TerminalNotifier{}
}

// Name returns the backend identifier
func (t *TerminalNotifier) Name() string {
	return "terminal"
}

// Available always returns true; a terminal is all this backend needs
func (t *TerminalNotifier) Available() bool {
	return true
}

// Info prints the message as a highlighted block
func (t *TerminalNotifier) Info(message string) {
	fmt.Println()
	fmt.Println(tui.Info(message))
}

// AskYesNo runs an interactive yes/no prompt. A prompt that cannot run
// (e.g. stdin is not a terminal) answers no.
func (t *TerminalNotifier) AskYesNo(question string) bool {
	answer, err := tui.Confirm(question)
	if err != nil {
		return false
	}
	return answer
}

// AskText runs an interactive free-text prompt
func (t *TerminalNotifier) AskText(question string) (string, bool) {
	answer, err := tui.Text(question)
	if err != nil {
		return "", false
	}
	return normalizeAnswer(answer)
}

// normalizeAnswer trims an answer and maps emptiness to absence
func normalizeAnswer(answer string) (string, bool) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", false
	}
	return answer, true
}

// Register the terminal backend
func init() {
	Register("terminal", NewTerminalNotifier)
}
