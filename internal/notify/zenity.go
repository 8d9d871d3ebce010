package notify

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ZenityNotifier shows GUI dialogs through the zenity binary. Info
// popups are spawned detached and never waited on; questions run
// blocking. When zenity cannot be launched mid-run, the ask operations
// degrade to the terminal backend rather than losing the answer.
type ZenityNotifier struct {
	enabled     bool
	timeoutSecs int
	fallback    Notifier
}

// NewZenityNotifier creates a new zenity backend
func NewZenityNotifier(opts Options) Notifier {
	timeout := opts.PopupSeconds
	if timeout <= 0 {
		timeout = 10
	}
	return &ZenityNotifier{
		enabled:     isZenityAvailable(),
		timeoutSecs: timeout,
		fallback:    NewTerminalNotifier(opts),
	}
}

// Name returns the backend identifier
func (z *ZenityNotifier) Name() string {
	return "zenity"
}

// Available returns whether zenity dialogs can be shown
func (z *ZenityNotifier) Available() bool {
	return z.enabled
}

// Info shows an info popup that dismisses itself. Fire-and-forget: the
// spawned dialog is reaped in the background and its outcome ignored.
func (z *ZenityNotifier) Info(message string) {
	if !z.enabled {
		return
	}
	cmd := exec.Command("zenity", "--info", "--text", message,
		fmt.Sprintf("--timeout=%d", z.timeoutSecs))
	if err := cmd.Start(); err != nil {
		z.fallback.Info(message)
		return
	}
	go cmd.Wait()
}

// AskYesNo shows a blocking question dialog. Zenity exits zero for Yes
// and nonzero for No or a closed window.
func (z *ZenityNotifier) AskYesNo(question string) bool {
	if !z.enabled {
		return z.fallback.AskYesNo(question)
	}
	cmd := exec.Command("zenity", "--question", "--text", question,
		"--ok-label=Yes", "--cancel-label=No")
	err := cmd.Run()
	if err == nil {
		return true
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The dialog ran and the user declined.
		return false
	}
	return z.fallback.AskYesNo(question)
}

// AskText shows a blocking entry dialog. Cancelling counts as giving no
// answer, as does an empty entry.
func (z *ZenityNotifier) AskText(question string) (string, bool) {
	if !z.enabled {
		return z.fallback.AskText(question)
	}
	cmd := exec.Command("zenity", "--entry", "--text", question,
		"--title", "Task Incomplete Reason")
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", false
		}
		return z.fallback.AskText(question)
	}
	return normalizeAnswer(string(out))
}

// isZenityAvailable checks for the zenity binary and a usable display
func isZenityAvailable() bool {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return false
	}
	_, err := exec.LookPath("zenity")
	return err == nil
}

// Register the zenity backend
func init() {
	Register("zenity", NewZenityNotifier)
}
