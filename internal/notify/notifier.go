package notify

// Notifier is the capability-shaped sink the reminder loop talks to.
// Every operation is best-effort: a backend that cannot deliver falls
// back to a safe default instead of returning an error, so the loop
// never stalls on a broken collaborator.
type Notifier interface {
	// Name returns the backend identifier (e.g., "zenity", "terminal")
	Name() string

	// Available reports whether the backend can actually deliver
	// notifications in the current environment
	Available() bool

	// Info shows a message without waiting for the user to see it
	Info(message string)

	// AskYesNo blocks on a yes/no question. Any failure means false.
	AskYesNo(question string) bool

	// AskText blocks on a free-text question. The second return is
	// false when no answer was given; empty answers count as absent.
	AskText(question string) (string, bool)
}

// Options carries the settings backends need at construction time.
type Options struct {
	// PopupSeconds is how long an info popup stays on screen before
	// dismissing itself.
	PopupSeconds int
}

// Factory is a function that creates a new instance of a Notifier
type Factory func(opts Options) Notifier
