package notify

// NoopNotifier is a backend that does nothing, used when no
// notification surface is available at all
type NoopNotifier struct{}

// NewNoopNotifier creates a new no-op backend
func NewNoopNotifier() Notifier {
	return &NoopNotifier{}
}

// Name returns the backend identifier
func (n *NoopNotifier) Name() string {
	return "noop"
}

// Available always returns false for the noop backend
func (n *NoopNotifier) Available() bool {
	return false
}

// Info discards the message
func (n *NoopNotifier) Info(message string) {}

// AskYesNo answers no
func (n *NoopNotifier) AskYesNo(question string) bool {
	return false
}

// AskText answers nothing
func (n *NoopNotifier) AskText(question string) (string, bool) {
	return "", false
}

// Register the noop backend
func init() {
	Register("noop", func(Options) Notifier { return NewNoopNotifier() })
}
