package notify

// Select picks the notifier to use. An explicit backend name wins even
// if it probes unavailable (the operator asked for it); otherwise
// backends are tried in order of preference and the first available one
// is used, with noop as the end of the line.
func Select(backendName string, opts Options) Notifier {
	if backendName != "" {
		if n, err := Create(backendName, opts); err == nil {
			return n
		}
	}

	preference := []string{"zenity", "terminal"}
	for _, name := range preference {
		n, err := Create(name, opts)
		if err != nil {
			continue
		}
		if n.Available() {
			return n
		}
	}

	n, _ := Create("noop", opts)
	return n
}
