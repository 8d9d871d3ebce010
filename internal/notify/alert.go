package notify

import (
	"fmt"
	"os"
	"os/exec"
)

// Alerter plays an audible alert. Implementations are best-effort and
// never block the caller.
type Alerter interface {
	Alert()
}

// SoundAlerter plays the first sound file it finds from its configured
// paths through paplay, falling back to the beep command and finally
// the terminal bell. paplay is probed once at construction.
type SoundAlerter struct {
	hasPaplay bool
	paths     []string
}

// NewSoundAlerter creates an alerter for the given candidate sound files
func NewSoundAlerter(paths []string) *SoundAlerter {
	_, err := exec.LookPath("paplay")
	return &SoundAlerter{
		hasPaplay: err == nil,
		paths:     paths,
	}
}

// Alert plays the alarm sound without waiting for it to finish
func (a *SoundAlerter) Alert() {
	if a.hasPaplay {
		for _, path := range a.paths {
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if spawn("paplay", path) {
				return
			}
		}
		if spawn("beep") {
			return
		}
	}
	bell()
}

// spawn starts a command detached, reaping it in the background
func spawn(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return false
	}
	go cmd.Wait()
	return true
}

// bell rings the terminal bell
func bell() {
	fmt.Print("\a")
}

// SilentAlerter suppresses audible alerts entirely (the -quiet flag)
type SilentAlerter struct{}

// Alert does nothing
func (SilentAlerter) Alert() {}
