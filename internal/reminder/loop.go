package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/pdxmph/remindr/internal/notify"
	"github.com/pdxmph/remindr/internal/schedule"
)

// Defaults for the loop's timing knobs.
const (
	DefaultCheckInterval    = 5 * time.Second
	DefaultDeadlineCooldown = time.Hour
	DefaultPopupDuration    = 10 * time.Second
)

// Options carries the loop's timing knobs. Zero values fall back to the
// defaults above.
type Options struct {
	// CheckInterval is the sleep between ticks.
	CheckInterval time.Duration
	// DeadlineCooldown is the minimum time before the same deadline is
	// re-alerted.
	DeadlineCooldown time.Duration
	// PopupDuration is how long a spawned popup stays visible; a
	// deadline is not re-offered while its previous popup may still be
	// on screen.
	PopupDuration time.Duration
}

// Loop is remindr's polling state machine. It is the sole owner and
// mutator of task lifecycle flags and of the deadline tracking maps;
// everything runs on one goroutine, and the only places it suspends are
// the blocking completion prompts.
type Loop struct {
	tasks     []*schedule.Task
	deadlines []schedule.Deadline
	notifier  notify.Notifier
	alerter   notify.Alerter
	opts      Options

	lastShown      map[string]time.Time // deadline ID -> last alert time
	pending        map[string]time.Time // deadline ID -> popup spawn time
	lastStartPopup string

	// now is the clock, injectable for tests.
	now func() time.Time
}

// New creates a loop over the given schedule. The loop shares the
// schedule's task pointers, so the caller sees final lifecycle state
// after Run returns.
func New(s *schedule.Schedule, n notify.Notifier, a notify.Alerter, opts Options) *Loop {
	if opts.CheckInterval <= 0 {
		opts.CheckInterval = DefaultCheckInterval
	}
	if opts.DeadlineCooldown <= 0 {
		opts.DeadlineCooldown = DefaultDeadlineCooldown
	}
	if opts.PopupDuration <= 0 {
		opts.PopupDuration = DefaultPopupDuration
	}
	return &Loop{
		tasks:     s.Tasks,
		deadlines: s.Deadlines,
		notifier:  n,
		alerter:   a,
		opts:      opts,
		lastShown: make(map[string]time.Time),
		pending:   make(map[string]time.Time),
		now:       time.Now,
	}
}

// Run ticks until every task's window has passed or ctx is cancelled.
// Cancellation is observed at tick boundaries, so it takes effect
// within one check interval; a blocking prompt in progress finishes
// first.
func (l *Loop) Run(ctx context.Context) {
	for {
		if l.Tick(l.now()) {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(l.opts.CheckInterval):
		}
	}
}

// Tick runs one evaluation pass against the given instant and reports
// whether the exit condition holds. The time is sampled once per tick.
func (l *Loop) Tick(now time.Time) bool {
	l.expirePending(now)
	l.checkDeadlines(now)

	nowSecs := schedule.SecondsSinceMidnight(now)
	for _, t := range l.tasks {
		l.checkStart(t, nowSecs)
		l.checkCompletion(t, nowSecs)
	}

	return l.allPassed(nowSecs)
}

// expirePending drops pending markers for popups that have dismissed
// themselves by now.
func (l *Loop) expirePending(now time.Time) {
	for id, spawned := range l.pending {
		if now.Sub(spawned) >= l.opts.PopupDuration {
			delete(l.pending, id)
		}
	}
}

// checkDeadlines re-alerts each deadline that is past its cooldown and
// has no popup still on screen. Days left are recomputed against the
// current date, not the load date.
func (l *Loop) checkDeadlines(now time.Time) {
	for _, d := range l.deadlines {
		if _, onScreen := l.pending[d.ID]; onScreen {
			continue
		}
		if last, shown := l.lastShown[d.ID]; shown && now.Sub(last) < l.opts.DeadlineCooldown {
			continue
		}

		daysLeft := d.DaysLeft(now)
		var message string
		if daysLeft >= 0 {
			message = fmt.Sprintf("⏳ Deadline: %s\n(%d days left)", d.Description, daysLeft)
		} else {
			message = fmt.Sprintf("⏳ Deadline: %s\n(%d days overdue!)", d.Description, -daysLeft)
		}

		l.notifier.Info(message)
		l.alerter.Alert()
		l.lastShown[d.ID] = now
		l.pending[d.ID] = now
	}
}

// checkStart transitions a task to started the first instant the clock
// is inside its window. The lastStartPopup guard keeps two adjacent
// tasks with identical descriptions from stacking popups.
func (l *Loop) checkStart(t *schedule.Task, nowSecs int) {
	if t.Started || nowSecs < t.StartSeconds || nowSecs >= t.EndSeconds {
		return
	}
	t.Started = true

	if l.lastStartPopup == t.Description {
		return
	}
	l.notifier.Info("⏰ Task Starting:\n" + t.Description)
	l.alerter.Alert()
	l.lastStartPopup = t.Description
}

// checkCompletion asks once, at the end of a started task's window,
// whether it was completed, and collects a reason if it was not.
func (l *Loop) checkCompletion(t *schedule.Task, nowSecs int) {
	if !t.Started || t.Completed || t.CompletedAsked || nowSecs < t.EndSeconds {
		return
	}
	t.CompletedAsked = true

	if l.notifier.AskYesNo("Did you complete: " + t.Description) {
		t.Completed = true
		l.notifier.Info("Great! One step closer to your goal 🎉")
		l.alerter.Alert()
		return
	}

	if reason, ok := l.notifier.AskText(fmt.Sprintf("Why was '%s' not completed?", t.Description)); ok {
		t.Reason = reason
	}
}

// allPassed reports the exit condition: every task's end has passed and
// the clock is strictly beyond the latest end.
func (l *Loop) allPassed(nowSecs int) bool {
	latest := 0
	for _, t := range l.tasks {
		if nowSecs < t.EndSeconds {
			return false
		}
		if t.EndSeconds > latest {
			latest = t.EndSeconds
		}
	}
	return nowSecs > latest
}
