package schedule

import (
	"time"
)

// Task is a single time-boxed entry for today. Start and End carry only
// wall-clock time; the date component is whatever day the schedule was
// loaded on.
type Task struct {
	Start       time.Time
	End         time.Time
	Description string

	// Seconds since midnight, derived once at load time so the loop can
	// compare against the clock without re-deriving them every tick.
	StartSeconds int
	EndSeconds   int

	// Lifecycle flags, owned and mutated only by the reminder loop.
	Started        bool
	CompletedAsked bool
	Completed      bool
	Reason         string // empty means no reason was given
}

// NewTask creates a task with its derived second offsets. Callers must
// have already validated start < end.
func NewTask(start, end time.Time, description string) *Task {
	return &Task{
		Start:        start,
		End:          end,
		Description:  description,
		StartSeconds: SecondsSinceMidnight(start),
		EndSeconds:   SecondsSinceMidnight(end),
	}
}

// Deadline is a date-only entry. The ID is assigned at load time so two
// deadlines with identical descriptions stay distinguishable to the loop.
type Deadline struct {
	ID          string
	Date        time.Time
	Description string
}

// DaysLeft returns the number of calendar days between today and the
// deadline date. Negative means overdue. Both midnights are built in
// UTC so a DST transition inside the span cannot skew the count.
func (d Deadline) DaysLeft(today time.Time) int {
	from := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(d.Date.Year(), d.Date.Month(), d.Date.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// Schedule holds everything parsed from a reminders file.
type Schedule struct {
	Tasks     []*Task
	Deadlines []Deadline
}

// SecondsSinceMidnight converts a wall-clock time to its offset within
// the day.
func SecondsSinceMidnight(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
