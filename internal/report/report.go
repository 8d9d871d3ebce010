package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdxmph/remindr/internal/schedule"
)

// Task outcomes. Exactly one applies to every task.
const (
	outcomeCompleted    = "✅ COMPLETED"
	outcomeNotCompleted = "❌ NOT COMPLETED"
	outcomeSkipped      = "⏭️  SKIPPED"
)

const separator = "======================================================================"

// Filename returns the report filename for the given day.
func Filename(now time.Time) string {
	return fmt.Sprintf("daily_report_%s.txt", now.Format("2006-01-02"))
}

// Write renders the end-of-day report for tasks to w.
func Write(w io.Writer, tasks []*schedule.Task, now time.Time) error {
	var b strings.Builder

	fmt.Fprintf(&b, "📌 remindr Daily Report\n")
	fmt.Fprintf(&b, "Date: %s\n\n", now.Format("2006-01-02"))
	fmt.Fprintf(&b, "Tasks Summary\n")
	fmt.Fprintf(&b, "%s\n\n", separator)

	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
		fmt.Fprintf(&b, "%s\n", outcome(t))
		fmt.Fprintf(&b, "   Time: %s-%s\n", t.Start.Format("15:04"), t.End.Format("15:04"))
		fmt.Fprintf(&b, "   Task: %s\n", t.Description)
		if t.Reason != "" {
			fmt.Fprintf(&b, "   Reason: %s\n", t.Reason)
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintf(&b, "%s\n\n", separator)
	fmt.Fprintf(&b, "Summary:\n")
	fmt.Fprintf(&b, "  Total Tasks: %d\n", len(tasks))
	fmt.Fprintf(&b, "  ✅ Completed: %d\n", completed)
	fmt.Fprintf(&b, "  ❌ Not Completed: %d\n", len(tasks)-completed)
	fmt.Fprintf(&b, "  Completion Rate: %d%%\n\n", completionRate(completed, len(tasks)))
	fmt.Fprintf(&b, "Generated: %s\n", now.Format("2006-01-02 15:04:05"))

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFile writes the report into dir, overwriting any existing report
// for the same date, and returns the path written.
func WriteFile(dir string, tasks []*schedule.Task, now time.Time) (string, error) {
	path := filepath.Join(dir, Filename(now))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := Write(f, tasks, now); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

// outcome classifies a task into exactly one report outcome.
func outcome(t *schedule.Task) string {
	switch {
	case t.Completed:
		return outcomeCompleted
	case t.Started:
		return outcomeNotCompleted
	default:
		return outcomeSkipped
	}
}

// completionRate returns round(100*completed/total), 0 when there are
// no tasks.
func completionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}
