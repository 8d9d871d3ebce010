package schedule

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNoTasks is returned when a schedule contains no valid time-boxed
// tasks. A schedule with nothing to remind about is a startup error.
var ErrNoTasks = errors.New("no valid tasks in schedule")

const deadlineKeyword = "DEADLINE "

// Load reads and parses the reminders file at path.
func Load(path string) (*Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a line-oriented reminders schedule. Blank lines and lines
// starting with # are skipped. "DEADLINE YYYY-MM-DD text" lines become
// deadlines, everything else is tried as "HH:MM-HH:MM text". Malformed
// lines and inverted time ranges are dropped silently; only an empty
// task list is an error.
func Parse(r io.Reader) (*Schedule, error) {
	s := &Schedule{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(strings.ToUpper(line), deadlineKeyword) {
			if d, ok := parseDeadline(line); ok {
				s.Deadlines = append(s.Deadlines, d)
			}
			continue
		}
		if t, ok := parseTask(line); ok {
			s.Tasks = append(s.Tasks, t)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(s.Tasks) == 0 {
		return nil, ErrNoTasks
	}
	sort.Slice(s.Tasks, func(i, j int) bool {
		return s.Tasks[i].StartSeconds < s.Tasks[j].StartSeconds
	})
	return s, nil
}

// parseDeadline parses "DEADLINE YYYY-MM-DD description".
func parseDeadline(line string) (Deadline, bool) {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 3 {
		return Deadline{}, false
	}
	date, err := time.Parse("2006-01-02", parts[1])
	if err != nil {
		return Deadline{}, false
	}
	desc := strings.TrimSpace(parts[2])
	if desc == "" {
		return Deadline{}, false
	}
	return Deadline{ID: uuid.NewString(), Date: date, Description: desc}, true
}

// parseTask parses "HH:MM-HH:MM description". Ranges where the start is
// not strictly before the end are rejected.
func parseTask(line string) (*Task, bool) {
	sp := strings.IndexByte(line, ' ')
	if sp < 0 {
		return nil, false
	}
	timeRange := line[:sp]
	desc := strings.TrimSpace(line[sp+1:])

	dash := strings.IndexByte(timeRange, '-')
	if dash < 0 {
		return nil, false
	}
	start, err := time.Parse("15:04", timeRange[:dash])
	if err != nil {
		return nil, false
	}
	end, err := time.Parse("15:04", timeRange[dash+1:])
	if err != nil {
		return nil, false
	}
	if !start.Before(end) {
		return nil, false
	}
	return NewTask(start, end, desc), true
}
