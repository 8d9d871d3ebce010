package schedule

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	input := `# morning block
06:00-07:00 Study physics

07:30-08:00 Workout
DEADLINE 2026-02-28 Midterm Exam
deadline 2026-03-01 Pay rent
DEADLINE not-a-date Broken entry
25:99-26:00 Broken time
09:00-08:00 Inverted range
garbage line without a time
`
	s, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(s.Tasks) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(s.Tasks))
	}
	if s.Tasks[0].Description != "Study physics" {
		t.Errorf("Expected first task 'Study physics', got '%s'", s.Tasks[0].Description)
	}
	if s.Tasks[0].StartSeconds != 6*3600 {
		t.Errorf("Expected StartSeconds %d, got %d", 6*3600, s.Tasks[0].StartSeconds)
	}
	if s.Tasks[0].EndSeconds != 7*3600 {
		t.Errorf("Expected EndSeconds %d, got %d", 7*3600, s.Tasks[0].EndSeconds)
	}

	if len(s.Deadlines) != 2 {
		t.Fatalf("Expected 2 deadlines, got %d", len(s.Deadlines))
	}
	if s.Deadlines[0].Description != "Midterm Exam" {
		t.Errorf("Expected deadline 'Midterm Exam', got '%s'", s.Deadlines[0].Description)
	}
	want := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	if !s.Deadlines[0].Date.Equal(want) {
		t.Errorf("Expected date %v, got %v", want, s.Deadlines[0].Date)
	}
	if s.Deadlines[0].ID == "" || s.Deadlines[1].ID == "" {
		t.Error("Expected deadlines to get IDs at load time")
	}
	if s.Deadlines[0].ID == s.Deadlines[1].ID {
		t.Error("Expected distinct deadline IDs")
	}
}

func TestParseSortsTasksByStart(t *testing.T) {
	input := `14:00-15:00 Afternoon
06:00-07:00 Morning
09:00-10:00 Midmorning
`
	s, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var prev int
	for i, task := range s.Tasks {
		if task.StartSeconds < prev {
			t.Errorf("Task %d out of order: start %d after %d", i, task.StartSeconds, prev)
		}
		prev = task.StartSeconds
	}
	if s.Tasks[0].Description != "Morning" {
		t.Errorf("Expected 'Morning' first, got '%s'", s.Tasks[0].Description)
	}
}

func TestParseRejectsInvertedRanges(t *testing.T) {
	inputs := []string{
		"10:00-09:00 Backwards\n08:00-09:00 Valid\n",
		"09:00-09:00 Zero width\n08:00-09:00 Valid\n",
	}
	for _, input := range inputs {
		s, err := Parse(strings.NewReader(input))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		for _, task := range s.Tasks {
			if task.StartSeconds >= task.EndSeconds {
				t.Errorf("Loaded task with start >= end: %q", task.Description)
			}
		}
	}
}

func TestParseNoTasks(t *testing.T) {
	inputs := []string{
		"",
		"# only a comment\n",
		"DEADLINE 2026-01-01 Pay rent\n",
		"nonsense\n",
	}
	for _, input := range inputs {
		_, err := Parse(strings.NewReader(input))
		if !errors.Is(err, ErrNoTasks) {
			t.Errorf("Parse(%q): expected ErrNoTasks, got %v", input, err)
		}
	}
}

func TestDaysLeft(t *testing.T) {
	today := time.Date(2026, 8, 30, 14, 30, 0, 0, time.Local)

	tests := []struct {
		date string
		want int
	}{
		{"2026-08-30", 0},
		{"2026-09-02", 3},
		{"2026-08-28", -2},
	}
	for _, tt := range tests {
		date, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatalf("bad test date %s: %v", tt.date, err)
		}
		d := Deadline{Date: date, Description: "x"}
		if got := d.DaysLeft(today); got != tt.want {
			t.Errorf("DaysLeft(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestDaysLeftAcrossDSTChange(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// US spring-forward is 2026-03-08: the three calendar days from the
	// 7th to the 10th span only 71 wall-clock hours.
	today := time.Date(2026, 3, 7, 9, 0, 0, 0, ny)
	date, err := time.Parse("2006-01-02", "2026-03-10")
	if err != nil {
		t.Fatal(err)
	}
	d := Deadline{Date: date, Description: "x"}
	if got := d.DaysLeft(today); got != 3 {
		t.Errorf("DaysLeft across spring-forward = %d, want 3", got)
	}

	// Fall-back (2026-11-01) stretches the span to 73 hours.
	today = time.Date(2026, 10, 31, 9, 0, 0, 0, ny)
	date, err = time.Parse("2006-01-02", "2026-11-03")
	if err != nil {
		t.Fatal(err)
	}
	d = Deadline{Date: date, Description: "x"}
	if got := d.DaysLeft(today); got != 3 {
		t.Errorf("DaysLeft across fall-back = %d, want 3", got)
	}
}

func TestSecondsSinceMidnight(t *testing.T) {
	tm := time.Date(2026, 8, 30, 9, 5, 30, 0, time.Local)
	if got := SecondsSinceMidnight(tm); got != 9*3600+5*60+30 {
		t.Errorf("SecondsSinceMidnight = %d, want %d", got, 9*3600+5*60+30)
	}
}
