package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdxmph/remindr/internal/schedule"
)

const rule = "─────────────────────────────────────"

// Banner returns the startup header.
func Banner() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📌 remindr - Daily Task Reminder"))
	b.WriteString("\n")
	b.WriteString(ruleStyle.Render("=================================="))
	b.WriteString("\n")
	return b.String()
}

// RenderSchedule renders today's tasks and upcoming deadlines the way
// they are shown once at startup.
func RenderSchedule(tasks []*schedule.Task, deadlines []schedule.Deadline, today time.Time) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("📅 Today's Schedule:"))
	b.WriteString("\n")
	b.WriteString(ruleStyle.Render(rule))
	b.WriteString("\n")
	for _, t := range tasks {
		b.WriteString("  ")
		b.WriteString(timeStyle.Render(t.Start.Format("15:04") + "-" + t.End.Format("15:04")))
		b.WriteString(" ")
		b.WriteString(t.Description)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("📆 Upcoming Deadlines:"))
	b.WriteString("\n")
	b.WriteString(ruleStyle.Render(rule))
	b.WriteString("\n")
	if len(deadlines) == 0 {
		b.WriteString(helpStyle.Render("  (No deadlines)"))
		b.WriteString("\n")
		return b.String()
	}
	for _, d := range deadlines {
		daysLeft := d.DaysLeft(today)
		if daysLeft >= 0 {
			b.WriteString(deadlineStyle.Render(fmt.Sprintf("  ⏳ %s (in %d days)", d.Description, daysLeft)))
		} else {
			b.WriteString(overdueStyle.Render(fmt.Sprintf("  ⏳ %s (%d days ago!)", d.Description, -daysLeft)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Status renders a dim status line.
func Status(message string) string {
	return statusStyle.Render(message)
}

// Info renders an attention-grabbing notification block.
func Info(message string) string {
	return infoStyle.Render(message)
}
