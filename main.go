package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pdxmph/remindr/internal/config"
	"github.com/pdxmph/remindr/internal/notify"
	"github.com/pdxmph/remindr/internal/reminder"
	"github.com/pdxmph/remindr/internal/report"
	"github.com/pdxmph/remindr/internal/schedule"
	"github.com/pdxmph/remindr/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (default ~/.config/remindr/config.toml)")
	schedulePath := flag.String("schedule", "", "Path to the reminders file (overrides config)")
	reportDir := flag.String("report-dir", "", "Directory for daily reports (overrides config)")
	backend := flag.String("backend", "", "Notification backend: zenity, terminal or noop (overrides config)")
	quiet := flag.Bool("quiet", false, "Suppress audible alerts")
	writeConfig := flag.Bool("write-config", false, "Write the active config to ~/.config/remindr/config.toml and exit")
	flag.Parse()

	cfg := loadConfig(*configPath)
	if *schedulePath != "" {
		cfg.Schedule.Path = *schedulePath
	}
	if *reportDir != "" {
		cfg.Report.Dir = *reportDir
	}
	if *backend != "" {
		cfg.Notify.Backend = *backend
	}
	if *quiet {
		cfg.Notify.Quiet = true
	}

	if *writeConfig {
		if err := cfg.Save(); err != nil {
			log.Fatalf("Error saving config: %v", err)
		}
		fmt.Println("Config written to ~/.config/remindr/config.toml")
		return
	}

	sched, err := schedule.Load(cfg.Schedule.Path)
	if err != nil {
		fatalScheduleError(cfg.Schedule.Path, err)
	}

	clearTerminal()
	fmt.Println(tui.Banner())
	fmt.Println(tui.RenderSchedule(sched.Tasks, sched.Deadlines, time.Now()))

	notifier := notify.Select(cfg.Notify.Backend, notify.Options{
		PopupSeconds: cfg.Timing.PopupDurationSecs,
	})
	var alerter notify.Alerter = notify.NewSoundAlerter(cfg.Notify.SoundPaths)
	if cfg.Notify.Quiet {
		alerter = notify.SilentAlerter{}
	}

	fmt.Println(tui.Status("⏰ Monitoring started. Running in background..."))
	fmt.Println(tui.Status("Press Ctrl+C to stop remindr"))
	fmt.Println()

	// Interruption is observed at tick boundaries and still goes
	// through the report below.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loop := reminder.New(sched, notifier, alerter, reminder.Options{
		CheckInterval:    time.Duration(cfg.Timing.CheckIntervalSecs) * time.Second,
		DeadlineCooldown: time.Duration(cfg.Timing.DeadlineCooldownSecs) * time.Second,
		PopupDuration:    time.Duration(cfg.Timing.PopupDurationSecs) * time.Second,
	})
	loop.Run(ctx)

	if ctx.Err() != nil {
		fmt.Println()
		fmt.Println(tui.Status("⚠️  remindr interrupted by user"))
		fmt.Println(tui.Status("📝 Daily report will still be saved."))
	}

	if path, err := report.WriteFile(cfg.Report.Dir, sched.Tasks, time.Now()); err != nil {
		log.Printf("failed to write daily report: %v", err)
	} else {
		fmt.Printf("📊 Daily report saved to: %s\n", path)
	}

	fmt.Println()
	fmt.Println("✅ remindr ended. Have a great day!")
}

// loadConfig loads the config file, treating an unreadable one as a
// warning rather than a startup failure.
func loadConfig(path string) *config.Config {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Printf("Warning: using default config: %v", err)
		return config.Default()
	}
	return cfg
}

// fatalScheduleError reports why the schedule cannot be used and exits
// with status 1 before the loop ever starts.
func fatalScheduleError(path string, err error) {
	if errors.Is(err, schedule.ErrNoTasks) {
		fmt.Fprintf(os.Stderr, "❌ No valid tasks found in %s!\n", path)
		fmt.Fprintln(os.Stderr, "   Make sure tasks are in format: HH:MM-HH:MM Description")
	} else {
		fmt.Fprintf(os.Stderr, "❌ Error: Could not read '%s': %v\n", path, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "Create '%s' with lines like:\n", path)
		fmt.Fprintln(os.Stderr, "06:00-07:00 Study physics")
		fmt.Fprintln(os.Stderr, "07:30-08:00 Workout")
		fmt.Fprintln(os.Stderr, "DEADLINE 2026-02-28 Midterm Exam")
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(1)
}

// clearTerminal clears the screen and homes the cursor.
func clearTerminal() {
	fmt.Print("\x1b[2J\x1b[1;1H")
}
