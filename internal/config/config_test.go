package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Schedule.Path != "reminders.txt" {
		t.Errorf("Expected default schedule path 'reminders.txt', got %q", cfg.Schedule.Path)
	}
	if cfg.Report.Dir != "." {
		t.Errorf("Expected default report dir '.', got %q", cfg.Report.Dir)
	}
	if cfg.Timing.CheckIntervalSecs != 5 {
		t.Errorf("Expected 5s check interval, got %d", cfg.Timing.CheckIntervalSecs)
	}
	if cfg.Timing.DeadlineCooldownSecs != 3600 {
		t.Errorf("Expected 3600s deadline cooldown, got %d", cfg.Timing.DeadlineCooldownSecs)
	}
	if cfg.Timing.PopupDurationSecs != 10 {
		t.Errorf("Expected 10s popup duration, got %d", cfg.Timing.PopupDurationSecs)
	}
	if len(cfg.Notify.SoundPaths) == 0 {
		t.Error("Expected default sound paths")
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Schedule.Path != "reminders.txt" {
		t.Errorf("Expected defaults for a missing file, got %q", cfg.Schedule.Path)
	}
}

func TestLoadFrom(t *testing.T) {
	content := `[schedule]
path = "/tmp/my-reminders.txt"

[notify]
backend = "terminal"
quiet = true

[timing]
check_interval_secs = 1
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Schedule.Path != "/tmp/my-reminders.txt" {
		t.Errorf("Expected overridden schedule path, got %q", cfg.Schedule.Path)
	}
	if cfg.Notify.Backend != "terminal" {
		t.Errorf("Expected backend 'terminal', got %q", cfg.Notify.Backend)
	}
	if !cfg.Notify.Quiet {
		t.Error("Expected quiet = true")
	}
	if cfg.Timing.CheckIntervalSecs != 1 {
		t.Errorf("Expected check interval 1, got %d", cfg.Timing.CheckIntervalSecs)
	}
	// Untouched sections keep their defaults.
	if cfg.Timing.DeadlineCooldownSecs != 3600 {
		t.Errorf("Expected default cooldown, got %d", cfg.Timing.DeadlineCooldownSecs)
	}
	if cfg.Report.Dir != "." {
		t.Errorf("Expected default report dir, got %q", cfg.Report.Dir)
	}
}

func TestSave(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Default()
	cfg.Notify.Backend = "terminal"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadFrom(filepath.Join(home, ".config", "remindr", "config.toml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Notify.Backend != "terminal" {
		t.Errorf("Save did not persist backend, got %q", loaded.Notify.Backend)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := Default()
	cfg.Notify.Backend = "zenity"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Notify.Backend != "zenity" {
		t.Errorf("Round trip lost backend, got %q", loaded.Notify.Backend)
	}
}
