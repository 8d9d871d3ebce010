package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the application configuration
type Config struct {
	Schedule ScheduleConfig `toml:"schedule"`
	Report   ReportConfig   `toml:"report"`
	Notify   NotifyConfig   `toml:"notify"`
	Timing   TimingConfig   `toml:"timing"`
}

// ScheduleConfig holds the reminders file location
type ScheduleConfig struct {
	Path string `toml:"path"`
}

// ReportConfig holds daily report settings
type ReportConfig struct {
	Dir string `toml:"dir"`
}

// NotifyConfig holds notification backend settings
type NotifyConfig struct {
	// Backend forces a specific backend ("zenity", "terminal", "noop").
	// Empty means probe in order of preference.
	Backend    string   `toml:"backend"`
	Quiet      bool     `toml:"quiet"`
	SoundPaths []string `toml:"sound_paths"`
}

// TimingConfig holds the loop's timing knobs, all in seconds
type TimingConfig struct {
	CheckIntervalSecs    int `toml:"check_interval_secs"`
	DeadlineCooldownSecs int `toml:"deadline_cooldown_secs"`
	PopupDurationSecs    int `toml:"popup_duration_secs"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			Path: "reminders.txt",
		},
		Report: ReportConfig{
			Dir: ".",
		},
		Notify: NotifyConfig{
			SoundPaths: []string{
				"/usr/share/sounds/freedesktop/stereo/complete.oga",
				"/usr/share/sounds/freedesktop/stereo/bell.oga",
				"/usr/share/sounds/ubuntu/stereo/bells.oga",
				"/usr/share/sounds/freedesktop/stereo/alarm-clock-elapsed.oga",
			},
		},
		Timing: TimingConfig{
			CheckIntervalSecs:    5,
			DeadlineCooldownSecs: 3600,
			PopupDurationSecs:    10,
		},
	}
}

// Load loads configuration from the standard location
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home dir: %w", err)
	}

	configPath := filepath.Join(homeDir, ".config", "remindr", "config.toml")
	return LoadFrom(configPath)
}

// LoadFrom loads configuration from a specific path
func LoadFrom(configPath string) (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// No config file, return defaults
		return cfg, nil
	}

	// Read and parse config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Expand home directory in paths
	if cfg.Schedule.Path != "" {
		cfg.Schedule.Path = expandPath(cfg.Schedule.Path)
	}
	if cfg.Report.Dir != "" {
		cfg.Report.Dir = expandPath(cfg.Report.Dir)
	}

	return cfg, nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}

// Save saves the configuration to the standard location
func (c *Config) Save() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("getting home dir: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "remindr")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.toml")
	return c.SaveTo(configPath)
}

// SaveTo saves the configuration to a specific path
func (c *Config) SaveTo(configPath string) error {
	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return nil
}
