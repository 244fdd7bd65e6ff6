// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"

	"github.com/javiermolinar/nightshift/internal/schedule"
	"github.com/javiermolinar/nightshift/internal/tui/theme"
)

// Config holds the application configuration.
type Config struct {
	Schedule ScheduleConfig `toml:"schedule"`
	Slider   SliderConfig   `toml:"slider"`
	LLM      LLMConfig      `toml:"llm"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
}

// ScheduleConfig holds the default window used until one is saved.
type ScheduleConfig struct {
	Start string `toml:"start"` // e.g., "18:00"
	End   string `toml:"end"`   // e.g., "06:00"
}

// SliderConfig holds slider interaction settings.
type SliderConfig struct {
	StepMinutes      int  `toml:"step_minutes"`       // arrow keys
	LargeStepMinutes int  `toml:"large_step_minutes"` // shift+arrow keys
	RTL              bool `toml:"rtl"`                // mirror the bar
	Use24Hour        bool `toml:"use_24_hour"`        // "18:00" vs "6:00 PM"
}

// LLMConfig holds LLM provider settings.
type LLMConfig struct {
	Provider string `toml:"provider"` // "copilot", "ollama", "lmstudio"
	Model    string `toml:"model"`    // e.g., "gpt-4o"
	BaseURL  string `toml:"base_url"` // e.g., "http://localhost:11434"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// LogConfig holds debug log settings. Logs only go to File, never the terminal.
type LogConfig struct {
	Level string `toml:"level"` // zap level: debug, info, warn, error
	File  string `toml:"file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			Start: "18:00",
			End:   "06:00",
		},
		Slider: SliderConfig{
			StepMinutes:      5,
			LargeStepMinutes: 60,
			RTL:              false,
			Use24Hour:        true,
		},
		LLM: LLMConfig{
			Provider: "copilot",
			Model:    "gpt-4o",
			BaseURL:  "http://localhost:11434",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "mocha",
		},
		Log: LogConfig{
			Level: "debug",
			File:  "nightshift-debug.log",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "nightshift.db"
	}
	return filepath.Join(home, ".local", "share", "nightshift", "nightshift.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "nightshift", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Log.File = expandPath(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("NIGHTSHIFT_START"); v != "" {
		cfg.Schedule.Start = v
	}
	if v := os.Getenv("NIGHTSHIFT_END"); v != "" {
		cfg.Schedule.End = v
	}

	if v := os.Getenv("NIGHTSHIFT_STEP_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NIGHTSHIFT_STEP_MINUTES: %w", err)
		}
		cfg.Slider.StepMinutes = n
	}
	if v := os.Getenv("NIGHTSHIFT_RTL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("NIGHTSHIFT_RTL: %w", err)
		}
		cfg.Slider.RTL = b
	}
	if v := os.Getenv("NIGHTSHIFT_24_HOUR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("NIGHTSHIFT_24_HOUR: %w", err)
		}
		cfg.Slider.Use24Hour = b
	}

	if v := os.Getenv("NIGHTSHIFT_LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("NIGHTSHIFT_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("NIGHTSHIFT_LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}

	if v := os.Getenv("NIGHTSHIFT_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("NIGHTSHIFT_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("NIGHTSHIFT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("NIGHTSHIFT_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := c.DefaultSchedule(); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	if c.Slider.StepMinutes <= 0 {
		return errors.New("step_minutes must be positive")
	}
	if c.Slider.LargeStepMinutes <= 0 {
		return errors.New("large_step_minutes must be positive")
	}
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// DefaultSchedule returns the configured schedule used before anything is saved.
func (c *Config) DefaultSchedule() (*schedule.Schedule, error) {
	return schedule.Parse(c.Schedule.Start, c.Schedule.End)
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
