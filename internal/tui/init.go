package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/javiermolinar/nightshift/internal/clock"
	"github.com/javiermolinar/nightshift/internal/config"
	"github.com/javiermolinar/nightshift/internal/db"
	"github.com/javiermolinar/nightshift/internal/schedule"
)

func openRepo(dbPath string) (schedule.Repository, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return repo, nil
}

// fallbackSchedule is the configured default, or 18:00-06:00 if the config is unusable.
func fallbackSchedule(cfg *config.Config) *schedule.Schedule {
	if cfg != nil {
		if s, err := cfg.DefaultSchedule(); err == nil {
			return s
		}
	}
	return &schedule.Schedule{Start: clock.Evening, End: clock.MustParse("06:00")}
}
