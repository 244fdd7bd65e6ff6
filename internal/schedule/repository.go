package schedule

import "context"

// Repository defines the storage interface for the schedule.
type Repository interface {
	// Get returns the current schedule, or ErrNotFound if none was saved.
	Get(ctx context.Context) (*Schedule, error)

	// Save replaces the current schedule and appends a history entry.
	// Returns ErrTooClose if the knobs are closer than the slider allows.
	Save(ctx context.Context, s *Schedule, source Source) error

	// History returns up to limit changes, newest first. limit <= 0 returns all.
	History(ctx context.Context, limit int) ([]*Change, error)

	// Close releases any resources held by the repository.
	Close() error
}
