// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/nightshift/internal/clock"
	"github.com/javiermolinar/nightshift/internal/schedule"
)

// SQLite implements schedule.Repository using SQLite.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Get returns the current schedule.
// Returns schedule.ErrNotFound if nothing has been saved yet.
func (s *SQLite) Get(ctx context.Context) (*schedule.Schedule, error) {
	query := `SELECT start_minute, end_minute, updated_at FROM schedule WHERE id = 1`

	var (
		start, end int
		updatedAt  string
	)
	err := s.db.QueryRowContext(ctx, query).Scan(&start, &end, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, schedule.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying schedule: %w", err)
	}

	ts, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated at: %w", err)
	}

	return &schedule.Schedule{
		Start:     clock.TimeOfDay(start),
		End:       clock.TimeOfDay(end),
		UpdatedAt: ts,
	}, nil
}

// Save replaces the current schedule and records the change atomically.
// UpdatedAt is set on sch when it is zero.
func (s *SQLite) Save(ctx context.Context, sch *schedule.Schedule, source schedule.Source) error {
	if err := sch.Validate(); err != nil {
		return err
	}
	if !source.Valid() {
		return schedule.ErrInvalidSource
	}
	if sch.UpdatedAt.IsZero() {
		sch.UpdatedAt = s.now()
	}
	ts := sch.UpdatedAt.Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	upsert := `
		INSERT INTO schedule (id, start_minute, end_minute, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			start_minute = excluded.start_minute,
			end_minute   = excluded.end_minute,
			updated_at   = excluded.updated_at
	`
	if _, err := tx.ExecContext(ctx, upsert, int(sch.Start), int(sch.End), ts); err != nil {
		return fmt.Errorf("saving schedule: %w", err)
	}

	insert := `
		INSERT INTO schedule_changes (start_minute, end_minute, source, changed_at)
		VALUES (?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, insert, int(sch.Start), int(sch.End), string(source), ts); err != nil {
		return fmt.Errorf("recording change: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// History returns recorded changes, newest first.
func (s *SQLite) History(ctx context.Context, limit int) ([]*schedule.Change, error) {
	query := `
		SELECT id, start_minute, end_minute, source, changed_at
		FROM schedule_changes
		ORDER BY id DESC
	`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var changes []*schedule.Change
	for rows.Next() {
		var (
			c          schedule.Change
			start, end int
			source     string
			changedAt  string
		)
		if err := rows.Scan(&c.ID, &start, &end, &source, &changedAt); err != nil {
			return nil, fmt.Errorf("scanning change: %w", err)
		}

		c.ChangedAt, err = time.Parse(time.RFC3339, changedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing changed at: %w", err)
		}
		c.Start = clock.TimeOfDay(start)
		c.End = clock.TimeOfDay(end)
		c.Source = schedule.Source(source)

		changes = append(changes, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}

	return changes, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}
