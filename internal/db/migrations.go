package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS schedule (
			id           INTEGER PRIMARY KEY CHECK(id = 1),
			start_minute INTEGER NOT NULL CHECK(start_minute >= 0 AND start_minute < 1440),
			end_minute   INTEGER NOT NULL CHECK(end_minute >= 0 AND end_minute < 1440),
			updated_at   DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS schedule_changes (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			start_minute INTEGER NOT NULL CHECK(start_minute >= 0 AND start_minute < 1440),
			end_minute   INTEGER NOT NULL CHECK(end_minute >= 0 AND end_minute < 1440),
			source       TEXT NOT NULL CHECK(source IN ('tui', 'cli', 'suggest', 'config')),
			changed_at   DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_schedule_changes_changed ON schedule_changes(changed_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating schedule tables: %w", err)
	}

	return nil
}
