package db

import (
	"database/sql"
	"fmt"
	"strings"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		owner_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		n_full INTEGER NOT NULL CHECK (n_full >= 0),
		n_completed INTEGER NOT NULL DEFAULT 0 CHECK (n_completed >= 0 AND n_completed <= n_full),
		deadline TEXT NOT NULL,
		priority INTEGER NOT NULL CHECK (priority >= 0 AND priority <= 100),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_goals_owner_priority
		ON goals (owner_id, priority DESC, created_at)`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
