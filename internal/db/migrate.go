package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent, so
// re-running the full list against an existing database is safe.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE statements re-run on every start.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS module_cache (
		module_code TEXT NOT NULL,
		acad_year   TEXT NOT NULL,
		payload     BLOB NOT NULL,
		fetched_at  TEXT NOT NULL,
		PRIMARY KEY (module_code, acad_year)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_module_cache_fetched ON module_cache(fetched_at)`,
}
