package database

import (
	"fmt"
	"strings"

	"ssv/internal/log"
)

// Migration is one schema change, applied once in ID order.
type Migration struct {
	ID          int
	Description string
	SQL         string
}

var migrations = []Migration{
	{
		ID:          1,
		Description: "Sector snapshot tables",
		SQL: `
CREATE TABLE IF NOT EXISTS sectors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	title TEXT NOT NULL DEFAULT '',
	saved_at DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS worlds (
	sector_id INTEGER NOT NULL REFERENCES sectors(id),
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	hex_col INTEGER NOT NULL,
	hex_row INTEGER NOT NULL,
	starport TEXT NOT NULL DEFAULT '',
	uwp TEXT NOT NULL DEFAULT '',
	base TEXT NOT NULL DEFAULT '',
	zone INTEGER NOT NULL DEFAULT 0,
	allegiance TEXT NOT NULL DEFAULT '',
	gas_giants INTEGER NOT NULL DEFAULT 0,
	notes TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (sector_id, position)
);
CREATE TABLE IF NOT EXISTS routes (
	sector_id INTEGER NOT NULL REFERENCES sectors(id),
	position INTEGER NOT NULL,
	start_x INTEGER NOT NULL,
	start_y INTEGER NOT NULL,
	end_x INTEGER NOT NULL,
	end_y INTEGER NOT NULL,
	PRIMARY KEY (sector_id, position)
);
CREATE TABLE IF NOT EXISTS borders (
	sector_id INTEGER NOT NULL REFERENCES sectors(id),
	position INTEGER NOT NULL,
	kind TEXT NOT NULL,
	x1 INTEGER NOT NULL,
	y1 INTEGER NOT NULL,
	x2 INTEGER NOT NULL,
	y2 INTEGER NOT NULL,
	PRIMARY KEY (sector_id, kind, position)
);`,
	},
	{
		ID:          2,
		Description: "Overlay state on sectors",
		SQL: `
ALTER TABLE sectors ADD COLUMN show_allegiance INTEGER NOT NULL DEFAULT 1;
ALTER TABLE sectors ADD COLUMN show_notes INTEGER NOT NULL DEFAULT 1;
ALTER TABLE sectors ADD COLUMN show_uwp INTEGER NOT NULL DEFAULT 1;`,
	},
}

// runMigrations applies every migration newer than the recorded version.
func (s *Store) runMigrations() error {
	if _, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	current, err := s.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, m := range migrations {
		if m.ID <= current {
			continue
		}
		log.Debug("Applying migration", "id", m.ID, "description", m.Description)
		if err := s.applyMigration(m); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", m.ID, err)
		}
	}
	return nil
}

// SchemaVersion returns the newest applied migration.
func (s *Store) SchemaVersion() (int, error) {
	var version int
	err := s.db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_version;`).Scan(&version)
	return version, err
}

func (s *Store) applyMigration(m Migration) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range strings.Split(m.SQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute migration statement: %w", err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO schema_version (version) VALUES (?);`, m.ID); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return tx.Commit()
}
