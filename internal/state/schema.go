package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS queue_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			current_index INTEGER NOT NULL DEFAULT -1,
			mode TEXT NOT NULL DEFAULT 'sequential',
			saved_at INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS queue_tracks (
			position INTEGER PRIMARY KEY,
			track_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			album TEXT,
			art_url TEXT,
			duration_ms INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS queue_track_artists (
			position INTEGER NOT NULL REFERENCES queue_tracks(position) ON DELETE CASCADE,
			ord INTEGER NOT NULL,
			name TEXT NOT NULL,
			PRIMARY KEY (position, ord)
		);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
