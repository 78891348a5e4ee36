package state

import (
	"database/sql"
	"errors"
	"time"

	"github.com/llehouerou/netwaves/internal/playlist"
)

// QueueState represents the saved playing queue.
type QueueState struct {
	CurrentIndex int
	Mode         playlist.Mode
	Tracks       []playlist.Track
}

func getQueue(db *sql.DB) (*QueueState, error) {
	var currentIndex int
	var modeName string
	row := db.QueryRow(`SELECT current_index, mode FROM queue_state WHERE id = 1`)
	err := row.Scan(&currentIndex, &modeName)
	if errors.Is(err, sql.ErrNoRows) {
		return &QueueState{CurrentIndex: -1, Mode: playlist.ModeSequential}, nil
	}
	if err != nil {
		return nil, err
	}

	mode, err := playlist.ParseMode(modeName)
	if err != nil {
		mode = playlist.ModeSequential
	}

	artists, err := getArtists(db)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT position, track_id, title, album, art_url, duration_ms
		FROM queue_tracks
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []playlist.Track
	for rows.Next() {
		var t playlist.Track
		var position int
		var album, artURL sql.NullString
		var durationMS int64

		err := rows.Scan(&position, &t.ID, &t.Title, &album, &artURL, &durationMS)
		if err != nil {
			return nil, err
		}

		t.Album = nullStringValue(album)
		t.ArtURL = nullStringValue(artURL)
		t.Duration = time.Duration(durationMS) * time.Millisecond
		t.Artists = artists[position]
		tracks = append(tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if currentIndex < -1 || currentIndex >= len(tracks) {
		currentIndex = -1
	}

	return &QueueState{
		CurrentIndex: currentIndex,
		Mode:         mode,
		Tracks:       tracks,
	}, nil
}

func getArtists(db *sql.DB) (map[int][]string, error) {
	rows, err := db.Query(`SELECT position, name FROM queue_track_artists ORDER BY position, ord`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artists := make(map[int][]string)
	for rows.Next() {
		var position int
		var name string
		if err := rows.Scan(&position, &name); err != nil {
			return nil, err
		}
		artists[position] = append(artists[position], name)
	}
	return artists, rows.Err()
}

func saveQueue(sqlDB *sql.DB, state QueueState) error {
	return withTx(sqlDB, func(tx *sql.Tx) error {
		// Clear existing queue
		if _, err := tx.Exec(`DELETE FROM queue_track_artists`); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM queue_tracks`); err != nil {
			return err
		}

		_, err := tx.Exec(`
			INSERT INTO queue_state (id, current_index, mode, saved_at)
			VALUES (1, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				current_index = excluded.current_index,
				mode = excluded.mode,
				saved_at = excluded.saved_at
		`, state.CurrentIndex, state.Mode.String(), time.Now().Unix())
		if err != nil {
			return err
		}

		trackStmt, err := tx.Prepare(`
			INSERT INTO queue_tracks (position, track_id, title, album, art_url, duration_ms)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer trackStmt.Close()

		artistStmt, err := tx.Prepare(`
			INSERT INTO queue_track_artists (position, ord, name) VALUES (?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer artistStmt.Close()

		for i, t := range state.Tracks {
			_, err = trackStmt.Exec(i, t.ID, t.Title, nullString(t.Album), nullString(t.ArtURL),
				t.Duration.Milliseconds())
			if err != nil {
				return err
			}
			for j, name := range t.Artists {
				if _, err := artistStmt.Exec(i, j, name); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
