// Package state persists the playing queue and playback mode between runs.
package state

import (
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "netwaves"
	dbFileName   = "netwaves.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	logger    *log.Logger
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *QueueState
}

// Open opens the state database at path, or at the default location under
// the XDG data directory when path is empty.
func Open(path string, logger *log.Logger) (*Manager, error) {
	if path == "" {
		var err error
		if path, err = getDBPath(); err != nil {
			return nil, err
		}
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	return openDSN(path, logger)
}

func openDSN(dsn string, logger *log.Logger) (*Manager, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// A single connection keeps :memory: databases shared
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{db: db, logger: logger.With("component", "state")}, nil
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	// Flush pending state
	if pending != nil {
		m.flush(*pending)
	}

	return m.db.Close()
}

// GetQueue returns the saved queue. A fresh database yields an empty queue.
func (m *Manager) GetQueue() (*QueueState, error) {
	return getQueue(m.db)
}

// SaveQueue schedules the queue to be written. Bursts of saves are
// collapsed into one write.
func (m *Manager) SaveQueue(state QueueState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &state

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			m.flush(*pending)
		}
	})
}

func (m *Manager) flush(state QueueState) {
	if err := saveQueue(m.db, state); err != nil {
		m.logger.Error("save queue failed", "err", err)
		return
	}
	m.logger.Debug("queue saved", "tracks", len(state.Tracks), "index", state.CurrentIndex)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
