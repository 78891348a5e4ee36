// Package logging builds the application logger.
//
// The terminal belongs to the TUI, so logs go to a file under the XDG state
// directory unless another writer is given.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

const defaultFile = "netwaves/netwaves.log"

// NewLogger creates a timestamped logger writing to w at the given level.
// A nil writer logs to stderr.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		lvl = parsed
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    lvl == log.DebugLevel,
		Level:           lvl,
	}), nil
}

// Component returns a child logger tagged with the component name.
func Component(l *log.Logger, name string) *log.Logger {
	return l.With("component", name)
}

// OpenFile opens the log file for appending, creating parent directories.
// An empty path uses $XDG_STATE_HOME/netwaves/netwaves.log.
func OpenFile(path string) (*os.File, error) {
	if path == "" {
		p, err := xdg.StateFile(defaultFile)
		if err != nil {
			return nil, err
		}
		path = p
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
