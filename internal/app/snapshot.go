package app

import (
	"time"

	"github.com/llehouerou/netwaves/internal/metadata"
	"github.com/llehouerou/netwaves/internal/playback"
	"github.com/llehouerou/netwaves/internal/playlist"
)

// Snapshot is an immutable view of the core, safe to read from any goroutine.
type Snapshot struct {
	State      playback.State
	Track      *playlist.Track
	Position   time.Duration
	Duration   time.Duration
	Mode       playlist.Mode
	Queue      []playlist.Track
	QueueIndex int
	LastError  string

	LoggedIn bool
	Profile  metadata.Profile
	// Favorite is meaningful only when FavoriteKnown is set.
	Favorite      bool
	FavoriteKnown bool
	Pending       int
}

// HasNext reports whether a next entry exists in queue order.
func (s Snapshot) HasNext() bool {
	return s.QueueIndex >= 0 && s.QueueIndex+1 < len(s.Queue)
}

// HasPrevious reports whether a previous entry exists in queue order.
func (s Snapshot) HasPrevious() bool {
	return s.QueueIndex > 0
}

func (c *Core) publish() {
	snap := &Snapshot{
		State:      c.ctrl.State(),
		Track:      c.ctrl.Track(),
		Position:   c.ctrl.Position(),
		Duration:   c.ctrl.Duration(),
		Mode:       c.ctrl.Mode(),
		Queue:      c.ctrl.QueueTracks(),
		QueueIndex: c.ctrl.QueueIndex(),
		LastError:  c.ctrl.LastError(),
		LoggedIn:   c.session.LoggedIn(),
		Profile:    c.session.Profile(),
		Pending:    c.corr.Pending(),
	}
	if snap.Track != nil {
		snap.Favorite, snap.FavoriteKnown = c.session.Favorite(snap.Track.ID)
	}
	c.snapshot.Store(snap)
}

// Snapshot returns the last published view.
func (c *Core) Snapshot() Snapshot {
	return *c.snapshot.Load()
}
