package playback

import (
	"image"
	"time"

	"github.com/llehouerou/netwaves/internal/errmsg"
	"github.com/llehouerou/netwaves/internal/playlist"
)

// StateChange is emitted when playback state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when the engine confirms a new track, and with a
// nil Current when nothing is playing anymore.
//
// The app handles track side effects (notifications, window title, queue
// persistence) in response to this event.
type TrackChange struct {
	Previous *playlist.Track
	Current  *playlist.Track
	Index    int
}

// QueueChange is emitted when the queue contents or cursor change.
type QueueChange struct {
	Tracks []playlist.Track
	Index  int
}

// ModeChange is emitted when the playback mode changes.
type ModeChange struct {
	Mode playlist.Mode
}

// PositionChange is emitted on engine position updates and seeks.
type PositionChange struct {
	Position time.Duration
	Duration time.Duration
}

// DurationChange is emitted when the track length becomes known.
type DurationChange struct {
	Duration time.Duration
}

// FavoriteChange is emitted when the favorite status of the current track is known.
type FavoriteChange struct {
	TrackID  int64
	Favorite bool
}

// ArtworkChange carries the decoded cover of the current track.
type ArtworkChange struct {
	TrackID int64
	Image   image.Image
}

// StatusEvent is a transient message for the status line.
// Err is set when the message reports a failed command.
type StatusEvent struct {
	Message string
	Err     error
}

// ErrorEvent is emitted when the engine fails.
type ErrorEvent struct {
	Operation errmsg.Op
	TrackID   int64
	Message   string
}
