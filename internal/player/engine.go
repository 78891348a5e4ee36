// Package player is the media engine: it streams one track at a time and
// reports what happens to it as events.
package player

import (
	"errors"
	"time"

	"github.com/llehouerou/netwaves/internal/playlist"
)

// ErrClosed is returned by commands issued after Close.
var ErrClosed = errors.New("player closed")

// Engine is the media engine contract used by the playback controller.
//
// Commands never block on I/O; their outcome arrives on Events.
type Engine interface {
	// Play stops the current track and starts loading track.
	Play(track playlist.Track) error
	Pause()
	Resume()
	// Stop stops playback and releases the loaded media.
	Stop()
	// Clear stops playback because nothing is left to play.
	Clear()
	// SeekTo moves to an absolute position in the current track.
	SeekTo(pos time.Duration)
	SetMode(mode playlist.Mode)
	HasMedia() bool
	Events() <-chan Event
	Close() error
}

// Event is something that happened in the engine.
type Event interface {
	engineEvent()
}

// MediaChanged is sent once a track is loaded and starts playing.
type MediaChanged struct {
	Track playlist.Track
}

// StateChanged is sent on every engine state transition.
type StateChanged struct {
	State State
}

// PositionChanged is sent periodically while playing and after a seek.
type PositionChanged struct {
	Position time.Duration
}

// DurationChanged is sent when the decoded length of the track is known.
type DurationChanged struct {
	Duration time.Duration
}

// Finished is sent when the track played to its end.
type Finished struct{}

// PlaylistEmpty is sent when the engine was cleared.
type PlaylistEmpty struct{}

// ModeChanged echoes a playback mode change.
type ModeChanged struct {
	Mode playlist.Mode
}

// Failed is sent when a track cannot be loaded or decoded.
type Failed struct {
	Message string
}

func (MediaChanged) engineEvent()    {}
func (StateChanged) engineEvent()    {}
func (PositionChanged) engineEvent() {}
func (DurationChanged) engineEvent() {}
func (Finished) engineEvent()        {}
func (PlaylistEmpty) engineEvent()   {}
func (ModeChanged) engineEvent()     {}
func (Failed) engineEvent()          {}
