package app

import (
	"image"
	"time"

	"github.com/llehouerou/netwaves/internal/correlator"
	"github.com/llehouerou/netwaves/internal/dispatch"
	"github.com/llehouerou/netwaves/internal/metadata"
	"github.com/llehouerou/netwaves/internal/player"
	"github.com/llehouerou/netwaves/internal/playlist"
)

// Event is something the control loop reacts to.
type Event interface {
	appEvent()
}

// UserCommand is a command from the UI or the desktop integration.
type UserCommand struct {
	Command Command
}

// EngineEvent wraps an event reported by the media engine.
type EngineEvent struct {
	Event player.Event
}

// NetworkEvent is a completed fetch, routed through the correlator.
type NetworkEvent struct {
	Response correlator.Response
}

// WorkDone carries the result of offloaded work.
type WorkDone struct {
	Apply dispatch.Apply
}

// ExpiryTick expires overdue network requests.
type ExpiryTick struct {
	Now time.Time
}

func (UserCommand) appEvent()  {}
func (EngineEvent) appEvent()  {}
func (NetworkEvent) appEvent() {}
func (WorkDone) appEvent()     {}
func (ExpiryTick) appEvent()   {}

// Command is a request to change what is playing or shown.
type Command interface {
	command()
}

type (
	Play struct{ TrackID int64 }
	// PlayTracks replaces the queue with Tracks and plays the first one.
	PlayTracks      struct{ Tracks []playlist.Track }
	PlayPlaylist    struct{ PlaylistID int64 }
	OpenPlaylist    struct{ PlaylistID int64 }
	TogglePlayPause struct{}
	Next            struct{}
	Previous        struct{}
	Seek            struct{ Seconds float64 }
	RemoveFromList  struct{ TrackID int64 }
	SetMode         struct{ Mode playlist.Mode }
	CycleMode       struct{}
	SetFavorite     struct{ On bool }
	ToggleFavorite  struct{}
	Search          struct{ Text string }
	Login           struct{ Phone, Password string }
	Logout          struct{}
)

func (Play) command()            {}
func (PlayTracks) command()      {}
func (PlayPlaylist) command()    {}
func (OpenPlaylist) command()    {}
func (TogglePlayPause) command() {}
func (Next) command()            {}
func (Previous) command()        {}
func (Seek) command()            {}
func (RemoveFromList) command()  {}
func (SetMode) command()         {}
func (CycleMode) command()       {}
func (SetFavorite) command()     {}
func (ToggleFavorite) command()  {}
func (Search) command()          {}
func (Login) command()           {}
func (Logout) command()          {}

// UIEvent is delivered to the user interface.
type UIEvent interface {
	uiEvent()
}

type (
	SearchResults struct {
		Text   string
		Tracks []playlist.Track
	}
	PlaylistOpened struct{ Detail metadata.PlaylistDetail }
	PlaylistListed struct {
		Playlist metadata.PlaylistSummary
		Mine     bool
	}
	AvatarLoaded struct{ Image image.Image }
	CoverLoaded  struct {
		TrackID int64
		Image   image.Image
	}
	StatusLine struct{ Message string }
	LoggedIn   struct{ Profile metadata.Profile }
	LoggedOut  struct{}
)

func (SearchResults) uiEvent()  {}
func (PlaylistOpened) uiEvent() {}
func (PlaylistListed) uiEvent() {}
func (AvatarLoaded) uiEvent()   {}
func (CoverLoaded) uiEvent()    {}
func (StatusLine) uiEvent()     {}
func (LoggedIn) uiEvent()       {}
func (LoggedOut) uiEvent()      {}
