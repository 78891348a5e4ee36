//go:build linux

package mpris

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/netwaves/internal/app"
	"github.com/llehouerou/netwaves/internal/playback"
	"github.com/llehouerou/netwaves/internal/playlist"
)

// Adapter connects the core to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
	logger *log.Logger
}

// New creates and starts a new MPRIS adapter.
func New(remote Remote, logger *log.Logger) (*Adapter, error) {
	a := &Adapter{
		server: server.NewServer("netwaves", &rootAdapter{}, &playerAdapter{remote: remote}),
		logger: logger.With("component", "mpris"),
	}

	go func() {
		if err := a.server.Listen(); err != nil {
			a.logger.Warn("mpris server stopped", "err", err)
		}
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error           { return nil }
func (r *rootAdapter) Quit() error            { return nil }
func (r *rootAdapter) CanQuit() (bool, error) { return false, nil }

func (r *rootAdapter) CanRaise() (bool, error) { return false, nil }

func (r *rootAdapter) HasTrackList() (bool, error) { return false, nil }

func (r *rootAdapter) Identity() (string, error) { return "Netwaves", nil }

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and optional interfaces.
type playerAdapter struct {
	remote Remote
}

func (p *playerAdapter) Next() error {
	p.remote.Send(app.Next{})
	return nil
}

func (p *playerAdapter) Previous() error {
	p.remote.Send(app.Previous{})
	return nil
}

func (p *playerAdapter) Pause() error {
	if p.remote.Snapshot().State == playback.StatePlaying {
		p.remote.Send(app.TogglePlayPause{})
	}
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.remote.Send(app.TogglePlayPause{})
	return nil
}

// Stop pauses; the core has no stopped state a listener could resume from.
func (p *playerAdapter) Stop() error {
	return p.Pause()
}

func (p *playerAdapter) Play() error {
	if p.remote.Snapshot().State != playback.StatePlaying {
		p.remote.Send(app.TogglePlayPause{})
	}
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	pos := p.remote.Snapshot().Position + time.Duration(offset)*time.Microsecond
	p.remote.Send(app.Seek{Seconds: max(pos, 0).Seconds()})
	return nil
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	pos := time.Duration(position) * time.Microsecond
	p.remote.Send(app.Seek{Seconds: pos.Seconds()})
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.remote.Snapshot().State {
	case playback.StatePlaying:
		return types.PlaybackStatusPlaying, nil
	case playback.StatePaused:
		return types.PlaybackStatusPaused, nil
	default:
		return types.PlaybackStatusStopped, nil
	}
}

func (p *playerAdapter) Rate() (float64, error)  { return 1.0, nil }
func (p *playerAdapter) SetRate(_ float64) error { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	snap := p.remote.Snapshot()
	track := snap.Track
	if track == nil {
		return types.Metadata{}, nil
	}

	length := track.Duration
	if snap.Duration > 0 {
		length = snap.Duration
	}
	return types.Metadata{
		TrackId: dbus.ObjectPath(trackObjectPath(track.ID)),
		Length:  types.Microseconds(length.Microseconds()),
		Title:   track.Title,
		Artist:  track.Artists,
		Album:   track.Album,
		ArtUrl:  track.ArtURL,
	}, nil
}

func (p *playerAdapter) Volume() (float64, error)  { return 1.0, nil }
func (p *playerAdapter) SetVolume(_ float64) error { return nil }

func (p *playerAdapter) Position() (int64, error) {
	return p.remote.Snapshot().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }
func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) CanGoNext() (bool, error) {
	snap := p.remote.Snapshot()
	return snap.HasNext() || (len(snap.Queue) > 0 && snap.Mode != playlist.ModeSequential), nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	snap := p.remote.Snapshot()
	return snap.HasPrevious() || (len(snap.Queue) > 0 && snap.Mode != playlist.ModeSequential), nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return len(p.remote.Snapshot().Queue) > 0, nil
}

func (p *playerAdapter) CanPause() (bool, error)   { return true, nil }
func (p *playerAdapter) CanSeek() (bool, error)    { return true, nil }
func (p *playerAdapter) CanControl() (bool, error) { return true, nil }

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	return loopStatus(p.remote.Snapshot().Mode), nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	p.remote.Send(app.SetMode{Mode: modeForLoop(status)})
	return nil
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.remote.Snapshot().Mode == playlist.ModeShuffle, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	p.remote.Send(app.SetMode{Mode: modeForShuffle(p.remote.Snapshot().Mode, shuffle)})
	return nil
}

func loopStatus(m playlist.Mode) types.LoopStatus {
	switch m {
	case playlist.ModeSingleLoop:
		return types.LoopStatusTrack
	case playlist.ModeLoopAll:
		return types.LoopStatusPlaylist
	default:
		return types.LoopStatusNone
	}
}

func modeForLoop(status types.LoopStatus) playlist.Mode {
	switch status {
	case types.LoopStatusTrack:
		return playlist.ModeSingleLoop
	case types.LoopStatusPlaylist:
		return playlist.ModeLoopAll
	default:
		return playlist.ModeSequential
	}
}
