// Package playback drives the media engine from the playing queue and
// publishes what happens as events.
package playback

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/netwaves/internal/dispatch"
	"github.com/llehouerou/netwaves/internal/errmsg"
	"github.com/llehouerou/netwaves/internal/metadata"
	"github.com/llehouerou/netwaves/internal/player"
	"github.com/llehouerou/netwaves/internal/playlist"
	"github.com/llehouerou/netwaves/internal/session"
)

var (
	ErrTrackUnavailable = errors.New("track unavailable")
	ErrEmptyPlaylist    = errors.New("playlist is empty")
	ErrLoginRequired    = errors.New("login required")
	ErrNothingToPlay    = errors.New("nothing to play")
	ErrNoNextTrack      = errors.New("no next track")
	ErrNoPreviousTrack  = errors.New("no previous track")
	ErrNoTrack          = errors.New("no track playing")
)

// Cover art is decoded to fit this box.
const (
	coverWidth  = 300
	coverHeight = 300
)

// Deps are the collaborators of a Controller.
type Deps struct {
	Engine  player.Engine
	Client  metadata.Client
	Session *session.State
	Work    dispatch.Offloader
	Fetcher dispatch.Fetcher
	Rand    playlist.Rand
	Logger  *log.Logger
}

// Controller is the playback state machine. Every method except Subscribe
// must be called from the control goroutine.
type Controller struct {
	engine  player.Engine
	client  metadata.Client
	session *session.State
	work    dispatch.Offloader
	fetcher dispatch.Fetcher
	rng     playlist.Rand
	logger  *log.Logger

	queue     *playlist.PlayingQueue
	state     State
	track     *playlist.Track
	announced *playlist.Track
	position  time.Duration
	duration  time.Duration
	mode      playlist.Mode
	lastError string

	// pending is set between engine.Play and the engine's answer, while
	// the engine reports the previous track stopping.
	pending bool
	// pauseOnLoad holds a pause asked for while pending. skipPlaying then
	// drops the load's own Playing report that follows MediaChanged.
	pauseOnLoad bool
	skipPlaying bool

	subsMu sync.Mutex
	subs   []*Subscription
}

// New creates an idle controller with an empty queue in Sequential mode.
func New(d Deps) *Controller {
	logger := d.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		engine:  d.Engine,
		client:  d.Client,
		session: d.Session,
		work:    d.Work,
		fetcher: d.Fetcher,
		rng:     d.Rand,
		logger:  logger.With("component", "playback"),
		queue:   playlist.NewQueue(),
		state:   StateIdle,
		mode:    playlist.ModeSequential,
	}
}

// Subscribe returns a subscription for playback events. Safe from any goroutine.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	c.subs = append(c.subs, sub)
	return sub
}

// Close signals Done to every subscriber.
func (c *Controller) Close() {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
}

func (c *Controller) State() State { return c.state }

// Track returns a copy of the active track, or nil.
func (c *Controller) Track() *playlist.Track {
	if c.track == nil {
		return nil
	}
	t := *c.track
	return &t
}

func (c *Controller) Position() time.Duration { return c.position }

func (c *Controller) Duration() time.Duration { return c.duration }

func (c *Controller) Mode() playlist.Mode { return c.mode }

// LastError returns the message of the last engine failure.
func (c *Controller) LastError() string { return c.lastError }

func (c *Controller) QueueTracks() []playlist.Track { return c.queue.Tracks() }

func (c *Controller) QueueIndex() int { return c.queue.CurrentIndex() }

// start sends t to the engine. With focus the queue cursor is moved onto
// t first, appending it when absent.
func (c *Controller) start(t playlist.Track, focus bool) {
	if focus {
		c.queue.AppendAndFocus(t)
		c.publishQueue()
	}
	if err := c.engine.Play(t); err != nil {
		c.fail(t.ID, err.Error())
		return
	}
	c.track = &t
	c.position = 0
	c.duration = t.Duration
	c.pending = true
	c.pauseOnLoad = false
	c.skipPlaying = false
	c.setState(StatePlaying)
	c.logger.Debug("track started", "id", t.ID, "title", t.DisplayTitle())
}

// stopAll releases the engine and forgets the active track. empty is set
// when the queue has nothing left in it.
func (c *Controller) stopAll(empty bool) {
	if empty {
		c.engine.Clear()
	} else {
		c.engine.Stop()
	}
	c.pending = false
	c.pauseOnLoad = false
	c.forgetTrack()
	c.setState(StateIdle)
}

func (c *Controller) forgetTrack() {
	c.track = nil
	c.position = 0
	c.duration = 0
	c.session.SetCurrentTrack(0)
	if c.announced != nil {
		prev := c.announced
		c.announced = nil
		c.publishTrack(TrackChange{Previous: prev, Index: -1})
	}
}

func (c *Controller) fail(trackID int64, msg string) {
	c.pending = false
	c.pauseOnLoad = false
	c.lastError = msg
	c.setState(StateError)
	c.logger.Warn("playback failed", "id", trackID, "err", msg)
	c.publishError(ErrorEvent{
		Operation: errmsg.OpPlaybackStart,
		TrackID:   trackID,
		Message:   msg,
	})
}

func (c *Controller) setState(s State) {
	if c.state == s {
		return
	}
	prev := c.state
	c.state = s
	c.logger.Debug("state changed", "from", prev, "to", s)
	c.publishState(StateChange{Previous: prev, Current: s})
}

func (c *Controller) clamp(pos time.Duration) time.Duration {
	if pos < 0 {
		return 0
	}
	// Unknown duration leaves the upper bound open
	if c.duration > 0 && pos > c.duration {
		return c.duration
	}
	return pos
}

func (c *Controller) status(msg string, err error) {
	if err != nil {
		c.logger.Info("command failed", "msg", msg, "err", err)
	}
	c.publishStatus(StatusEvent{Message: msg, Err: err})
}

func (c *Controller) each(fn func(*Subscription)) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for _, sub := range c.subs {
		fn(sub)
	}
}

func (c *Controller) publishState(e StateChange) {
	c.each(func(s *Subscription) { send(s.stateCh, e) })
}

func (c *Controller) publishTrack(e TrackChange) {
	c.each(func(s *Subscription) { send(s.trackCh, e) })
}

func (c *Controller) publishPosition() {
	e := PositionChange{Position: c.position, Duration: c.duration}
	c.each(func(s *Subscription) { send(s.positionCh, e) })
}

func (c *Controller) publishDuration() {
	e := DurationChange{Duration: c.duration}
	c.each(func(s *Subscription) { send(s.durationCh, e) })
}

func (c *Controller) publishQueue() {
	e := QueueChange{Tracks: c.queue.Tracks(), Index: c.queue.CurrentIndex()}
	c.each(func(s *Subscription) { sendLatest(s.queueCh, e) })
}

func (c *Controller) publishMode() {
	e := ModeChange{Mode: c.mode}
	c.each(func(s *Subscription) { send(s.modeCh, e) })
}

func (c *Controller) publishFavorite(e FavoriteChange) {
	c.each(func(s *Subscription) { send(s.favoriteCh, e) })
}

func (c *Controller) publishArtwork(e ArtworkChange) {
	c.each(func(s *Subscription) { send(s.artworkCh, e) })
}

func (c *Controller) publishStatus(e StatusEvent) {
	c.each(func(s *Subscription) { send(s.statusCh, e) })
}

func (c *Controller) publishError(e ErrorEvent) {
	c.each(func(s *Subscription) { send(s.errorCh, e) })
}
