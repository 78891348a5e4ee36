package playback

import (
	"context"

	"github.com/llehouerou/netwaves/internal/artwork"
	"github.com/llehouerou/netwaves/internal/correlator"
	"github.com/llehouerou/netwaves/internal/dispatch"
	"github.com/llehouerou/netwaves/internal/errmsg"
	"github.com/llehouerou/netwaves/internal/player"
	"github.com/llehouerou/netwaves/internal/playlist"
)

// HandleEngineEvent applies an event reported by the media engine.
func (c *Controller) HandleEngineEvent(ev player.Event) {
	switch e := ev.(type) {
	case player.MediaChanged:
		c.mediaChanged(e.Track)
	case player.StateChanged:
		c.engineStateChanged(e.State)
	case player.PositionChanged:
		if c.state.IsActive() {
			c.position = c.clamp(e.Position)
			c.publishPosition()
		}
	case player.DurationChanged:
		c.duration = e.Duration
		c.position = c.clamp(c.position)
		c.publishDuration()
	case player.PlaylistEmpty:
		c.pending = false
		c.pauseOnLoad = false
		c.forgetTrack()
		c.setState(StateIdle)
	case player.Failed:
		var id int64
		if c.track != nil {
			id = c.track.ID
		}
		c.fail(id, e.Message)
	case player.Finished:
		c.finished()
	case player.ModeChanged:
		if e.Mode != c.mode {
			c.mode = e.Mode
			c.publishMode()
		}
	default:
		c.logger.Debug("unhandled engine event", "type", ev)
	}
}

func (c *Controller) mediaChanged(t playlist.Track) {
	c.pending = false
	c.queue.AppendAndFocus(t)
	c.publishQueue()

	prev := c.announced
	c.track = &t
	c.announced = &t
	c.position = 0
	if t.Duration > 0 {
		c.duration = t.Duration
	}
	c.session.SetCurrentTrack(t.ID)
	if c.pauseOnLoad {
		c.pauseOnLoad = false
		c.skipPlaying = true
		c.engine.Pause()
		c.setState(StatePaused)
	} else {
		c.setState(StatePlaying)
	}
	c.publishTrack(TrackChange{Previous: prev, Current: &t, Index: c.queue.CurrentIndex()})
	c.logger.Info("now playing", "id", t.ID, "title", t.DisplayTitle())

	c.loadCover(t)
	c.RefreshFavorite()
}

func (c *Controller) engineStateChanged(s player.State) {
	switch s {
	case player.Playing:
		if c.skipPlaying {
			c.skipPlaying = false
			return
		}
		c.setState(StatePlaying)
	case player.Paused:
		c.skipPlaying = false
		c.setState(StatePaused)
	case player.Stopped:
		// An Error stays until the next play, and a pending load reports
		// the previous track stopping first
		if c.state == StateError || c.pending {
			return
		}
		c.setState(StateIdle)
	}
}

// finished advances the queue after the active track played to its end.
func (c *Controller) finished() {
	next := c.queue.Advance(c.mode, c.rng)
	if next == nil {
		c.stopAll(false)
		return
	}
	c.publishQueue()
	c.start(*next, false)
}

// loadCover fetches the cover of t through the correlator and publishes it
// if t is still the active track once decoded.
func (c *Controller) loadCover(t playlist.Track) {
	if t.ArtURL == "" || c.fetcher == nil {
		return
	}
	id := t.ID
	c.fetcher.Fetch(t.ArtURL, func(resp correlator.Response) {
		if resp.Err != nil {
			c.logger.Debug(errmsg.Format(errmsg.OpArtworkLoad, resp.Err), "id", id)
			return
		}
		data := resp.Body
		c.work.Offload("decode cover", func(context.Context) dispatch.Apply {
			img, err := artwork.DecodeCover(data, coverWidth, coverHeight)
			return func() {
				if err != nil {
					c.logger.Debug(errmsg.Format(errmsg.OpArtworkLoad, err), "id", id)
					return
				}
				if c.track == nil || c.track.ID != id {
					return
				}
				c.publishArtwork(ArtworkChange{TrackID: id, Image: img})
			}
		})
	})
}
