package playback

import (
	"context"
	"time"

	"github.com/llehouerou/netwaves/internal/dispatch"
	"github.com/llehouerou/netwaves/internal/errmsg"
	"github.com/llehouerou/netwaves/internal/metadata"
	"github.com/llehouerou/netwaves/internal/playlist"
)

// Play looks the track up and plays it, appending it to the queue when it
// is not queued yet. An unknown track leaves everything as it was.
func (c *Controller) Play(trackID int64) {
	c.work.Offload("song detail", func(ctx context.Context) dispatch.Apply {
		tracks, err := c.client.SongDetail(ctx, trackID)
		return func() {
			if err != nil {
				c.status(errmsg.Format(errmsg.OpTrackLookup, err), err)
				return
			}
			if len(tracks) == 0 {
				c.status(errmsg.Format(errmsg.OpTrackLookup, ErrTrackUnavailable), ErrTrackUnavailable)
				return
			}
			c.start(tracks[0], true)
		}
	})
}

// PlayTrack plays a track that is already known, without a lookup.
func (c *Controller) PlayTrack(t playlist.Track) {
	c.start(t, true)
}

// PlayPlaylist replaces the queue with the playlist and plays its first
// track. An empty playlist leaves the queue untouched.
func (c *Controller) PlayPlaylist(playlistID int64) {
	c.work.Offload("playlist detail", func(ctx context.Context) dispatch.Apply {
		detail, err := c.client.PlaylistDetail(ctx, playlistID)
		return func() {
			if err != nil {
				c.status(errmsg.Format(errmsg.OpPlaylistLoad, err), err)
				return
			}
			if len(detail.Tracks) == 0 {
				c.status(errmsg.FormatWith(errmsg.OpPlaylistLoad, detail.Name, ErrEmptyPlaylist), ErrEmptyPlaylist)
				return
			}
			c.ReplaceQueue(detail.Tracks...)
		}
	})
}

// ReplaceQueue replaces the queue and plays from its first entry. With no
// tracks the engine is cleared and the controller goes Idle.
func (c *Controller) ReplaceQueue(tracks ...playlist.Track) {
	first := c.queue.Replace(tracks...)
	c.publishQueue()
	if first == nil {
		c.stopAll(true)
		return
	}
	c.start(*first, false)
}

// TogglePlayPause pauses while playing. Otherwise it resumes the loaded
// media, or starts the track under the cursor when nothing is loaded.
// While a track is loading the toggle is held and applied once it starts.
func (c *Controller) TogglePlayPause() {
	switch {
	case c.pending:
		c.pauseOnLoad = !c.pauseOnLoad
		if c.pauseOnLoad {
			c.setState(StatePaused)
		} else {
			c.setState(StatePlaying)
		}
	case c.state == StatePlaying:
		c.engine.Pause()
		c.setState(StatePaused)
	case c.engine.HasMedia():
		c.engine.Resume()
		c.setState(StatePlaying)
	case c.queue.Current() != nil:
		c.start(*c.queue.Current(), false)
	default:
		c.status("Nothing to play", ErrNothingToPlay)
	}
}

// Next plays the following track according to the mode.
func (c *Controller) Next() {
	c.step(1, "No next track", ErrNoNextTrack)
}

// Previous plays the preceding track according to the mode.
func (c *Controller) Previous() {
	c.step(-1, "No previous track", ErrNoPreviousTrack)
}

func (c *Controller) step(delta int, msg string, none error) {
	t := c.queue.Step(c.mode, delta, c.rng)
	if t == nil {
		c.status(msg, none)
		return
	}
	c.publishQueue()
	c.start(*t, false)
}

// Seek moves the engine to seconds into the track. It is forwarded in
// every state.
func (c *Controller) Seek(seconds float64) {
	pos := time.Duration(seconds * float64(time.Second))
	c.engine.SeekTo(pos)
	if c.state.IsActive() {
		c.position = c.clamp(pos)
		c.publishPosition()
	}
}

// RemoveFromList removes the track from the queue. Removing the active
// track moves playback to the entry that took its place, or stops when
// there is none.
func (c *Controller) RemoveFromList(trackID int64) error {
	cur := c.queue.Current()
	active := cur != nil && cur.ID == trackID &&
		c.track != nil && c.track.ID == trackID
	if !c.queue.Remove(trackID) {
		return playlist.ErrNotFound
	}
	c.publishQueue()
	if !active {
		return nil
	}

	next := c.queue.Current()
	if next == nil {
		c.stopAll(c.queue.IsEmpty())
		return nil
	}
	c.start(*next, false)
	return nil
}

// SetMode changes the playback mode.
func (c *Controller) SetMode(mode playlist.Mode) {
	c.mode = mode
	c.publishMode()
	c.engine.SetMode(mode)
}

// CycleMode switches to the next playback mode.
func (c *Controller) CycleMode() {
	c.SetMode(c.mode.Next())
}

// Restore loads a persisted queue without starting playback.
func (c *Controller) Restore(tracks []playlist.Track, index int, mode playlist.Mode) {
	c.queue.Restore(tracks, index)
	c.mode = mode
	c.engine.SetMode(mode)
	c.publishQueue()
	c.publishMode()
}

// SetFavorite adds the active track to the user's favorites, or removes it.
func (c *Controller) SetFavorite(on bool) error {
	if !c.session.LoggedIn() {
		return ErrLoginRequired
	}
	if c.track == nil {
		return ErrNoTrack
	}

	id := c.track.ID
	action := metadata.FavoriteDel
	if on {
		action = metadata.FavoriteAdd
	}
	c.work.Offload("set favorite", func(ctx context.Context) dispatch.Apply {
		err := c.client.SetFavorite(ctx, id, action)
		return func() {
			if err != nil {
				c.status(errmsg.Format(errmsg.OpFavoriteToggle, err), err)
				return
			}
			c.session.SetFavorite(id, on)
			c.publishFavorite(FavoriteChange{TrackID: id, Favorite: on})
		}
	})
	return nil
}

// ToggleFavorite flips the favorite status of the active track.
func (c *Controller) ToggleFavorite() error {
	if c.track == nil {
		return c.SetFavorite(true)
	}
	fav, _ := c.session.Favorite(c.track.ID)
	return c.SetFavorite(!fav)
}

// RefreshFavorite asks whether the active track is a favorite. It does
// nothing when logged out.
func (c *Controller) RefreshFavorite() {
	if !c.session.LoggedIn() || c.track == nil {
		return
	}
	id := c.track.ID
	c.work.Offload("is favorite", func(ctx context.Context) dispatch.Apply {
		fav, err := c.client.IsFavorite(ctx, id)
		return func() {
			if err != nil {
				c.logger.Warn(errmsg.Format(errmsg.OpFavoriteCheck, err), "id", id)
				return
			}
			if !c.session.LoggedIn() {
				return
			}
			c.session.SetFavorite(id, fav)
			if c.track != nil && c.track.ID == id {
				c.publishFavorite(FavoriteChange{TrackID: id, Favorite: fav})
			}
		}
	})
}
