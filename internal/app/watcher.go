package app

import (
	"github.com/llehouerou/netwaves/internal/notify"
	"github.com/llehouerou/netwaves/internal/playback"
	"github.com/llehouerou/netwaves/internal/playlist"
	"github.com/llehouerou/netwaves/internal/state"
)

// watcher runs the side effects of playback events off the control loop:
// desktop notifications, queue persistence and UI forwarding.
type watcher struct {
	c *Core

	queue    []playlist.Track
	index    int
	mode     playlist.Mode
	restored bool

	track    *playlist.Track
	notifyID uint32
}

func (c *Core) watch(sub *playback.Subscription, mode playlist.Mode) {
	defer c.wg.Done()
	w := &watcher{c: c, index: -1, mode: mode}
	for {
		select {
		case <-sub.Done:
			return
		case e := <-sub.TrackChanged:
			w.trackChanged(e)
		case e := <-sub.QueueChanged:
			w.queue, w.index = e.Tracks, e.Index
			w.save()
		case e := <-sub.ModeChanged:
			w.modeChanged(e.Mode)
		case e := <-sub.ArtworkChanged:
			w.artworkChanged(e)
		case e := <-sub.Status:
			c.status(e.Message)
		case e := <-sub.Error:
			c.status(e.Message)
			w.send(notify.PlayerError(e.Message), false)
		case <-sub.StateChanged:
		case <-sub.PositionChanged:
		case <-sub.DurationChanged:
		case <-sub.FavoriteChanged:
		}
	}
}

func (w *watcher) trackChanged(e playback.TrackChange) {
	w.track = e.Current
	if e.Current == nil {
		return
	}
	w.send(notify.NowPlaying(*e.Current, ""), true)
}

func (w *watcher) modeChanged(m playlist.Mode) {
	changed := m != w.mode
	w.mode = m
	w.save()
	// The first mode event is the restored one
	if changed && w.restored {
		w.send(notify.ModeChanged(m), false)
	}
	w.restored = true
}

func (w *watcher) artworkChanged(e playback.ArtworkChange) {
	w.c.toUI(CoverLoaded{TrackID: e.TrackID, Image: e.Image})
	if w.c.covers == nil || w.track == nil || w.track.ID != e.TrackID {
		return
	}
	path, err := w.c.covers.Write(e.TrackID, e.Image)
	if err != nil {
		w.c.logger.Debug("cover cache write failed", "err", err)
		return
	}
	w.send(notify.NowPlaying(*w.track, path), true)
}

// send shows n. Now-playing notifications replace each other.
func (w *watcher) send(n notify.Notification, nowPlaying bool) {
	if nowPlaying {
		n.ReplacesID = w.notifyID
	}
	id, err := w.c.notifier.Notify(n)
	if err != nil {
		w.c.logger.Debug("notification failed", "err", err)
		return
	}
	if nowPlaying {
		w.notifyID = id
	}
}

func (w *watcher) save() {
	w.c.store.SaveQueue(state.QueueState{
		CurrentIndex: w.index,
		Mode:         w.mode,
		Tracks:       w.queue,
	})
}
