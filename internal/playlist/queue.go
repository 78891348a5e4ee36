package playlist

import "errors"

// ErrNotFound is returned when a track ID is not in the queue.
var ErrNotFound = errors.New("track not in playlist")

// PlayingQueue wraps a Playlist with a cursor on the current track.
type PlayingQueue struct {
	playlist     *Playlist
	currentIndex int // -1 if none
}

// NewQueue creates a new empty playing queue.
func NewQueue() *PlayingQueue {
	return &PlayingQueue{
		playlist:     NewPlaylist(),
		currentIndex: -1,
	}
}

// Current returns the track under the cursor, or nil if none.
func (q *PlayingQueue) Current() *Track {
	if q.currentIndex < 0 || q.currentIndex >= q.playlist.Len() {
		return nil
	}
	t := *q.playlist.Track(q.currentIndex)
	return &t
}

// CurrentIndex returns the cursor position (-1 if none).
func (q *PlayingQueue) CurrentIndex() int {
	return q.currentIndex
}

// JumpTo sets the cursor to the specified position.
// Returns the track at that position, or nil if invalid.
func (q *PlayingQueue) JumpTo(index int) *Track {
	if index < 0 || index >= q.playlist.Len() {
		return nil
	}
	q.currentIndex = index
	return q.Current()
}

// Replace clears the queue, adds tracks, and sets the cursor to 0.
// With no tracks the cursor is none. Returns the track under the cursor.
func (q *PlayingQueue) Replace(tracks ...Track) *Track {
	q.playlist.Clear()
	q.currentIndex = -1
	if len(tracks) == 0 {
		return nil
	}
	q.playlist.Add(tracks...)
	q.currentIndex = 0
	return q.Current()
}

// AppendAndFocus moves the cursor to the track, appending it first when its
// ID is not already queued. If the cursor entry already carries the ID it is
// kept, so duplicates never make the cursor jump backwards.
func (q *PlayingQueue) AppendAndFocus(track Track) *Track {
	if cur := q.Current(); cur != nil && cur.ID == track.ID {
		return cur
	}
	if i := q.playlist.IndexOf(track.ID); i >= 0 {
		q.currentIndex = i
		return q.Current()
	}
	q.playlist.Add(track)
	q.currentIndex = q.playlist.Len() - 1
	return q.Current()
}

// Focus moves the cursor to the track with the given ID.
// Returns ErrNotFound and leaves the cursor unchanged if absent.
func (q *PlayingQueue) Focus(id int64) error {
	if cur := q.Current(); cur != nil && cur.ID == id {
		return nil
	}
	i := q.playlist.IndexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	q.currentIndex = i
	return nil
}

// Remove removes the track with the given ID, preferring the cursor entry
// when it carries that ID. Removing the cursor entry moves the cursor to the
// following track, or to none when the removed entry was the last one.
// Returns false if the ID is not queued.
func (q *PlayingQueue) Remove(id int64) bool {
	index := -1
	if cur := q.Current(); cur != nil && cur.ID == id {
		index = q.currentIndex
	} else {
		index = q.playlist.IndexOf(id)
	}
	if index < 0 {
		return false
	}
	return q.RemoveAt(index)
}

// RemoveAt removes the track at the given index and adjusts the cursor.
func (q *PlayingQueue) RemoveAt(index int) bool {
	if !q.playlist.Remove(index) {
		return false
	}

	switch {
	case q.currentIndex > index:
		q.currentIndex--
	case q.currentIndex == index:
		// Same index now holds the following track
		if q.currentIndex >= q.playlist.Len() {
			q.currentIndex = -1
		}
	}

	return true
}

// Restore loads a saved queue without any playback side effect.
// An out-of-range index leaves the cursor on none.
func (q *PlayingQueue) Restore(tracks []Track, index int) {
	q.playlist.Clear()
	q.playlist.Add(tracks...)
	q.currentIndex = -1
	if index >= 0 && index < len(tracks) {
		q.currentIndex = index
	}
}

// Tracks returns all tracks in the queue.
func (q *PlayingQueue) Tracks() []Track {
	return q.playlist.Tracks()
}

// Len returns the number of tracks in the queue.
func (q *PlayingQueue) Len() int {
	return q.playlist.Len()
}

// IsEmpty returns true if the queue has no tracks.
func (q *PlayingQueue) IsEmpty() bool {
	return q.playlist.Len() == 0
}
