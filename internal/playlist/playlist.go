package playlist

import (
	"strings"
	"time"
)

// Track represents a single playable song as returned by the metadata API.
// Tracks are values: once fetched they are never modified.
type Track struct {
	ID        int64
	Title     string
	Artists   []string
	Album     string
	ArtURL    string        // album cover, fetched on demand
	StreamURL string        // empty until resolved by the engine
	Duration  time.Duration // millisecond precision
}

// ArtistNames joins the artist names for display.
func (t Track) ArtistNames() string {
	return strings.Join(t.Artists, ", ")
}

// DisplayTitle returns "Title - Artists", or the bare title when no artist is known.
func (t Track) DisplayTitle() string {
	if len(t.Artists) == 0 {
		return t.Title
	}
	return t.Title + " - " + t.ArtistNames()
}

// Playlist holds an ordered collection of tracks.
// Duplicate IDs are allowed; lookups by ID return the first occurrence.
type Playlist struct {
	tracks []Track
}

// NewPlaylist creates a new empty playlist.
func NewPlaylist() *Playlist {
	return &Playlist{
		tracks: make([]Track, 0),
	}
}

// Add appends tracks to the playlist.
func (p *Playlist) Add(tracks ...Track) {
	p.tracks = append(p.tracks, tracks...)
}

// Remove removes the track at the given index.
// Returns false if index is out of bounds.
func (p *Playlist) Remove(index int) bool {
	if index < 0 || index >= len(p.tracks) {
		return false
	}
	p.tracks = append(p.tracks[:index], p.tracks[index+1:]...)
	return true
}

// Clear removes all tracks from the playlist.
func (p *Playlist) Clear() {
	p.tracks = p.tracks[:0]
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track returns the track at the given index, or nil if out of bounds.
func (p *Playlist) Track(index int) *Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	return &p.tracks[index]
}

// IndexOf returns the index of the first track with the given ID, or -1.
func (p *Playlist) IndexOf(id int64) int {
	for i := range p.tracks {
		if p.tracks[i].ID == id {
			return i
		}
	}
	return -1
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}
