// Package tui is the terminal interface: a Bubble Tea model drawing the
// core's snapshot and turning keys and clicks into core commands.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/netwaves/internal/app"
	"github.com/llehouerou/netwaves/internal/keymap"
	"github.com/llehouerou/netwaves/internal/playlist"
	"github.com/llehouerou/netwaves/internal/ui/playlistpanel"
	"github.com/llehouerou/netwaves/internal/ui/popup"
	"github.com/llehouerou/netwaves/internal/ui/tracklist"
)

// Core is the part of app.Core the interface talks to.
type Core interface {
	Send(cmd app.Command)
	Snapshot() app.Snapshot
	UIEvents() <-chan app.UIEvent
}

// View is the main area being shown.
type View int

const (
	ViewQueue View = iota
	ViewSearch
	ViewPlaylists
)

const (
	tickInterval = 250 * time.Millisecond
	seekStep     = 5 * time.Second

	sourceQueue    = "queue"
	sourceResults  = "results"
	sourcePlaylist = "playlist"
)

// Options configure the model.
type Options struct {
	// Images enables cover art through the Kitty graphics protocol.
	Images bool
}

// Model is the root Bubble Tea model.
type Model struct {
	core     Core
	resolver *keymap.Resolver

	width  int
	height int

	view View
	// tracksFocused selects the opened playlist over the playlist list.
	tracksFocused bool

	queue     tracklist.Model
	results   tracklist.Model
	opened    tracklist.Model
	playlists playlistpanel.Model

	popup popup.Popup

	snap       app.Snapshot
	status     string
	lastSearch string

	cover cover
}

// New creates the model.
func New(core Core, opts Options) Model {
	queue := tracklist.New(sourceQueue, "Queue")
	queue.SetRemovable(true)
	queue.SetEmptyText("Queue is empty. Press / to search")

	results := tracklist.New(sourceResults, "Search")
	results.SetEmptyText("Press / to search")

	opened := tracklist.New(sourcePlaylist, "Playlist")
	opened.SetEmptyText("Select a playlist")

	m := Model{
		core:      core,
		resolver:  keymap.NewResolver(keymap.Bindings),
		queue:     queue,
		results:   results,
		opened:    opened,
		playlists: playlistpanel.New(),
		cover:     cover{enabled: opts.Images},
	}
	m.refresh()
	m.applyFocus()
	return m
}

// Init starts the refresh tick and the UI event listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), waitForUI(m.core.UIEvents()))
}

// CurrentView returns the view being shown.
func (m Model) CurrentView() View {
	return m.view
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// refresh pulls the latest snapshot into the panels.
func (m *Model) refresh() {
	m.snap = m.core.Snapshot()
	m.queue.SetTracks(m.snap.Queue, m.snap.QueueIndex)
	m.results.SetTracks(m.results.Tracks(), m.indexOfPlaying(m.results.Tracks()))
	m.opened.SetTracks(m.opened.Tracks(), m.indexOfPlaying(m.opened.Tracks()))
}

func (m Model) indexOfPlaying(tracks []playlist.Track) int {
	if m.snap.Track == nil {
		return -1
	}
	for i, t := range tracks {
		if t.ID == m.snap.Track.ID {
			return i
		}
	}
	return -1
}

func (m *Model) applyFocus() {
	m.queue.SetFocused(m.view == ViewQueue)
	m.results.SetFocused(m.view == ViewSearch)
	m.playlists.SetFocused(m.view == ViewPlaylists && !m.tracksFocused)
	m.opened.SetFocused(m.view == ViewPlaylists && m.tracksFocused)
}

func (m *Model) setView(v View) {
	m.view = v
	m.tracksFocused = false
	m.applyFocus()
}
