// Package tracklist is a scrollable panel of tracks. The queue, search
// results and opened playlists all use it.
package tracklist

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/netwaves/internal/playlist"
	"github.com/llehouerou/netwaves/internal/ui"
	"github.com/llehouerou/netwaves/internal/ui/action"
	"github.com/llehouerou/netwaves/internal/ui/cursor"
)

// Activate is raised on enter or a click: play Track.
type Activate struct {
	Index int
	Track playlist.Track
}

// ActionType implements action.Action.
func (Activate) ActionType() string { return "tracklist.activate" }

// Remove is raised on d/delete: drop Track from its list.
type Remove struct {
	Track playlist.Track
}

// ActionType implements action.Action.
func (Remove) ActionType() string { return "tracklist.remove" }

// PlayAll is raised on "r": replace the queue with every track shown.
type PlayAll struct {
	Tracks []playlist.Track
}

// ActionType implements action.Action.
func (PlayAll) ActionType() string { return "tracklist.play_all" }

// Model is a track panel.
type Model struct {
	ui.Base
	source    string
	title     string
	empty     string
	tracks    []playlist.Track
	playing   int
	cursor    cursor.Cursor
	removable bool
}

// New creates a panel. source names it in the actions it raises.
func New(source, title string) Model {
	return Model{
		source:  source,
		title:   title,
		empty:   "No tracks",
		playing: -1,
		cursor:  cursor.New(ui.ScrollMargin),
	}
}

// SetRemovable enables the Remove action.
func (m *Model) SetRemovable(on bool) {
	m.removable = on
}

// SetTitle changes the header text.
func (m *Model) SetTitle(title string) {
	m.title = title
}

// SetEmptyText changes what an empty panel shows.
func (m *Model) SetEmptyText(text string) {
	m.empty = text
}

// SetTracks replaces the tracks. playing is the highlighted index, -1 for none.
// The cursor resets when the list itself changed.
func (m *Model) SetTracks(tracks []playlist.Track, playing int) {
	if !sameIDs(m.tracks, tracks) {
		m.cursor.Reset()
	}
	m.tracks = tracks
	m.playing = playing
	m.cursor.ClampToBounds(len(tracks), m.ListHeight())
}

// Tracks returns the tracks shown.
func (m Model) Tracks() []playlist.Track {
	return m.tracks
}

// Selected returns the track under the cursor.
func (m Model) Selected() (playlist.Track, bool) {
	if len(m.tracks) == 0 {
		return playlist.Track{}, false
	}
	return m.tracks[m.cursor.Pos()], true
}

// SelectedIndex returns the cursor position.
func (m Model) SelectedIndex() int {
	return m.cursor.Pos()
}

// FocusPlaying moves the cursor to the playing entry.
func (m *Model) FocusPlaying() {
	if m.playing >= 0 {
		m.cursor.Jump(m.playing, len(m.tracks), m.ListHeight())
	}
}

// Update handles navigation keys and raises actions for the parent.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.IsFocused() {
		return m, nil
	}
	height := m.ListHeight()

	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.cursor.HandleKey(msg.String(), len(m.tracks), height) {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			return m, m.activate()
		case "d", "delete":
			if t, ok := m.Selected(); ok && m.removable {
				return m, action.Emit(m.source, Remove{Track: t})
			}
		case "r":
			if len(m.tracks) > 0 {
				return m, action.Emit(m.source, PlayAll{Tracks: m.tracks})
			}
		}
	}
	return m, nil
}

func (m Model) activate() tea.Cmd {
	t, ok := m.Selected()
	if !ok {
		return nil
	}
	return action.Emit(m.source, Activate{Index: m.cursor.Pos(), Track: t})
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	height := m.ListHeight()
	switch msg.Button { //nolint:exhaustive // only wheel and left click
	case tea.MouseButtonWheelUp:
		m.cursor.Move(-1, len(m.tracks), height)
	case tea.MouseButtonWheelDown:
		m.cursor.Move(1, len(m.tracks), height)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		// Rows start below the top border, header and separator.
		row := msg.Y - (ui.PanelOverhead - 1)
		idx := m.cursor.Offset() + row
		if row < 0 || row >= height || idx >= len(m.tracks) {
			return m, nil
		}
		m.cursor.Jump(idx, len(m.tracks), height)
		return m, m.activate()
	}
	return m, nil
}

func sameIDs(a, b []playlist.Track) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
