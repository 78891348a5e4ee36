// Package playlistpanel lists the user's playlists, their own first.
package playlistpanel

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/netwaves/internal/icons"
	"github.com/llehouerou/netwaves/internal/metadata"
	"github.com/llehouerou/netwaves/internal/ui"
	"github.com/llehouerou/netwaves/internal/ui/action"
	"github.com/llehouerou/netwaves/internal/ui/cursor"
	"github.com/llehouerou/netwaves/internal/ui/render"
	"github.com/llehouerou/netwaves/internal/ui/styles"
)

const source = "playlists"

// Open asks for the playlist's tracks without playing them.
type Open struct {
	Playlist metadata.PlaylistSummary
}

// ActionType implements action.Action.
func (Open) ActionType() string { return "playlistpanel.open" }

// Play replaces the queue with the playlist.
type Play struct {
	Playlist metadata.PlaylistSummary
}

// ActionType implements action.Action.
func (Play) ActionType() string { return "playlistpanel.play" }

// Entry is a listed playlist.
type Entry struct {
	Playlist metadata.PlaylistSummary
	Mine     bool
}

// Model is the playlist panel.
type Model struct {
	ui.Base
	entries []Entry
	cursor  cursor.Cursor
}

// New creates an empty panel.
func New() Model {
	return Model{cursor: cursor.New(ui.ScrollMargin)}
}

// Add lists a playlist. Playlists arrive one at a time after login; the
// user's own stay in front, each group in arrival order. A known id is
// updated in place.
func (m *Model) Add(p metadata.PlaylistSummary, mine bool) {
	for i := range m.entries {
		if m.entries[i].Playlist.ID == p.ID {
			m.entries[i] = Entry{Playlist: p, Mine: mine}
			return
		}
	}
	m.entries = append(m.entries, Entry{Playlist: p, Mine: mine})
	sort.SliceStable(m.entries, func(i, j int) bool {
		return m.entries[i].Mine && !m.entries[j].Mine
	})
}

// Clear drops every playlist, on logout.
func (m *Model) Clear() {
	m.entries = nil
	m.cursor.Reset()
}

// Entries returns the listed playlists in display order.
func (m Model) Entries() []Entry {
	return m.entries
}

// Selected returns the playlist under the cursor.
func (m Model) Selected() (Entry, bool) {
	if len(m.entries) == 0 {
		return Entry{}, false
	}
	return m.entries[m.cursor.Pos()], true
}

// Update handles navigation and raises Open (enter) and Play (p).
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.IsFocused() {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.cursor.HandleKey(keyMsg.String(), len(m.entries), m.ListHeight()) {
		return m, nil
	}
	e, ok := m.Selected()
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "enter", "l":
		return m, action.Emit(source, Open{Playlist: e.Playlist})
	case "r":
		return m, action.Emit(source, Play{Playlist: e.Playlist})
	}
	return m, nil
}

// View renders the panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	width := m.Width() - ui.BorderHeight
	height := m.ListHeight()
	s := styles.T().S()

	header := render.Row(s.Title.Render("Playlists"), s.Muted.Render(fmt.Sprintf("(%d)", len(m.entries))), width)

	lines := make([]string, 0, height)
	if len(m.entries) == 0 && height > 0 {
		lines = append(lines, s.Subtle.Render(render.TruncateAndPad("Log in to see your playlists", width)))
	}
	start, end := m.cursor.VisibleRange(len(m.entries), height)
	for i := start; i < end; i++ {
		e := m.entries[i]
		count := fmt.Sprintf(" %d", e.Playlist.TrackCount)
		name := render.TruncateAndPad(icons.FormatPlaylist(e.Playlist.Name, e.Mine), max(width-len(count), 0))
		line := name + count
		if i == m.cursor.Pos() && m.IsFocused() {
			line = s.Cursor.Render(line)
		} else {
			line = s.Base.Render(line)
		}
		lines = append(lines, line)
	}
	for len(lines) < height {
		lines = append(lines, render.EmptyLine(width))
	}

	return styles.PanelStyle(m.IsFocused()).
		Width(width).
		Render(header + "\n" + render.Separator(width) + "\n" + strings.Join(lines, "\n"))
}
