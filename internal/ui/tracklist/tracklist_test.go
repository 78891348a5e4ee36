package tracklist

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/netwaves/internal/playlist"
	"github.com/llehouerou/netwaves/internal/ui/action"
	"github.com/llehouerou/netwaves/internal/ui/testutil"
)

func testTracks(n int) []playlist.Track {
	tracks := make([]playlist.Track, n)
	for i := range tracks {
		tracks[i] = playlist.Track{
			ID:       int64(i + 1),
			Title:    "Song " + string(rune('A'+i)),
			Artists:  []string{"Artist"},
			Duration: 3*time.Minute + time.Duration(i)*time.Second,
		}
	}
	return tracks
}

func newModel(n, playing int) Model {
	m := New("queue", "Queue")
	m.SetSize(60, 10)
	m.SetFocused(true)
	m.SetTracks(testTracks(n), playing)
	return m
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "delete":
		return tea.KeyMsg{Type: tea.KeyDelete}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func run(t *testing.T, cmd tea.Cmd) action.Msg {
	t.Helper()
	require.NotNil(t, cmd, "expected an action")
	msg, ok := cmd().(action.Msg)
	require.True(t, ok, "expected action.Msg")
	return msg
}

func TestView_Empty(t *testing.T) {
	m := New("search", "Search")
	m.SetSize(60, 10)
	m.SetEmptyText("Type / to search")

	out := testutil.StripANSI(m.View())
	assert.Contains(t, out, "Search")
	assert.Contains(t, out, "(0)")
	assert.Contains(t, out, "Type / to search")
}

func TestView_PlayingHeaderAndMarker(t *testing.T) {
	m := newModel(3, 1)

	out := testutil.StripANSI(m.View())
	assert.Contains(t, out, "Queue")
	assert.Contains(t, out, "(2/3)")
	assert.Contains(t, out, playingSymbol+" Song B")
	assert.Contains(t, out, "3:01")
}

func TestView_FitsWidth(t *testing.T) {
	m := newModel(20, 0)
	m.SetTracks(append(m.Tracks(), playlist.Track{ID: 99, Title: strings.Repeat("長", 80)}), 0)

	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 10)
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}
}

func TestUpdate_Activate(t *testing.T) {
	m := newModel(3, -1)

	m, _ = m.Update(key("j"))
	m, cmd := m.Update(key("enter"))

	msg := run(t, cmd)
	assert.Equal(t, "queue", msg.Source)
	act, ok := msg.Action.(Activate)
	require.True(t, ok)
	assert.Equal(t, 1, act.Index)
	assert.Equal(t, int64(2), act.Track.ID)
}

func TestUpdate_RemoveOnlyWhenRemovable(t *testing.T) {
	m := newModel(3, 0)

	_, cmd := m.Update(key("d"))
	assert.Nil(t, cmd, "search results cannot be removed")

	m.SetRemovable(true)
	_, cmd = m.Update(key("delete"))
	act, ok := run(t, cmd).Action.(Remove)
	require.True(t, ok)
	assert.Equal(t, int64(1), act.Track.ID)
}

func TestUpdate_PlayAll(t *testing.T) {
	m := newModel(3, -1)

	_, cmd := m.Update(key("r"))
	act, ok := run(t, cmd).Action.(PlayAll)
	require.True(t, ok)
	assert.Len(t, act.Tracks, 3)
}

func TestUpdate_IgnoredWhenUnfocused(t *testing.T) {
	m := newModel(3, -1)
	m.SetFocused(false)

	m, cmd := m.Update(key("j"))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.SelectedIndex())
}

func TestUpdate_Empty(t *testing.T) {
	m := New("queue", "Queue")
	m.SetSize(60, 10)
	m.SetFocused(true)

	_, cmd := m.Update(key("enter"))
	assert.Nil(t, cmd)
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestSetTracks_KeepsCursorForSameList(t *testing.T) {
	m := newModel(5, 0)
	m, _ = m.Update(key("G"))
	require.Equal(t, 4, m.SelectedIndex())

	m.SetTracks(testTracks(5), 1)
	assert.Equal(t, 4, m.SelectedIndex(), "same list keeps the cursor")

	m.SetTracks(testTracks(2), 1)
	assert.Equal(t, 0, m.SelectedIndex(), "new list resets the cursor")
}

func TestFocusPlaying(t *testing.T) {
	m := newModel(8, 6)
	m.FocusPlaying()
	assert.Equal(t, 6, m.SelectedIndex())
}

func TestMouse_ClickActivates(t *testing.T) {
	m := newModel(5, -1)

	// Row 0 of the list sits under border, header and separator.
	m, cmd := m.Update(tea.MouseMsg{X: 5, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	act, ok := run(t, cmd).Action.(Activate)
	require.True(t, ok)
	assert.Equal(t, 2, act.Index)
	assert.Equal(t, 2, m.SelectedIndex())
}

func TestMouse_Wheel(t *testing.T) {
	m := newModel(5, -1)
	m, _ = m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, 1, m.SelectedIndex())
}
