package playlistpanel

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/netwaves/internal/metadata"
	"github.com/llehouerou/netwaves/internal/ui/action"
	"github.com/llehouerou/netwaves/internal/ui/testutil"
)

func summary(id int64, name string) metadata.PlaylistSummary {
	return metadata.PlaylistSummary{ID: id, Name: name, TrackCount: int(id)}
}

func names(m Model) []string {
	var out []string
	for _, e := range m.Entries() {
		out = append(out, e.Playlist.Name)
	}
	return out
}

func TestAdd_MineFirst(t *testing.T) {
	m := New()
	m.Add(summary(1, "Other A"), false)
	m.Add(summary(2, "Mine A"), true)
	m.Add(summary(3, "Other B"), false)
	m.Add(summary(4, "Mine B"), true)

	assert.Equal(t, []string{"Mine A", "Mine B", "Other A", "Other B"}, names(m))
}

func TestAdd_UpdatesKnownID(t *testing.T) {
	m := New()
	m.Add(summary(1, "Old"), false)
	m.Add(summary(1, "New"), false)

	assert.Equal(t, []string{"New"}, names(m))
}

func TestClear(t *testing.T) {
	m := New()
	m.Add(summary(1, "A"), true)
	m.Clear()

	assert.Empty(t, m.Entries())
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestUpdate_OpenAndPlay(t *testing.T) {
	m := New()
	m.SetSize(40, 10)
	m.SetFocused(true)
	m.Add(summary(1, "A"), true)
	m.Add(summary(2, "B"), false)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd().(action.Msg)
	assert.Equal(t, "playlists", msg.Source)
	assert.Equal(t, Open{Playlist: summary(2, "B")}, msg.Action)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	assert.Equal(t, Play{Playlist: summary(2, "B")}, cmd().(action.Msg).Action)
}

func TestUpdate_EmptyDoesNothing(t *testing.T) {
	m := New()
	m.SetSize(40, 10)
	m.SetFocused(true)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestView(t *testing.T) {
	m := New()
	m.SetSize(40, 8)
	assert.Contains(t, testutil.StripANSI(m.View()), "Log in to see your playlists")

	m.Add(summary(7, "Road trip"), true)
	out := testutil.StripANSI(m.View())
	assert.Contains(t, out, "Road trip")
	assert.Contains(t, out, "(1)")
}
