package tui

import (
	"image"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/netwaves/internal/app"
	"github.com/llehouerou/netwaves/internal/metadata"
	"github.com/llehouerou/netwaves/internal/playback"
	"github.com/llehouerou/netwaves/internal/playlist"
	"github.com/llehouerou/netwaves/internal/ui/action"
)

type fakeCore struct {
	mu   sync.Mutex
	sent []app.Command
	snap app.Snapshot
	ui   chan app.UIEvent
}

func newFakeCore() *fakeCore {
	return &fakeCore{ui: make(chan app.UIEvent, 8), snap: app.Snapshot{QueueIndex: -1}}
}

func (f *fakeCore) Send(cmd app.Command) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, cmd)
}

func (f *fakeCore) Snapshot() app.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap
}

func (f *fakeCore) UIEvents() <-chan app.UIEvent { return f.ui }

func (f *fakeCore) setSnapshot(s app.Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap = s
}

func (f *fakeCore) commands() []app.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]app.Command(nil), f.sent...)
}

func tracks(n int) []playlist.Track {
	out := make([]playlist.Track, n)
	for i := range out {
		out[i] = playlist.Track{
			ID:       int64(i + 1),
			Title:    "Song " + string(rune('A'+i)),
			Artists:  []string{"Band"},
			Duration: 3 * time.Minute,
		}
	}
	return out
}

func playingSnapshot() app.Snapshot {
	q := tracks(3)
	return app.Snapshot{
		State:      playback.StatePlaying,
		Track:      &q[0],
		Position:   20 * time.Second,
		Duration:   3 * time.Minute,
		Mode:       playlist.ModeSequential,
		Queue:      q,
		QueueIndex: 0,
	}
}

func newTestModel(t *testing.T, core *fakeCore, opts Options) Model {
	t.Helper()
	m := New(core, opts)
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	result, ok := next.(Model)
	require.True(t, ok, "Update should return Model")
	return result
}

// press sends a key and delivers any action it raises. Typing into a
// text input returns a blink command, so text goes through update.
func press(t *testing.T, m Model, key tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(key)
	m = next.(Model)
	return deliver(t, m, cmd)
}

func deliver(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	if msg, ok := cmd().(action.Msg); ok {
		return update(t, m, msg)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGlobalKeys_SendCommands(t *testing.T) {
	core := newFakeCore()
	core.setSnapshot(playingSnapshot())
	m := newTestModel(t, core, Options{})

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = press(t, m, runes("n"))
	m = press(t, m, runes("s"))
	press(t, m, runes("f"))

	assert.Equal(t, []app.Command{
		app.TogglePlayPause{},
		app.Seek{Seconds: 25},
		app.Seek{Seconds: 15},
		app.Next{},
		app.SetMode{Mode: playlist.ModeShuffle},
		app.ToggleFavorite{},
	}, core.commands())
}

func TestSeek_NothingPlaying(t *testing.T) {
	core := newFakeCore()
	m := newTestModel(t, core, Options{})

	press(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	assert.Empty(t, core.commands())
}

func TestToggleShuffle_BackToSequential(t *testing.T) {
	assert.Equal(t, playlist.ModeShuffle, toggleShuffle(playlist.ModeLoopAll))
	assert.Equal(t, playlist.ModeSequential, toggleShuffle(playlist.ModeShuffle))
}

func TestQueue_EnterPlaysAndDeleteRemoves(t *testing.T) {
	core := newFakeCore()
	core.setSnapshot(playingSnapshot())
	m := newTestModel(t, core, Options{})

	m = press(t, m, runes("j"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	press(t, m, runes("d"))

	assert.Equal(t, []app.Command{
		app.Play{TrackID: 2},
		app.RemoveFromList{TrackID: 2},
	}, core.commands())
}

func TestSearchPopup(t *testing.T) {
	core := newFakeCore()
	m := newTestModel(t, core, Options{})

	m = press(t, m, runes("/"))
	require.NotNil(t, m.popup)
	assert.Contains(t, m.View(), "Search")

	m = update(t, m, runes("jazz"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, m.popup)
	assert.Equal(t, ViewSearch, m.CurrentView())
	assert.Equal(t, []app.Command{app.Search{Text: "jazz"}}, core.commands())

	m = update(t, m, UIEventMsg{Event: app.SearchResults{Text: "jazz", Tracks: tracks(2)}})
	assert.Len(t, m.results.Tracks(), 2)

	m = press(t, m, runes("r"))
	cmds := core.commands()
	require.Len(t, cmds, 2)
	assert.Equal(t, app.PlayTracks{Tracks: tracks(2)}, cmds[1])

	// The prompt remembers the last search.
	m = press(t, m, runes("/"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, app.Search{Text: "jazz"}, core.commands()[2])
}

func TestSearchPopup_KeysGoToPopup(t *testing.T) {
	core := newFakeCore()
	core.setSnapshot(playingSnapshot())
	m := newTestModel(t, core, Options{})

	m = press(t, m, runes("/"))
	m = update(t, m, runes("n"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, m.popup)
	assert.Empty(t, core.commands(), "typing in the prompt must not skip tracks")
}

func TestLoginPopup(t *testing.T) {
	core := newFakeCore()
	m := newTestModel(t, core, Options{})

	m = press(t, m, runes("L"))
	require.NotNil(t, m.popup)

	m = update(t, m, runes("5551234"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, runes("secret"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, m.popup)
	assert.Equal(t, []app.Command{app.Login{Phone: "5551234", Password: "secret"}}, core.commands())
}

func TestLogin_AlreadyLoggedIn(t *testing.T) {
	core := newFakeCore()
	core.setSnapshot(app.Snapshot{LoggedIn: true, Profile: metadata.Profile{Nickname: "nw"}})
	m := newTestModel(t, core, Options{})

	m = press(t, m, runes("L"))

	assert.Nil(t, m.popup)
	assert.Equal(t, "Already logged in as nw", m.Status())
}

func TestPlaylists(t *testing.T) {
	core := newFakeCore()
	m := newTestModel(t, core, Options{})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyF3})
	require.Equal(t, ViewPlaylists, m.CurrentView())

	m = update(t, m, UIEventMsg{Event: app.PlaylistListed{Playlist: metadata.PlaylistSummary{ID: 9, Name: "Other"}}})
	m = update(t, m, UIEventMsg{Event: app.PlaylistListed{Playlist: metadata.PlaylistSummary{ID: 5, Name: "Road"}, Mine: true}})
	require.Len(t, m.playlists.Entries(), 2)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []app.Command{app.OpenPlaylist{PlaylistID: 5}}, core.commands())

	m = update(t, m, UIEventMsg{Event: app.PlaylistOpened{Detail: metadata.PlaylistDetail{
		PlaylistSummary: metadata.PlaylistSummary{ID: 5, Name: "Road"},
		Tracks:          tracks(2),
	}}})
	assert.True(t, m.tracksFocused, "opened playlist takes focus")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, app.Play{TrackID: 1}, core.commands()[1])

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = press(t, m, runes("r"))
	assert.Equal(t, app.PlayPlaylist{PlaylistID: 5}, core.commands()[2])

	m = update(t, m, UIEventMsg{Event: app.LoggedOut{}})
	assert.Empty(t, m.playlists.Entries())
	assert.Empty(t, m.opened.Tracks())
}

func TestSwitchFocus(t *testing.T) {
	m := newTestModel(t, newFakeCore(), Options{})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ViewSearch, m.CurrentView())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ViewPlaylists, m.CurrentView())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ViewQueue, m.CurrentView())
}

func TestStatusLine(t *testing.T) {
	m := newTestModel(t, newFakeCore(), Options{})

	m = update(t, m, UIEventMsg{Event: app.StatusLine{Message: "Found 2 tracks related to jazz"}})

	assert.Equal(t, "Found 2 tracks related to jazz", m.Status())
	assert.Contains(t, m.View(), "Found 2 tracks related to jazz")
}

func TestTick_RefreshesSnapshot(t *testing.T) {
	core := newFakeCore()
	m := newTestModel(t, core, Options{})
	assert.Empty(t, m.queue.Tracks())

	core.setSnapshot(playingSnapshot())
	m = update(t, m, TickMsg(time.Now()))

	assert.Len(t, m.queue.Tracks(), 3)
	assert.Contains(t, m.View(), "Song A")
}

func TestView_FillsScreen(t *testing.T) {
	core := newFakeCore()
	core.setSnapshot(playingSnapshot())
	m := newTestModel(t, core, Options{})

	for _, v := range []View{ViewQueue, ViewSearch, ViewPlaylists} {
		m.setView(v)
		lines := strings.Split(m.View(), "\n")
		assert.Len(t, lines, 30, "view %d", v)
		for _, line := range lines {
			assert.LessOrEqual(t, lipgloss.Width(line), 100, "view %d", v)
		}
	}
}

func TestView_TooSmall(t *testing.T) {
	m := New(newFakeCore(), Options{})
	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})

	assert.Contains(t, m.View(), "Terminal too small")
}

func TestMouse_ClickPlaysQueueRow(t *testing.T) {
	core := newFakeCore()
	core.setSnapshot(playingSnapshot())
	m := newTestModel(t, core, Options{})

	// Header line, then the panel border, title and separator.
	next, cmd := m.Update(tea.MouseMsg{X: 10, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	deliver(t, next.(Model), cmd)

	assert.Equal(t, []app.Command{app.Play{TrackID: 2}}, core.commands())
}

func TestHelp(t *testing.T) {
	core := newFakeCore()
	m := newTestModel(t, core, Options{})

	m = press(t, m, runes("?"))
	assert.Contains(t, m.View(), "Toggle shuffle")

	m = press(t, m, runes("n"))
	assert.Empty(t, core.commands(), "keys are swallowed while help is open")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.popup)
}

func TestLogout_Confirmed(t *testing.T) {
	core := newFakeCore()
	core.setSnapshot(app.Snapshot{LoggedIn: true, Profile: metadata.Profile{Nickname: "nw"}})
	m := newTestModel(t, core, Options{})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	require.NotNil(t, m.popup)
	assert.Contains(t, m.View(), "Log out of nw?")

	m = press(t, m, runes("n"))
	assert.Nil(t, m.popup)
	assert.Empty(t, core.commands())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	press(t, m, runes("y"))
	assert.Equal(t, []app.Command{app.Logout{}}, core.commands())
}

func TestLogout_NotLoggedIn(t *testing.T) {
	m := newTestModel(t, newFakeCore(), Options{})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})

	assert.Nil(t, m.popup)
	assert.Equal(t, "Not logged in", m.Status())
}

func TestCover(t *testing.T) {
	core := newFakeCore()
	core.setSnapshot(playingSnapshot())
	m := newTestModel(t, core, Options{Images: true})

	m = update(t, m, UIEventMsg{Event: app.CoverLoaded{TrackID: 1, Image: image.NewRGBA(image.Rect(0, 0, 8, 8))}})
	view := m.View()
	assert.Contains(t, view, "a=t,f=100", "image uploaded")
	assert.Contains(t, view, "a=p,i=", "image placed")

	m = update(t, m, TickMsg(time.Now()))
	assert.Contains(t, m.View(), "a=t,f=100", "upload kept for at least one tick")
	m = update(t, m, TickMsg(time.Now()))
	view = m.View()
	assert.NotContains(t, view, "a=t,f=100")
	assert.Contains(t, view, "a=p,i=", "placement is drawn every frame")

	// Another track: the image is freed and no longer placed.
	snap := playingSnapshot()
	snap.Track = &snap.Queue[1]
	core.setSnapshot(snap)
	m = update(t, m, TickMsg(time.Now()))
	view = m.View()
	assert.Contains(t, view, "a=d,d=i")
	assert.NotContains(t, view, "a=p,i=")
}

func TestCover_Disabled(t *testing.T) {
	core := newFakeCore()
	core.setSnapshot(playingSnapshot())
	m := newTestModel(t, core, Options{})

	m = update(t, m, UIEventMsg{Event: app.CoverLoaded{TrackID: 1, Image: image.NewRGBA(image.Rect(0, 0, 8, 8))}})

	assert.NotContains(t, m.View(), "\x1b_G")
}

func TestCoreClosedQuits(t *testing.T) {
	core := newFakeCore()
	close(core.ui)
	m := New(core, Options{})

	msg := waitForUI(core.UIEvents())()
	_, cmd := m.Update(msg)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
