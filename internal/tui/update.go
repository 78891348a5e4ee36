package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/netwaves/internal/app"
	"github.com/llehouerou/netwaves/internal/keymap"
	"github.com/llehouerou/netwaves/internal/playlist"
	"github.com/llehouerou/netwaves/internal/ui/action"
	"github.com/llehouerou/netwaves/internal/ui/confirm"
	"github.com/llehouerou/netwaves/internal/ui/headerbar"
	"github.com/llehouerou/netwaves/internal/ui/helpbindings"
	"github.com/llehouerou/netwaves/internal/ui/loginform"
	"github.com/llehouerou/netwaves/internal/ui/playlistpanel"
	"github.com/llehouerou/netwaves/internal/ui/popup"
	"github.com/llehouerou/netwaves/internal/ui/searchbox"
	"github.com/llehouerou/netwaves/internal/ui/tracklist"
)

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case TickMsg:
		m.refresh()
		m.cover.tick()
		m.cover.trackChanged(m.playingID())
		return m, tickCmd()

	case UIEventMsg:
		m.handleUIEvent(msg.Event)
		return m, waitForUI(m.core.UIEvents())

	case coreClosedMsg:
		return m, tea.Quit

	case action.Msg:
		return m.handleAction(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Cursor blink and other popup internals.
	if m.popup != nil {
		var cmd tea.Cmd
		m.popup, cmd = m.popup.Update(msg)
		return m, cmd
	}
	return m, nil
}

// logoutRequest tags the logout confirmation.
type logoutRequest struct{}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.popup != nil {
		var cmd tea.Cmd
		m.popup, cmd = m.popup.Update(msg)
		return m, cmd
	}

	if a := m.resolver.Resolve(key); a != "" {
		return m.handleGlobal(a)
	}
	if key == "esc" && m.view == ViewPlaylists && m.tracksFocused {
		m.tracksFocused = false
		m.applyFocus()
		return m, nil
	}
	return m.updateFocused(msg)
}

// handleGlobal runs a key bound in keymap.Bindings.
func (m Model) handleGlobal(a keymap.Action) (tea.Model, tea.Cmd) {
	switch a { //nolint:exhaustive // list-only actions never resolve here
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionSwitchFocus:
		m.nextFocus()
	case keymap.ActionViewQueue:
		m.setView(ViewQueue)
	case keymap.ActionViewSearch:
		m.setView(ViewSearch)
	case keymap.ActionViewPlaylists:
		m.setView(ViewPlaylists)
	case keymap.ActionSearch:
		return m.openPopup(searchbox.New(m.lastSearch))
	case keymap.ActionLogin:
		if m.snap.LoggedIn {
			m.status = "Already logged in as " + m.snap.Profile.Nickname
			return m, nil
		}
		return m.openPopup(loginform.New())
	case keymap.ActionLogout:
		if !m.snap.LoggedIn {
			m.status = "Not logged in"
			return m, nil
		}
		return m.openPopup(confirm.New("Log out", "Log out of "+m.user()+"?", logoutRequest{}))
	case keymap.ActionHelp:
		return m.openPopup(helpbindings.New(helpbindings.Contexts, m.height))
	case keymap.ActionPlayPause:
		m.core.Send(app.TogglePlayPause{})
	case keymap.ActionNextTrack:
		m.core.Send(app.Next{})
	case keymap.ActionPrevTrack:
		m.core.Send(app.Previous{})
	case keymap.ActionSeekForward:
		m.seek(seekStep.Seconds())
	case keymap.ActionSeekBack:
		m.seek(-seekStep.Seconds())
	case keymap.ActionCycleMode:
		m.core.Send(app.CycleMode{})
	case keymap.ActionToggleShuffle:
		m.core.Send(app.SetMode{Mode: toggleShuffle(m.snap.Mode)})
	case keymap.ActionToggleFavorite:
		m.core.Send(app.ToggleFavorite{})
	case keymap.ActionJumpToPlaying:
		m.setView(ViewQueue)
		m.queue.FocusPlaying()
	}
	return m, nil
}

func (m *Model) seek(delta float64) {
	if m.snap.Track == nil {
		return
	}
	m.core.Send(app.Seek{Seconds: max(m.snap.Position.Seconds()+delta, 0)})
}

func toggleShuffle(mode playlist.Mode) playlist.Mode {
	if mode == playlist.ModeShuffle {
		return playlist.ModeSequential
	}
	return playlist.ModeShuffle
}

// nextFocus moves from the playlist list into the opened playlist, and
// otherwise to the next view.
func (m *Model) nextFocus() {
	if m.view == ViewPlaylists && !m.tracksFocused && len(m.opened.Tracks()) > 0 {
		m.tracksFocused = true
		m.applyFocus()
		return
	}
	m.setView((m.view + 1) % (ViewPlaylists + 1))
}

func (m Model) openPopup(p popup.Popup) (tea.Model, tea.Cmd) {
	m.popup = p
	return m, p.Init()
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ViewQueue:
		m.queue, cmd = m.queue.Update(msg)
	case ViewSearch:
		m.results, cmd = m.results.Update(msg)
	case ViewPlaylists:
		if m.tracksFocused {
			m.opened, cmd = m.opened.Update(msg)
		} else {
			m.playlists, cmd = m.playlists.Update(msg)
		}
	}
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.popup != nil {
		return m, nil
	}
	body := m.bodyHeight()
	msg.Y -= headerbar.Height
	if msg.Y < 0 || msg.Y >= body {
		return m, nil
	}
	if m.view == ViewPlaylists {
		left := m.width / playlistRatio
		clicked := msg.X >= left
		if msg.Button == tea.MouseButtonLeft && clicked != m.tracksFocused {
			m.tracksFocused = clicked
			m.applyFocus()
		}
		if clicked {
			msg.X -= left
		}
	}
	return m.updateFocused(msg)
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case tracklist.Activate:
		m.core.Send(app.Play{TrackID: a.Track.ID})
	case tracklist.Remove:
		m.core.Send(app.RemoveFromList{TrackID: a.Track.ID})
	case tracklist.PlayAll:
		m.core.Send(app.PlayTracks{Tracks: a.Tracks})
	case playlistpanel.Open:
		m.opened.SetTitle(a.Playlist.Name)
		m.core.Send(app.OpenPlaylist{PlaylistID: a.Playlist.ID})
	case playlistpanel.Play:
		m.core.Send(app.PlayPlaylist{PlaylistID: a.Playlist.ID})
	case searchbox.Submit:
		m.popup = nil
		m.lastSearch = a.Text
		m.results.SetTitle("Search: " + a.Text)
		m.setView(ViewSearch)
		m.core.Send(app.Search{Text: a.Text})
	case loginform.Submit:
		m.popup = nil
		m.core.Send(app.Login{Phone: a.Phone, Password: a.Password})
	case confirm.Result:
		m.popup = nil
		if _, ok := a.Context.(logoutRequest); ok && a.Confirmed {
			m.core.Send(app.Logout{})
		}
	case searchbox.Cancel, loginform.Cancel, helpbindings.Close:
		m.popup = nil
	}
	return m, nil
}

func (m *Model) handleUIEvent(ev app.UIEvent) {
	switch ev := ev.(type) {
	case app.StatusLine:
		m.status = ev.Message
	case app.SearchResults:
		m.results.SetTitle("Search: " + ev.Text)
		m.results.SetTracks(ev.Tracks, m.indexOfPlaying(ev.Tracks))
	case app.PlaylistOpened:
		m.opened.SetTitle(ev.Detail.Name)
		m.opened.SetTracks(ev.Detail.Tracks, m.indexOfPlaying(ev.Detail.Tracks))
		if m.view == ViewPlaylists {
			m.tracksFocused = true
			m.applyFocus()
		}
	case app.PlaylistListed:
		m.playlists.Add(ev.Playlist, ev.Mine)
	case app.LoggedIn:
		m.refresh()
	case app.LoggedOut:
		m.playlists.Clear()
		m.opened.SetTitle("Playlist")
		m.opened.SetTracks(nil, -1)
		if m.view == ViewPlaylists {
			m.tracksFocused = false
			m.applyFocus()
		}
		m.refresh()
	case app.CoverLoaded:
		if err := m.cover.load(ev.TrackID, ev.Image); err != nil {
			m.status = "Cover art unavailable: " + err.Error()
		}
	}
}

func (m Model) playingID() int64 {
	if m.snap.Track == nil {
		return 0
	}
	return m.snap.Track.ID
}
