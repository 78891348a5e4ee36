package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/netwaves/internal/ui/headerbar"
	"github.com/llehouerou/netwaves/internal/ui/playerbar"
	"github.com/llehouerou/netwaves/internal/ui/popup"
	"github.com/llehouerou/netwaves/internal/ui/render"
	"github.com/llehouerou/netwaves/internal/ui/styles"
)

const (
	statusHeight  = 1
	popupWidth    = 50
	minWidth      = 40
	minHeight     = 12
	playlistRatio = 3
)

var tabs = []headerbar.Tab{
	{Key: "F1", Name: "Queue"},
	{Key: "F2", Name: "Search"},
	{Key: "F3", Name: "Playlists"},
}

func (m Model) bodyHeight() int {
	return max(m.height-headerbar.Height-statusHeight-playerbar.Height, 0)
}

func (m *Model) resize() {
	body := m.bodyHeight()
	m.queue.SetSize(m.width, body)
	m.results.SetSize(m.width, body)
	left := m.width / playlistRatio
	m.playlists.SetSize(left, body)
	m.opened.SetSize(m.width-left, body)
	m.refresh()
}

// View renders the screen.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.width < minWidth || m.height < minHeight {
		return styles.T().S().Muted.Render("Terminal too small")
	}

	header := headerbar.Render(headerbar.State{
		Tabs:    tabs,
		Active:  int(m.view),
		User:    m.user(),
		Pending: m.snap.Pending,
	}, m.width)

	showCover := m.cover.shown(m.playingID())
	bar := playerbar.Render(m.playerState(showCover), m.width)

	view := strings.Join([]string{
		header,
		m.renderBody(),
		render.Clip(styles.T().S().Muted.Render(" "+m.status), m.width),
		bar,
	}, "\n")

	if m.popup != nil {
		box := popup.Box(m.popup.Title(), m.popup.View(), footer(m.popup), popupWidth)
		view = popup.Overlay(view, box, m.width, m.height)
	}

	view = m.cover.pending + view
	if showCover {
		// Just inside the top border of the player bar.
		row := m.height - playerbar.Height + 2
		view += m.cover.placement(row, playerbar.ArtColumn)
	}
	return view
}

// footer returns the popup's own hint, if it has one.
func footer(p popup.Popup) string {
	if f, ok := p.(interface{ Footer() string }); ok {
		return f.Footer()
	}
	return "enter confirm · esc cancel"
}

func (m Model) renderBody() string {
	switch m.view {
	case ViewSearch:
		return m.results.View()
	case ViewPlaylists:
		return lipgloss.JoinHorizontal(lipgloss.Top, m.playlists.View(), m.opened.View())
	default:
		return m.queue.View()
	}
}

func (m Model) user() string {
	if !m.snap.LoggedIn {
		return ""
	}
	if m.snap.Profile.Nickname == "" {
		return "Logged in"
	}
	return m.snap.Profile.Nickname
}

func (m Model) playerState(showCover bool) playerbar.State {
	s := playerbar.State{
		Status:        m.snap.State,
		Track:         m.snap.Track,
		Position:      m.snap.Position,
		Duration:      m.snap.Duration,
		Mode:          m.snap.Mode,
		Error:         m.snap.LastError,
		Favorite:      m.snap.Favorite,
		FavoriteKnown: m.snap.FavoriteKnown,
	}
	if showCover {
		s.ArtWidth = coverCols
	}
	return s
}
