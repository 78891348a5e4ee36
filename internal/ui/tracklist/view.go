package tracklist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/netwaves/internal/playlist"
	"github.com/llehouerou/netwaves/internal/ui"
	"github.com/llehouerou/netwaves/internal/ui/render"
	"github.com/llehouerou/netwaves/internal/ui/styles"
)

const playingSymbol = "▶"

// View renders the panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight
	content := m.renderHeader(innerWidth) + "\n" +
		render.Separator(innerWidth) + "\n" +
		m.renderList(innerWidth, m.ListHeight())

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

func (m Model) renderHeader(width int) string {
	var count string
	if m.playing >= 0 {
		count = fmt.Sprintf("(%d/%d)", m.playing+1, len(m.tracks))
	} else {
		count = fmt.Sprintf("(%d)", len(m.tracks))
	}
	title := render.Truncate(m.title, max(width-len(count)-1, 0))
	return render.Row(styles.T().S().Title.Render(title), styles.T().S().Muted.Render(count), width)
}

func (m Model) renderList(width, height int) string {
	if height <= 0 {
		return ""
	}
	lines := make([]string, 0, height)
	if len(m.tracks) == 0 {
		lines = append(lines, styles.T().S().Subtle.Render(render.TruncateAndPad(m.empty, width)))
	}
	start, end := m.cursor.VisibleRange(len(m.tracks), height)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderLine(m.tracks[i], i, width))
	}
	for len(lines) < height {
		lines = append(lines, render.EmptyLine(width))
	}
	return strings.Join(lines, "\n")
}

// renderLine renders "▶ Title   Artists   3:05" at exactly width cells.
func (m Model) renderLine(t playlist.Track, idx, width int) string {
	prefix := "  "
	if idx == m.playing {
		prefix = playingSymbol + " "
	}

	duration := ""
	if t.Duration > 0 {
		duration = " " + render.Duration(t.Duration)
	}

	contentWidth := max(width-2-lipgloss.Width(duration), 0)
	titleWidth := contentWidth / 2
	artistWidth := contentWidth - titleWidth

	line := prefix +
		render.TruncateAndPad(t.Title, titleWidth) +
		render.TruncateAndPad(t.ArtistNames(), artistWidth) +
		duration

	return m.lineStyle(idx).Render(line)
}

func (m Model) lineStyle(idx int) lipgloss.Style {
	s := styles.T().S()
	isCursor := idx == m.cursor.Pos() && m.IsFocused()
	isPlaying := idx == m.playing

	switch {
	case isCursor && isPlaying:
		return s.Cursor.Inherit(s.Playing)
	case isCursor:
		return s.Cursor
	case isPlaying:
		return s.Playing
	default:
		return s.Base
	}
}
