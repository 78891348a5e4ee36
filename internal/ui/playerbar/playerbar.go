// Package playerbar renders the now-playing bar at the bottom of the screen.
package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/netwaves/internal/icons"
	"github.com/llehouerou/netwaves/internal/playback"
	"github.com/llehouerou/netwaves/internal/playlist"
	"github.com/llehouerou/netwaves/internal/ui"
	"github.com/llehouerou/netwaves/internal/ui/render"
	"github.com/llehouerou/netwaves/internal/ui/styles"
)

// Height is the player bar height: two content rows plus the border.
const Height = 4

// ArtColumn is the 1-based column where the content, and the cover, starts.
const ArtColumn = 4

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	idleSymbol  = "■"
	errorSymbol = "✗"

	filledBlock = "━"
	emptyBlock  = "─"

	minInfoWidth = 8
)

// State holds everything needed to render the player bar.
type State struct {
	Status   playback.State
	Track    *playlist.Track
	Position time.Duration
	Duration time.Duration
	Mode     playlist.Mode
	Error    string

	// Favorite is shown only when FavoriteKnown is set.
	Favorite      bool
	FavoriteKnown bool

	// ArtWidth reserves that many columns on the left for the cover image.
	ArtWidth int
}

// Render returns the player bar for the given width.
func Render(s State, width int) string {
	inner := max(width-6, 0) // border and padding

	var gutter string
	if s.ArtWidth > 0 && inner-s.ArtWidth-1 >= minInfoWidth {
		gutter = strings.Repeat(" ", s.ArtWidth+1)
		inner -= s.ArtWidth + 1
	}

	top := gutter + renderInfo(s, inner)
	bottom := gutter + renderProgress(s, inner)

	return barStyle().
		Padding(0, 2).
		Width(width - 2).
		Render(top + "\n" + bottom)
}

func renderInfo(s State, width int) string {
	right := renderFlags(s)
	avail := width - lipgloss.Width(right) - 1
	if avail < minInfoWidth {
		right = ""
		avail = width
	}

	var left string
	switch {
	case s.Status == playback.StateError:
		msg := s.Error
		if msg == "" {
			msg = "Playback error"
		}
		left = styles.T().S().Error.Render(render.Truncate(errorSymbol+" "+msg, avail))
	case s.Track == nil:
		left = styles.T().S().Muted.Render(render.Truncate("Nothing playing", avail))
	default:
		left = renderTrack(*s.Track, avail)
	}
	return render.Row(left, right, width)
}

// renderTrack shows "Title   Artists · Album", shortening the info first.
func renderTrack(t playlist.Track, width int) string {
	title := t.Title
	if title == "" {
		title = "Unknown Track"
	}
	var parts []string
	if artists := t.ArtistNames(); artists != "" {
		parts = append(parts, artists)
	}
	if t.Album != "" {
		parts = append(parts, t.Album)
	}
	info := strings.Join(parts, " · ")

	const sep = "   "
	titleWidth := lipgloss.Width(title)
	if info == "" || titleWidth+len(sep) >= width {
		return styles.T().S().Title.Render(render.Truncate(title, width))
	}
	infoWidth := width - titleWidth - len(sep)
	return styles.T().S().Title.Render(title) + sep +
		styles.T().S().Muted.Render(render.Truncate(info, infoWidth))
}

func renderFlags(s State) string {
	var parts []string
	if s.FavoriteKnown {
		fav := icons.Favorite(s.Favorite)
		if s.Favorite {
			fav = styles.T().S().Favorite.Render(fav)
		}
		parts = append(parts, fav)
	}
	parts = append(parts, styles.T().S().Muted.Render(icons.Mode(s.Mode)+" "+s.Mode.Label()))
	return strings.Join(parts, "  ")
}

// renderProgress renders "▶  ━━━━───────  1:23 / 3:58".
func renderProgress(s State, width int) string {
	status := idleSymbol
	switch s.Status {
	case playback.StatePlaying:
		status = playSymbol
	case playback.StatePaused:
		status = pauseSymbol
	case playback.StateError:
		status = errorSymbol
	case playback.StateIdle:
	}

	duration := s.Duration
	if duration == 0 && s.Track != nil {
		duration = s.Track.Duration
	}
	timeStr := render.Progress(s.Position, duration)

	barWidth := width - lipgloss.Width(status) - lipgloss.Width(timeStr) - 4
	if barWidth < ui.MinProgressBarWidth {
		return status + "  " + timeStr
	}

	var ratio float64
	if duration > 0 {
		ratio = float64(s.Position) / float64(duration)
	}
	filled := min(max(int(float64(barWidth)*ratio), 0), barWidth)
	bar := filledStyle().Render(strings.Repeat(filledBlock, filled)) +
		emptyStyle().Render(strings.Repeat(emptyBlock, barWidth-filled))

	return status + "  " + bar + "  " + styles.T().S().Muted.Render(timeStr)
}

func barStyle() lipgloss.Style {
	return styles.PanelStyle(false)
}

func filledStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Primary)
}

func emptyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().FgSubtle)
}
