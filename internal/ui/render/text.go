// Package render provides text rendering utilities for TUI components.
package render

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// Sanitize removes control characters (except tab) and invalid UTF-8 bytes,
// and turns non-breaking spaces into spaces. API titles are not trusted.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
		case r != '\t' && unicode.IsControl(r):
		case r == '\u00a0':
			b.WriteByte(' ')
		default:
			b.WriteString(s[i : i+size])
		}
		i += max(size, 1)
	}
	return b.String()
}

func needsSanitize(s string) bool {
	for i := range len(s) {
		c := s[i]
		if c < 0x20 && c != '\t' {
			return true
		}
		if c >= 0x80 && c <= 0x9f {
			return true
		}
		if c == 0xc2 && i+1 < len(s) && s[i+1] == 0xa0 {
			return true
		}
	}
	return !utf8.ValidString(s)
}

// Truncate elides s to maxWidth cells with a single-character ellipsis.
// Wide characters (CJK, emoji) count as two cells.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, ellipsis)
}

// Pad fills s with spaces to reach width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad returns s at exactly width cells.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Clip cuts an already styled line to width cells, keeping escape sequences
// intact.
func Clip(styled string, width int) string {
	if lipgloss.Width(styled) <= width {
		return styled
	}
	return ansi.Truncate(styled, width, ellipsis)
}

// Row puts left and right at the two ends of a width-cell line.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}

// EmptyLine creates an empty line (spaces) of the specified width.
func EmptyLine(width int) string {
	return strings.Repeat(" ", max(width, 0))
}

// Duration formats d as m:ss, or h:mm:ss past an hour.
func Duration(d time.Duration) string {
	d = max(d, 0).Truncate(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// Progress formats "position / duration".
func Progress(position, duration time.Duration) string {
	return Duration(position) + " / " + Duration(duration)
}
