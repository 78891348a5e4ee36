// Package popup frames modal components and draws them over the main view.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/netwaves/internal/ui/styles"
)

// Box frames content with a rounded border, a title and a footer hint.
func Box(title, content, footer string, width int) string {
	t := styles.T()
	inner := max(width-4, 1) // border and padding

	var b strings.Builder
	if title != "" {
		b.WriteString(lipgloss.PlaceHorizontal(inner, lipgloss.Center, styles.Brand(title)))
		b.WriteString("\n\n")
	}
	b.WriteString(content)
	if footer != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(inner, lipgloss.Center, t.S().Subtle.Render(footer)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(0, 1).
		Width(inner + 2).
		Render(b.String())
}

// Overlay draws box centered over base, a width x height screen.
// Escape sequences in both are kept intact.
func Overlay(base, box string, width, height int) string {
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	boxLines := strings.Split(box, "\n")
	boxWidth := lipgloss.Width(box)

	top := max((height-len(boxLines))/2, 0)
	left := max((width-boxWidth)/2, 0)

	for i, line := range boxLines {
		row := top + i
		if row >= len(baseLines) {
			break
		}
		baseLine := baseLines[row]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		prefix := ansi.Cut(baseLine, 0, left)
		// A wide character cut in half leaves the prefix short.
		if w := ansi.StringWidth(prefix); w < left {
			prefix += strings.Repeat(" ", left-w)
		}
		end := left + ansi.StringWidth(line)
		suffix := ""
		if end < width {
			suffix = fitLeft(ansi.Cut(baseLine, end, width), width-end)
		}
		baseLines[row] = prefix + line + suffix
	}
	return strings.Join(baseLines[:max(height, len(baseLines))], "\n")
}

// fitLeft pads or trims the left edge of s to exactly width cells, for
// suffixes that start inside a wide character.
func fitLeft(s string, width int) string {
	w := ansi.StringWidth(s)
	switch {
	case w < width:
		return strings.Repeat(" ", width-w) + s
	case w > width:
		return " " + ansi.Cut(s, w-width+1, w)
	}
	return s
}
