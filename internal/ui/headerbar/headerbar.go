// Package headerbar renders the single-line header: brand, view tabs and
// the logged-in user.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/netwaves/internal/icons"
	"github.com/llehouerou/netwaves/internal/ui/render"
	"github.com/llehouerou/netwaves/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const brand = "netwaves"

// Tab is a switchable view.
type Tab struct {
	Key  string
	Name string
}

// State holds what the header shows.
type State struct {
	Tabs   []Tab
	Active int
	// User is the nickname, empty when logged out.
	User string
	// Pending is the number of network requests in flight.
	Pending int
}

// Render returns the header for the given width.
func Render(s State, width int) string {
	if width < 20 {
		return ""
	}
	t := styles.T()

	parts := make([]string, 0, len(s.Tabs))
	for i, tab := range s.Tabs {
		keyStyle, nameStyle := t.S().Subtle, t.S().Muted
		if i == s.Active {
			keyStyle, nameStyle = t.S().Playing, t.S().Playing
		}
		parts = append(parts, keyStyle.Render(tab.Key)+" "+nameStyle.Render(tab.Name))
	}
	left := styles.Brand(brand) + "  " + strings.Join(parts, t.S().Subtle.Render(" │ "))

	var right string
	if s.Pending > 0 {
		right = t.S().Subtle.Render(strings.Repeat("·", min(s.Pending, 5))) + " "
	}
	if s.User != "" {
		right += t.S().Base.Render(icons.User() + " " + s.User)
	} else {
		right += t.S().Subtle.Render("L Log in")
	}

	if lipgloss.Width(left)+lipgloss.Width(right)+1 > width {
		return render.Clip(left, width)
	}
	return render.Row(left, right, width)
}
