// Package helpbindings provides a scrollable popup for displaying keybindings.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/netwaves/internal/keymap"
	"github.com/llehouerou/netwaves/internal/ui/action"
	"github.com/llehouerou/netwaves/internal/ui/popup"
	"github.com/llehouerou/netwaves/internal/ui/render"
	"github.com/llehouerou/netwaves/internal/ui/styles"
)

const source = "help"

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Contexts lists every binding context in display order.
var Contexts = []string{"global", "playback", "list", "queue", "playlists"}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"global":    "General",
	"playback":  "Playback",
	"list":      "Track lists",
	"queue":     "Queue",
	"playlists": "Playlists",
}

// chrome is the popup frame around the visible lines: border, title, footer.
const chrome = 8

// Model holds the state for the help bindings popup.
type Model struct {
	lines        []string
	height       int
	scrollOffset int
}

// New creates the popup for the given contexts on a screen height rows tall.
func New(contexts []string, height int) *Model {
	return &Model{lines: buildLines(contexts), height: height}
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Title implements popup.Popup.
func (m *Model) Title() string {
	return "Keys"
}

// Footer is the hint shown under the bindings.
func (m *Model) Footer() string {
	if m.maxScroll() == 0 {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, action.Emit(source, Close{})
	case "j", "down":
		m.scrollOffset = min(m.scrollOffset+1, m.maxScroll())
	case "k", "up":
		m.scrollOffset = max(m.scrollOffset-1, 0)
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	end := min(m.scrollOffset+m.visibleHeight(), len(m.lines))
	return strings.Join(m.lines[m.scrollOffset:end], "\n")
}

func (m *Model) visibleHeight() int {
	return max(m.height-chrome, 5)
}

func (m *Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}

func buildLines(contexts []string) []string {
	s := styles.T().S()

	keyWidth := 0
	for _, ctx := range contexts {
		for _, b := range keymap.ByContext(ctx) {
			keyWidth = max(keyWidth, len(formatKeys(b.Keys)))
		}
	}

	var lines []string
	for _, ctx := range contexts {
		bindings := keymap.ByContext(ctx)
		if len(bindings) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		label := categoryLabels[ctx]
		if label == "" {
			label = ctx
		}
		lines = append(lines, s.Title.Render(label))
		for _, b := range bindings {
			lines = append(lines, s.Playing.Render(render.Pad(formatKeys(b.Keys), keyWidth))+"  "+
				s.Base.Render(b.Description))
		}
	}
	return lines
}

func formatKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, ", ")
}
