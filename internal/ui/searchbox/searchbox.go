// Package searchbox is the search prompt popup.
package searchbox

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/netwaves/internal/ui/action"
	"github.com/llehouerou/netwaves/internal/ui/popup"
)

const source = "search"

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Submit carries the search text. Blank input is never submitted.
type Submit struct {
	Text string
}

// ActionType implements action.Action.
func (Submit) ActionType() string { return "searchbox.submit" }

// Cancel closes the prompt.
type Cancel struct{}

// ActionType implements action.Action.
func (Cancel) ActionType() string { return "searchbox.cancel" }

// Model is the search prompt.
type Model struct {
	input textinput.Model
}

// New creates a prompt with the last search pre-filled.
func New(last string) *Model {
	ti := textinput.New()
	ti.Placeholder = "Song, artist or album..."
	ti.CharLimit = 256
	ti.Width = 40
	ti.SetValue(last)
	ti.CursorEnd()
	ti.Focus()
	return &Model{input: ti}
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Title implements popup.Popup.
func (m *Model) Title() string {
	return "Search"
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, action.Emit(source, Cancel{})
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			return m, action.Emit(source, Submit{Text: text})
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	return m.input.View()
}
