// Package confirm provides a yes/no confirmation popup component.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/netwaves/internal/ui/action"
	"github.com/llehouerou/netwaves/internal/ui/popup"
	"github.com/llehouerou/netwaves/internal/ui/styles"
)

const source = "confirm"

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Model is a yes/no confirmation popup.
type Model struct {
	title   string
	message string
	context any
}

// New creates a confirmation asking message. context comes back in Result.
func New(title, message string, context any) *Model {
	return &Model{title: title, message: message, context: context}
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Title implements popup.Popup.
func (m *Model) Title() string {
	return m.title
}

// Footer is the hint shown under the message.
func (m *Model) Footer() string {
	return "enter/y confirm · esc/n cancel"
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "enter", "y", "Y":
		return m, action.Emit(source, Result{Confirmed: true, Context: m.context})
	case "esc", "n", "N":
		return m, action.Emit(source, Result{Confirmed: false, Context: m.context})
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	return styles.T().S().Base.Render(m.message)
}
