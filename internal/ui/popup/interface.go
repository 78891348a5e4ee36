package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component drawn over the main view.
type Popup interface {
	// Init returns the initial command (focus and cursor blink).
	Init() tea.Cmd

	// Update handles messages and returns updated popup + command.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the popup content without its frame.
	View() string

	// Title is shown in the frame.
	Title() string
}
