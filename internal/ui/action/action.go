// Package action defines how UI components report what the user did.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a component asks the root model to do.
// ActionType names it for logging.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the component that raised it.
type Msg struct {
	Source string // "queue", "search", "playlists", "login", ...
	Action Action
}

// Emit returns a command delivering a as a Msg from source.
func Emit(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
