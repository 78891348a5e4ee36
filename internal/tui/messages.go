package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/netwaves/internal/app"
)

// TickMsg refreshes the snapshot (position, queue, login state).
type TickMsg time.Time

// UIEventMsg carries an event from the core.
type UIEventMsg struct {
	Event app.UIEvent
}

// coreClosedMsg is sent when the core's event channel is closed.
type coreClosedMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForUI returns a command that blocks until the core has something to show.
func waitForUI(ch <-chan app.UIEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return coreClosedMsg{}
		}
		return UIEventMsg{Event: ev}
	}
}
