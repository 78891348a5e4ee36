package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/netwaves/internal/ui/action"
	"github.com/llehouerou/netwaves/internal/ui/popup"
)

// PopupHarness wraps a popup for testing, collecting the commands it returns.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness creates a harness for any popup.Popup implementation.
// The init command is not run: it usually starts a cursor blink.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	return &PopupHarness{popup: p}
}

// Popup returns the underlying popup for type assertion when needed.
func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

// View returns the popup's rendered content without escape sequences.
func (h *PopupHarness) View() string {
	return StripANSI(h.popup.View())
}

// SendMsg sends any message to the popup and returns the resulting command.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates typing key.
func (h *PopupHarness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (enter, escape, tab, etc.).
func (h *PopupHarness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// SendEnter sends the enter key.
func (h *PopupHarness) SendEnter() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEnter)
}

// SendEscape sends the escape key.
func (h *PopupHarness) SendEscape() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEscape)
}

// SendUp sends the up arrow key.
func (h *PopupHarness) SendUp() tea.Cmd {
	return h.SendSpecialKey(tea.KeyUp)
}

// SendDown sends the down arrow key.
func (h *PopupHarness) SendDown() tea.Cmd {
	return h.SendSpecialKey(tea.KeyDown)
}

// LastCommand returns the most recent command, or nil if none.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// LastAction runs the most recent command and returns the action it raised,
// or nil when it raised none.
func (h *PopupHarness) LastAction() action.Action {
	cmd := h.LastCommand()
	if cmd == nil {
		return nil
	}
	if msg, ok := cmd().(action.Msg); ok {
		return msg.Action
	}
	return nil
}
