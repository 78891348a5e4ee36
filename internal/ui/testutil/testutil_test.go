package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/netwaves/internal/ui/action"
	"github.com/llehouerou/netwaves/internal/ui/popup"
)

func TestStripANSI(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e60026")).Render("hi")
	assert.Equal(t, "hi", StripANSI(styled))
	assert.Equal(t, "plain", StripANSI("plain"))
}

func TestFindLine(t *testing.T) {
	out := "first\n\x1b[1msecond line\x1b[0m\nthird"
	assert.Equal(t, "second line", FindLine(out, "second"))
	assert.Empty(t, FindLine(out, "missing"))
}

type echo struct{ last string }

func (e *echo) Init() tea.Cmd { return nil }
func (e *echo) Title() string { return "Echo" }
func (e *echo) View() string  { return "\x1b[1m" + e.last + "\x1b[0m" }

func (e *echo) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		e.last = k.String()
		if k.Type == tea.KeyEnter {
			return e, action.Emit("echo", done{})
		}
	}
	return e, nil
}

type done struct{}

func (done) ActionType() string { return "echo.done" }

func TestPopupHarness(t *testing.T) {
	h := NewPopupHarness(&echo{})

	assert.Nil(t, h.SendKey("x"))
	assert.Equal(t, "x", h.View())
	assert.Nil(t, h.LastAction())

	h.SendEnter()
	assert.Equal(t, done{}, h.LastAction())
	assert.Equal(t, "enter", h.View())
}
