// Package loginform is the phone and password login popup.
package loginform

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/netwaves/internal/ui/action"
	"github.com/llehouerou/netwaves/internal/ui/popup"
	"github.com/llehouerou/netwaves/internal/ui/styles"
)

const source = "login"

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Submit carries the credentials once both fields are filled.
type Submit struct {
	Phone    string
	Password string
}

// ActionType implements action.Action.
func (Submit) ActionType() string { return "loginform.submit" }

// Cancel closes the form.
type Cancel struct{}

// ActionType implements action.Action.
func (Cancel) ActionType() string { return "loginform.cancel" }

const (
	fieldPhone = iota
	fieldPassword
)

// Model is the login form.
type Model struct {
	fields [2]textinput.Model
	focus  int
	hint   string
}

// New creates an empty form with the phone field focused.
func New() *Model {
	phone := textinput.New()
	phone.Placeholder = "Phone number"
	phone.CharLimit = 20
	phone.Width = 30

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 64
	password.Width = 30
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	m := &Model{fields: [2]textinput.Model{phone, password}}
	m.setFocus(fieldPhone)
	return m
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Title implements popup.Popup.
func (m *Model) Title() string {
	return "Log in"
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, action.Emit(source, Cancel{})
		case "tab", "down", "shift+tab", "up":
			m.setFocus(1 - m.focus)
			return m, nil
		case "enter":
			return m, m.submit()
		}
		if m.focus == fieldPhone && key.Type == tea.KeyRunes {
			key.Runes = phoneRunes(key.Runes)
			if len(key.Runes) == 0 {
				return m, nil
			}
			msg = key
		}
	}
	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) submit() tea.Cmd {
	phone := strings.TrimSpace(m.fields[fieldPhone].Value())
	password := m.fields[fieldPassword].Value()
	switch {
	case phone == "":
		m.hint = "Enter your phone number"
		m.setFocus(fieldPhone)
		return nil
	case password == "":
		m.hint = "Enter your password"
		m.setFocus(fieldPassword)
		return nil
	}
	m.hint = ""
	return action.Emit(source, Submit{Phone: phone, Password: password})
}

func (m *Model) setFocus(field int) {
	m.focus = field
	for i := range m.fields {
		if i == field {
			m.fields[i].Focus()
		} else {
			m.fields[i].Blur()
		}
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	view := m.fields[fieldPhone].View() + "\n" + m.fields[fieldPassword].View()
	if m.hint != "" {
		view += "\n\n" + styles.T().S().Warning.Render(m.hint)
	}
	return view
}

// phoneRunes keeps the characters a phone number may contain.
func phoneRunes(rs []rune) []rune {
	out := rs[:0:0]
	for _, r := range rs {
		if (r >= '0' && r <= '9') || r == '+' {
			out = append(out, r)
		}
	}
	return out
}
