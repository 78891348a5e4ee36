package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestGradient_KeepsText(t *testing.T) {
	got := Gradient("netwaves", false, "#ff0000", "#0000ff")
	plain := stripANSI(got)
	if plain != "netwaves" {
		t.Errorf("Gradient() text = %q, want %q", plain, "netwaves")
	}
}

func TestGradient_Empty(t *testing.T) {
	if got := Gradient("", true, "#ff0000", "#0000ff"); got != "" {
		t.Errorf("Gradient(\"\") = %q, want empty", got)
	}
}

func TestBlend_Endpoints(t *testing.T) {
	colors := blend(5, "#ff0000", "#0000ff")
	if len(colors) != 5 {
		t.Fatalf("blend() returned %d colors, want 5", len(colors))
	}
	if colors[0].Hex() == colors[4].Hex() {
		t.Errorf("blend() endpoints are equal: %s", colors[0].Hex())
	}
}

func TestToColorful_ANSIFallsBack(t *testing.T) {
	c := toColorful(lipgloss.Color("240"))
	if c.R != 0.5 || c.G != 0.5 || c.B != 0.5 {
		t.Errorf("toColorful(240) = %v, want gray", c)
	}
}

func TestPanelStyle_FocusColor(t *testing.T) {
	if PanelStyle(true).GetBorderTopForeground() != T().BorderFocus {
		t.Error("focused panel should use the focus border color")
	}
	if PanelStyle(false).GetBorderTopForeground() != T().Border {
		t.Error("unfocused panel should use the border color")
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && r == 'm':
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
