package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestBox(t *testing.T) {
	out := ansi.Strip(Box("Login", "phone\npassword", "esc: cancel", 30))

	assert.Contains(t, out, "Login")
	assert.Contains(t, out, "password")
	assert.Contains(t, out, "esc: cancel")
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 30, ansi.StringWidth(line), "line %q", line)
	}
}

func TestOverlay_Centers(t *testing.T) {
	base := strings.Repeat(strings.Repeat(".", 10)+"\n", 5)
	base = strings.TrimSuffix(base, "\n")

	out := Overlay(base, "XX\nXX", 10, 5)
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 5)
	assert.Equal(t, "..........", lines[0])
	assert.Equal(t, "....XX....", lines[1])
	assert.Equal(t, "....XX....", lines[2])
	assert.Equal(t, "..........", lines[3])
}

func TestOverlay_ShortBase(t *testing.T) {
	out := Overlay("", "ab", 6, 3)
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 3)
	assert.Equal(t, "  ab  ", lines[1])
}

func TestOverlay_WideCharacterBoundary(t *testing.T) {
	base := "長長長長長"
	out := Overlay(base, "X", 10, 1)

	assert.Equal(t, 10, ansi.StringWidth(out))
	assert.Contains(t, out, "X")
}
