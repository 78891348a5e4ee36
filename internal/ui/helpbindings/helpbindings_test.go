package helpbindings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/netwaves/internal/ui/testutil"
)

func newTestHelpPopup(contexts []string, height int) (*testutil.PopupHarness, *Model) {
	m := New(contexts, height)
	return testutil.NewPopupHarness(m), m
}

func TestClose(t *testing.T) {
	for _, key := range []string{"?", "q"} {
		h, _ := newTestHelpPopup(Contexts, 40)
		h.SendKey(key)
		assert.Equal(t, Close{}, h.LastAction(), key)
	}

	h, _ := newTestHelpPopup(Contexts, 40)
	h.SendEscape()
	assert.Equal(t, Close{}, h.LastAction())
}

func TestScroll(t *testing.T) {
	h, m := newTestHelpPopup(Contexts, 20)
	require.Positive(t, m.maxScroll(), "all contexts need scrolling on a short screen")

	h.SendDown()
	h.SendKey("j")
	assert.Equal(t, 2, m.scrollOffset)

	h.SendUp()
	assert.Equal(t, 1, m.scrollOffset)

	h.SendKey("k")
	h.SendKey("k")
	assert.Equal(t, 0, m.scrollOffset, "stops at the top")

	for range 100 {
		h.SendDown()
	}
	assert.Equal(t, m.maxScroll(), m.scrollOffset, "stops at the bottom")
	assert.Len(t, strings.Split(h.View(), "\n"), m.visibleHeight())
	assert.Contains(t, m.Footer(), "scroll")
}

func TestNoScrollWhenEverythingFits(t *testing.T) {
	h, m := newTestHelpPopup([]string{"queue"}, 40)

	h.SendDown()

	assert.Equal(t, 0, m.scrollOffset)
	assert.Equal(t, "?/esc close", m.Footer())
}

func TestView(t *testing.T) {
	h, _ := newTestHelpPopup([]string{"global", "playback"}, 60)

	view := h.View()
	assert.Contains(t, view, "General")
	assert.Contains(t, view, "Playback")
	assert.Contains(t, view, "Toggle shuffle")
	assert.True(t, strings.HasPrefix(testutil.FindLine(view, "Play/pause"), "space "), "space is spelled out")
}
