package confirm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/netwaves/internal/ui/testutil"
)

const testContext = "ctx"

func newTestConfirm() *testutil.PopupHarness {
	return testutil.NewPopupHarness(New("Log out", "Log out of nw?", testContext))
}

func TestConfirm(t *testing.T) {
	for _, key := range []string{"y", "Y"} {
		h := newTestConfirm()
		h.SendKey(key)
		assert.Equal(t, Result{Confirmed: true, Context: testContext}, h.LastAction(), key)
	}

	h := newTestConfirm()
	h.SendEnter()
	assert.Equal(t, Result{Confirmed: true, Context: testContext}, h.LastAction())
}

func TestCancel(t *testing.T) {
	for _, key := range []string{"n", "N"} {
		h := newTestConfirm()
		h.SendKey(key)
		assert.Equal(t, Result{Confirmed: false, Context: testContext}, h.LastAction(), key)
	}

	h := newTestConfirm()
	h.SendEscape()
	assert.Equal(t, Result{Confirmed: false, Context: testContext}, h.LastAction())
}

func TestOtherKeysIgnored(t *testing.T) {
	h := newTestConfirm()

	assert.Nil(t, h.SendKey("x"))
	assert.Nil(t, h.SendDown())
}

func TestView(t *testing.T) {
	h := newTestConfirm()

	assert.Equal(t, "Log out of nw?", h.View())
	assert.Equal(t, "Log out", h.Popup().Title())
}
