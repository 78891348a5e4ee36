//go:build linux

package notify

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHints(t *testing.T) {
	tests := []struct {
		name      string
		notif     Notification
		urgency   byte
		imagePath string
	}{
		{
			name:      "cached cover file",
			notif:     Notification{Icon: "/home/u/.cache/netwaves/covers/42.png", Urgency: UrgencyNormal},
			urgency:   1,
			imagePath: "file:///home/u/.cache/netwaves/covers/42.png",
		},
		{
			name:    "themed icon name",
			notif:   Notification{Icon: "audio-x-generic", Urgency: UrgencyLow},
			urgency: 0,
		},
		{
			name:    "relative path",
			notif:   Notification{Icon: "covers/42.png", Urgency: UrgencyCritical},
			urgency: 2,
		},
		{
			name:    "no icon",
			notif:   Notification{},
			urgency: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := hints(tt.notif)

			assert.Equal(t, tt.urgency, h["urgency"].Value())
			assert.Equal(t, "netwaves", h["desktop-entry"].Value())
			assert.Equal(t, "x-netwaves.music", h["category"].Value())

			img, ok := h["image-path"]
			if tt.imagePath == "" {
				assert.False(t, ok, "image-path only for absolute files")
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.imagePath, img.Value())
		})
	}
}

func TestDBusNotifier_Smoke(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	n, err := New()
	require.NoError(t, err)
	if _, ok := n.(*dbusNotifier); !ok {
		t.Skip("session bus unreachable")
	}

	id, err := n.Notify(Notification{Title: "netwaves", Body: "test", Timeout: 500, Urgency: UrgencyLow})
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.NoError(t, n.Close(id))
}
