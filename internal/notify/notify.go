// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"fmt"

	"github.com/llehouerou/netwaves/internal/playlist"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

const defaultTimeout = 4000

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// Disabled returns a notifier that drops everything.
func Disabled() Notifier { return &stubNotifier{} }

// NowPlaying describes a track that just started. icon may be empty.
func NowPlaying(t playlist.Track, icon string) Notification {
	body := t.ArtistNames()
	if t.Album != "" {
		if body != "" {
			body += " - "
		}
		body += t.Album
	}
	return Notification{
		Title:   t.Title,
		Body:    body,
		Icon:    icon,
		Timeout: defaultTimeout,
		Urgency: UrgencyLow,
	}
}

// ModeChanged announces a new playback mode.
func ModeChanged(m playlist.Mode) Notification {
	return Notification{
		Title:   "Playback mode",
		Body:    m.Label(),
		Icon:    "media-playlist-shuffle",
		Timeout: defaultTimeout,
		Urgency: UrgencyLow,
	}
}

// PlayerError reports a track that could not be played.
func PlayerError(msg string) Notification {
	return Notification{
		Title:   "Playback error",
		Body:    fmt.Sprintf("Cannot play this track: %s", msg),
		Icon:    "dialog-error",
		Timeout: defaultTimeout,
		Urgency: UrgencyNormal,
	}
}
