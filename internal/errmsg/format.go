// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Account operations
	OpLogin         Op = "log in"
	OpUserPlaylists Op = "load your playlists"

	// Playlist operations
	OpPlaylistLoad   Op = "load playlist"
	OpPlaylistRemove Op = "remove track from list"

	// Queue operations
	OpQueueLoad Op = "load queue"
	OpQueueSave Op = "save queue"

	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpTrackLookup   Op = "look up track"
	OpPlaybackSeek  Op = "seek"

	// Favorites
	OpFavoriteToggle Op = "update favorites"
	OpFavoriteCheck  Op = "check favorite status"

	// Search
	OpSearch Op = "search"

	// Network fetches
	OpArtworkLoad Op = "load album art"
	OpAvatarLoad  Op = "load avatar"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
