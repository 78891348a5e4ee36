// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchFocus Action = "switch_focus"
	ActionSearch      Action = "search"
	ActionLogin       Action = "login"
	ActionLogout      Action = "logout"
	ActionHelp        Action = "help"

	// View switching
	ActionViewQueue     Action = "view_queue"
	ActionViewSearch    Action = "view_search"
	ActionViewPlaylists Action = "view_playlists"

	// Playback actions
	ActionPlayPause      Action = "play_pause"
	ActionNextTrack      Action = "next_track"
	ActionPrevTrack      Action = "prev_track"
	ActionSeekForward    Action = "seek_forward"
	ActionSeekBack       Action = "seek_back"
	ActionCycleMode      Action = "cycle_mode"
	ActionToggleShuffle  Action = "toggle_shuffle"
	ActionToggleFavorite Action = "toggle_favorite"
	ActionJumpToPlaying  Action = "jump_to_playing"
)
