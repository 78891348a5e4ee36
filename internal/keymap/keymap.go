package keymap

import "slices"

// Binding describes a single key binding. Panel keys (navigation, enter,
// delete) are listed for help only; the panels handle them.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "list", "queue", "playlists"
}

// Bindings contains all key bindings, in help order.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionSwitchFocus, []string{"tab"}, "Next view", "global"},
	{ActionViewQueue, []string{"f1", "1"}, "Queue", "global"},
	{ActionViewSearch, []string{"f2", "2"}, "Search results", "global"},
	{ActionViewPlaylists, []string{"f3", "3"}, "Playlists", "global"},
	{ActionSearch, []string{"/"}, "Search", "global"},
	{ActionLogin, []string{"L"}, "Log in", "global"},
	{ActionLogout, []string{"ctrl+l"}, "Log out", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionNextTrack, []string{"n", "pgdown"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"p", "pgup"}, "Previous track", "playback"},
	{ActionSeekForward, []string{"right", "shift+right"}, "Seek +5s", "playback"},
	{ActionSeekBack, []string{"left", "shift+left"}, "Seek -5s", "playback"},
	{ActionCycleMode, []string{"m"}, "Cycle playback mode", "playback"},
	{ActionToggleShuffle, []string{"s"}, "Toggle shuffle", "playback"},
	{ActionToggleFavorite, []string{"f"}, "Toggle favorite", "playback"},
	{ActionJumpToPlaying, []string{"."}, "Jump to playing track", "playback"},
}

// ListBindings document the keys every track list handles itself.
var ListBindings = []Binding{
	{"move", []string{"j", "k"}, "Move", "list"},
	{"play", []string{"enter"}, "Play track", "list"},
	{"play_all", []string{"r"}, "Play all", "list"},
	{"remove", []string{"d"}, "Remove from queue", "queue"},
	{"open", []string{"enter"}, "Open playlist", "playlists"},
	{"play_playlist", []string{"r"}, "Play playlist", "playlists"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, b := range slices.Concat(Bindings, ListBindings) {
		if b.Context == context {
			result = append(result, b)
		}
	}
	return result
}
