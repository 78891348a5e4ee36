// Package icons selects the glyphs used by the terminal UI.
package icons

import "github.com/llehouerou/netwaves/internal/playlist"

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for one style.
type Icons struct {
	Track      string
	Playlist   string
	Mine       string
	Single     string
	SingleLoop string
	Sequential string
	LoopAll    string
	Shuffle    string
	Favorite   string
	NotFav     string
	User       string
}

var (
	nerdIcons = Icons{
		Track:      " ", // nf-fa-music
		Playlist:   "󰲸 ",      // nf-md-playlist_music
		Mine:       " ", // nf-fa-user
		Single:     "󰎤",       // nf-md-numeric_1_box_outline
		SingleLoop: "󰑘",       // nf-md-repeat_once
		Sequential: "󰒿",       // nf-md-skip_next_outline
		LoopAll:    "󰑖",       // nf-md-repeat
		Shuffle:    "󰒟",       // nf-md-shuffle
		Favorite:   "󰣐",       // nf-md-heart
		NotFav:     "󰣑",       // nf-md-heart_outline
		User:       "",  // nf-fa-user
	}

	unicodeIcons = Icons{
		Track:      "🎵 ",
		Playlist:   "📋 ",
		Mine:       "👤 ",
		Single:     "1️⃣",
		SingleLoop: "🔂",
		Sequential: "➡",
		LoopAll:    "🔁",
		Shuffle:    "🔀",
		Favorite:   "♥",
		NotFav:     "♡",
		User:       "👤",
	}

	noneIcons = Icons{
		Single:     "[1]",
		SingleLoop: "[R1]",
		Sequential: "[>]",
		LoopAll:    "[R]",
		Shuffle:    "[S]",
		Favorite:   "*",
		NotFav:     "-",
		User:       "@",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init selects the icon set. Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// FormatTrack formats a track title with the track icon.
func FormatTrack(title string) string {
	return current.Track + title
}

// FormatPlaylist formats a playlist name. Playlists the user created get
// their own marker.
func FormatPlaylist(name string, mine bool) string {
	if current == noneIcons {
		if mine {
			return name + " (mine)"
		}
		return name
	}
	if mine {
		return current.Mine + name
	}
	return current.Playlist + name
}

// Mode returns the icon for a playback mode.
func Mode(m playlist.Mode) string {
	switch m {
	case playlist.ModeSingle:
		return current.Single
	case playlist.ModeSingleLoop:
		return current.SingleLoop
	case playlist.ModeLoopAll:
		return current.LoopAll
	case playlist.ModeShuffle:
		return current.Shuffle
	default:
		return current.Sequential
	}
}

// Favorite returns the heart icon, filled or hollow.
func Favorite(on bool) string {
	if on {
		return current.Favorite
	}
	return current.NotFav
}

// User returns the profile icon.
func User() string {
	return current.User
}
