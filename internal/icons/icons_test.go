//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import (
	"testing"

	"github.com/llehouerou/netwaves/internal/playlist"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name  string
		style string
		want  Icons
	}{
		{"nerd style", "nerd", nerdIcons},
		{"unicode style", "unicode", unicodeIcons},
		{"none style", "none", noneIcons},
		{"empty string defaults to none", "", noneIcons},
		{"unknown style defaults to none", "invalid", noneIcons},
		{"case sensitive - NERD defaults to none", "NERD", noneIcons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)
			if current != tt.want {
				t.Errorf("Init(%q) selected the wrong icon set", tt.style)
			}
		})
	}

	Init("none")
}

func TestFormatPlaylist(t *testing.T) {
	tests := []struct {
		style string
		mine  bool
		want  string
	}{
		{"none", false, "Road"},
		{"none", true, "Road (mine)"},
		{"unicode", false, "📋 Road"},
		{"unicode", true, "👤 Road"},
	}

	for _, tt := range tests {
		Init(tt.style)
		if got := FormatPlaylist("Road", tt.mine); got != tt.want {
			t.Errorf("FormatPlaylist(%q, %v) with %s = %q, want %q", "Road", tt.mine, tt.style, got, tt.want)
		}
	}

	Init("none")
}

func TestMode(t *testing.T) {
	Init("none")
	defer Init("none")

	tests := []struct {
		mode playlist.Mode
		want string
	}{
		{playlist.ModeSingle, "[1]"},
		{playlist.ModeSingleLoop, "[R1]"},
		{playlist.ModeSequential, "[>]"},
		{playlist.ModeLoopAll, "[R]"},
		{playlist.ModeShuffle, "[S]"},
	}
	for _, tt := range tests {
		if got := Mode(tt.mode); got != tt.want {
			t.Errorf("Mode(%v) = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestFavorite(t *testing.T) {
	Init("unicode")
	defer Init("none")

	if got := Favorite(true); got != "♥" {
		t.Errorf("Favorite(true) = %q, want %q", got, "♥")
	}
	if got := Favorite(false); got != "♡" {
		t.Errorf("Favorite(false) = %q, want %q", got, "♡")
	}
}

func TestFormatTrack_None(t *testing.T) {
	Init("none")
	if got := FormatTrack("Song"); got != "Song" {
		t.Errorf("FormatTrack() = %q, want %q", got, "Song")
	}
}
