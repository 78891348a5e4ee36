//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
		{ActionNextTrack, []string{"n", "pgdown"}, "Next", "playback"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"n", ActionNextTrack},
		{"pgdown", ActionNextTrack},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := r.Resolve(tt.key)
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver(Bindings)

	tests := []struct {
		action   Action
		expected []string
	}{
		{ActionQuit, []string{"q", "ctrl+c"}},
		{ActionPlayPause, []string{" "}},
		{ActionSeekBack, []string{"left", "shift+left"}},
		{Action("unknown"), nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			result := r.KeysFor(tt.action)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("KeysFor(%q) = %v, want nil", tt.action, result)
				}
				return
			}
			if len(result) != len(tt.expected) {
				t.Errorf("KeysFor(%q) = %v, want %v", tt.action, result, tt.expected)
				return
			}
			for _, key := range tt.expected {
				if !slices.Contains(result, key) {
					t.Errorf("KeysFor(%q) missing key %q, got %v", tt.action, key, result)
				}
			}
		})
	}
}

func TestResolver_DeduplicatesKeys(t *testing.T) {
	bindings := []Binding{
		{ActionToggleFavorite, []string{"f"}, "Favorite", "playback"},
		{ActionToggleFavorite, []string{"f", "F"}, "Favorite", "queue"},
	}

	keys := NewResolver(bindings).KeysFor(ActionToggleFavorite)

	if len(keys) != 2 {
		t.Errorf("KeysFor() = %v, want [f F]", keys)
	}
}
