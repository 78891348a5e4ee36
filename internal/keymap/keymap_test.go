package keymap

import (
	"slices"
	"testing"
)

func TestBindingsHaveRequiredFields(t *testing.T) {
	for i, b := range slices.Concat(Bindings, ListBindings) {
		if b.Action == "" {
			t.Errorf("binding[%d] has empty Action", i)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding[%d] (%s) has no Keys", i, b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding[%d] (%s) has empty Description", i, b.Action)
		}
	}
}

func TestBindingsHaveValidContexts(t *testing.T) {
	validContexts := map[string]bool{
		"global":    true,
		"playback":  true,
		"list":      true,
		"queue":     true,
		"playlists": true,
	}

	for i, b := range slices.Concat(Bindings, ListBindings) {
		if !validContexts[b.Context] {
			t.Errorf("binding[%d] (%s) has invalid context: %q", i, b.Action, b.Context)
		}
	}
}

func TestGlobalKeysAreUnique(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range Bindings {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %s and %s", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestGlobalKeysDoNotShadowLists(t *testing.T) {
	r := NewResolver(Bindings)
	for _, b := range ListBindings {
		for _, k := range b.Keys {
			if a := r.Resolve(k); a != "" {
				t.Errorf("list key %q is also bound globally to %s", k, a)
			}
		}
	}
}

func TestByContextPlayback(t *testing.T) {
	want := []Action{ActionPlayPause, ActionNextTrack, ActionPrevTrack, ActionCycleMode, ActionToggleFavorite}

	got := ByContext("playback")
	for _, action := range want {
		found := false
		for _, b := range got {
			if b.Action == action {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected action %q in playback bindings", action)
		}
	}
}
