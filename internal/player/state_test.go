package player

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/netwaves/internal/playlist"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Stopped, "Stopped"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("State.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestState_IsActive(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Stopped, false},
		{Playing, true},
		{Paused, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.IsActive(); got != tt.want {
				t.Errorf("State.IsActive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestState_CanPause(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Stopped, false},
		{Playing, true},
		{Paused, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.CanPause(); got != tt.want {
				t.Errorf("State.CanPause() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestState_CanResume(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Stopped, false},
		{Playing, false},
		{Paused, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.CanResume(); got != tt.want {
				t.Errorf("State.CanResume() = %v, want %v", got, tt.want)
			}
		})
	}
}

var testTrack = playlist.Track{ID: 1, Title: "test"}

// TestMock_StateTransitions validates the state machine using the Mock engine.
func TestMock_StateTransitions(t *testing.T) {
	t.Run("Stopped to Playing via Play", func(t *testing.T) {
		m := NewMock()
		if m.State() != Stopped {
			t.Fatalf("initial state = %v, want Stopped", m.State())
		}

		_ = m.Play(testTrack)

		if m.State() != Playing {
			t.Errorf("state after Play = %v, want Playing", m.State())
		}
		if !m.HasMedia() {
			t.Error("HasMedia() = false after Play")
		}
	})

	t.Run("Playing to Paused via Pause", func(t *testing.T) {
		m := NewMock()
		_ = m.Play(testTrack)

		m.Pause()

		if m.State() != Paused {
			t.Errorf("state after Pause = %v, want Paused", m.State())
		}
	})

	t.Run("Paused to Playing via Resume", func(t *testing.T) {
		m := NewMock()
		_ = m.Play(testTrack)
		m.Pause()

		m.Resume()

		if m.State() != Playing {
			t.Errorf("state after Resume = %v, want Playing", m.State())
		}
	})

	t.Run("Playing to Stopped via Stop", func(t *testing.T) {
		m := NewMock()
		_ = m.Play(testTrack)

		m.Stop()

		if m.State() != Stopped {
			t.Errorf("state after Stop = %v, want Stopped", m.State())
		}
		if m.HasMedia() {
			t.Error("HasMedia() = true after Stop")
		}
	})

	t.Run("Paused to Stopped via Clear", func(t *testing.T) {
		m := NewMock()
		_ = m.Play(testTrack)
		m.Pause()

		m.Clear()

		if m.State() != Stopped {
			t.Errorf("state after Clear = %v, want Stopped", m.State())
		}
	})

	t.Run("Stopped ignores Pause", func(t *testing.T) {
		m := NewMock()

		m.Pause()

		if m.State() != Stopped {
			t.Errorf("state after Pause = %v, want Stopped", m.State())
		}
	})
}

func TestMock_AutoEvents(t *testing.T) {
	m := NewMock()
	m.SetAutoEvents(true)

	_ = m.Play(testTrack)
	m.SetMode(playlist.ModeShuffle)
	m.Clear()

	want := []Event{
		MediaChanged{Track: testTrack},
		DurationChanged{},
		StateChanged{State: Playing},
		ModeChanged{Mode: playlist.ModeShuffle},
		PlaylistEmpty{},
	}
	for i, w := range want {
		select {
		case got := <-m.Events():
			assert.Equal(t, w, got, "event %d", i)
		default:
			t.Fatalf("event %d missing, want %#v", i, w)
		}
	}
}
