package playback

// State represents the playback state.
//
//	Idle ──play──▶ Playing ◀──resume── Paused
//	  ▲              │  └────pause────▶  │
//	  └─exhausted────┘                   │
//	Error ◀──engine failure── any; left by play
type State int

const (
	StateIdle State = iota
	StatePlaying
	StatePaused
	StateError
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a track is loaded (playing or paused).
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}
