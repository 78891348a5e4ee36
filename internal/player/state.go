package player

// State represents the engine state machine.
//
// The state machine has three states with the following valid transitions:
//
//	┌──────────┐      play       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Playing │
//	└──────────┘                 └──────────┘
//	     ▲                            │ │
//	     │ stop/finish          pause │ │ stop/finish
//	     │                            ▼ │
//	     │                       ┌──────────┐
//	     └───────────────────────│  Paused  │
//	                  stop       └──────────┘
//	                                  │
//	                           resume │
//	                                  │
//	                                  ▼
//	                             Playing
//
// Valid transitions:
//   - Stopped → Playing (via Play)
//   - Playing → Paused  (via Pause)
//   - Playing → Stopped (via Stop, Clear or end of track)
//   - Paused  → Playing (via Resume)
//   - Paused  → Stopped (via Stop or Clear)
//
// Invalid/No-op transitions (handled gracefully):
//   - Stopped → Paused  (ignored)
//   - Stopped → Stopped (ignored)
//   - Paused  → Paused  (ignored)
//   - Playing → Playing (Play() stops the current track first)
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanResume returns true if the state allows resuming.
func (s State) CanResume() bool {
	return s == Paused
}
