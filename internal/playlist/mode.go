package playlist

import (
	"fmt"
	"strings"
)

// Mode decides what happens when the current track finishes.
type Mode int

const (
	ModeSingle     Mode = iota // stop after the current track
	ModeSingleLoop             // repeat the current track
	ModeSequential             // play through the queue once
	ModeLoopAll                // play through the queue, wrapping around
	ModeShuffle                // pick another track at random
)

var modeNames = [...]string{
	ModeSingle:     "single",
	ModeSingleLoop: "single-loop",
	ModeSequential: "sequential",
	ModeLoopAll:    "loop-all",
	ModeShuffle:    "shuffle",
}

// String returns the config name of the mode.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// Label returns a human readable name for notifications.
func (m Mode) Label() string {
	switch m {
	case ModeSingle:
		return "Single track"
	case ModeSingleLoop:
		return "Repeat track"
	case ModeSequential:
		return "Sequential"
	case ModeLoopAll:
		return "Repeat all"
	case ModeShuffle:
		return "Shuffle"
	default:
		return "Unknown"
	}
}

// Next returns the following mode in cycling order.
func (m Mode) Next() Mode {
	return Mode((int(m) + 1) % len(modeNames))
}

// ParseMode parses a config name (case-insensitive, "_" accepted for "-").
func ParseMode(s string) (Mode, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return ModeSequential, fmt.Errorf("unknown playback mode %q", s)
}
