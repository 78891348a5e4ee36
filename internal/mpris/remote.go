// Package mpris exposes the player on the session bus so media keys and
// desktop widgets can drive it.
package mpris

import (
	"fmt"

	"github.com/llehouerou/netwaves/internal/app"
	"github.com/llehouerou/netwaves/internal/playlist"
)

// Remote is the part of the core the adapter talks to.
type Remote interface {
	Send(cmd app.Command)
	Snapshot() app.Snapshot
}

func modeForShuffle(current playlist.Mode, on bool) playlist.Mode {
	if on {
		return playlist.ModeShuffle
	}
	if current == playlist.ModeShuffle {
		return playlist.ModeSequential
	}
	return current
}

func trackObjectPath(id int64) string {
	return fmt.Sprintf("/io/github/llehouerou/netwaves/track/%d", id)
}
