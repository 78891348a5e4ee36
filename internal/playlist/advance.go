package playlist

// Rand is the random source used by shuffle. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Advance moves the cursor after the current track finished, following mode.
// It returns the track to play next, or nil when playback should stop; in
// that case the cursor is left where it was.
func (q *PlayingQueue) Advance(mode Mode, rng Rand) *Track {
	n := q.playlist.Len()
	if n == 0 {
		return nil
	}

	switch mode {
	case ModeSingle:
		return nil
	case ModeSingleLoop:
		return q.Current()
	case ModeSequential:
		if q.currentIndex+1 >= n {
			return nil
		}
		return q.JumpTo(q.currentIndex + 1)
	case ModeLoopAll:
		return q.JumpTo((q.currentIndex + 1) % n)
	case ModeShuffle:
		return q.JumpTo(q.randomOther(rng))
	default:
		return nil
	}
}

// Step moves the cursor for a manual next (delta > 0) or previous (delta < 0).
// Shuffle picks another track at random, Sequential stops at either end, and
// the remaining modes wrap around. Returns nil if there is nowhere to go.
func (q *PlayingQueue) Step(mode Mode, delta int, rng Rand) *Track {
	n := q.playlist.Len()
	if n == 0 || delta == 0 {
		return nil
	}

	if mode == ModeShuffle {
		return q.JumpTo(q.randomOther(rng))
	}

	idx := q.currentIndex
	if idx < 0 {
		// No cursor: next starts at the top, previous at the bottom
		if delta > 0 {
			idx = -1
		} else {
			idx = n
		}
	}
	target := idx + delta

	if mode == ModeSequential {
		if target < 0 || target >= n {
			return nil
		}
		return q.JumpTo(target)
	}
	return q.JumpTo(((target % n) + n) % n)
}

// randomOther returns a random index different from the cursor when more
// than one track is queued. Picks are independent; there is no
// play-each-once pass.
func (q *PlayingQueue) randomOther(rng Rand) int {
	n := q.playlist.Len()
	if n == 1 {
		return 0
	}
	if q.currentIndex < 0 {
		return rng.IntN(n)
	}
	i := rng.IntN(n - 1)
	if i >= q.currentIndex {
		i++
	}
	return i
}
