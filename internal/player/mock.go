package player

import (
	"sync"
	"time"

	"github.com/llehouerou/netwaves/internal/playlist"
)

// Mock is a test double for Engine.
//
// With AutoEvents set, commands emit the events the real engine would:
// Play emits MediaChanged, DurationChanged and StateChanged; Stop emits
// StateChanged; Clear emits PlaylistEmpty; SetMode emits ModeChanged.
//
// With SetDeferLoad, Play only records the track: the engine has no media
// until CompleteLoad, like the real engine while a stream downloads.
type Mock struct {
	mu         sync.Mutex
	state      State
	track      *playlist.Track
	mode       playlist.Mode
	playErr    error
	autoEvents bool
	deferLoad  bool
	loading    *playlist.Track

	playCalls  []playlist.Track
	seekCalls  []time.Duration
	pauseCalls int
	resumeCall int
	stopCalls  int
	clearCalls int

	events chan Event
	closed bool
}

// NewMock creates a new mock engine for testing.
func NewMock() *Mock {
	return &Mock{
		state:  Stopped,
		events: make(chan Event, 64),
	}
}

func (m *Mock) Play(track playlist.Track) error {
	m.mu.Lock()
	m.playCalls = append(m.playCalls, track)
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	if m.playErr != nil {
		m.mu.Unlock()
		return m.playErr
	}
	if m.deferLoad {
		m.state = Stopped
		m.track = nil
		m.loading = &track
		m.mu.Unlock()
		return nil
	}
	m.mu.Unlock()
	m.load(track)
	return nil
}

func (m *Mock) load(track playlist.Track) {
	m.mu.Lock()
	m.state = Playing
	m.track = &track
	m.loading = nil
	auto := m.autoEvents
	m.mu.Unlock()

	if auto {
		m.Emit(MediaChanged{Track: track})
		m.Emit(DurationChanged{Duration: track.Duration})
		m.Emit(StateChanged{State: Playing})
	}
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseCalls++
	if m.track != nil && m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resumeCall++
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Stop() {
	m.mu.Lock()
	m.stopCalls++
	m.state = Stopped
	m.track = nil
	m.loading = nil
	auto := m.autoEvents
	m.mu.Unlock()

	if auto {
		m.Emit(StateChanged{State: Stopped})
	}
}

func (m *Mock) Clear() {
	m.mu.Lock()
	m.clearCalls++
	m.state = Stopped
	m.track = nil
	m.loading = nil
	auto := m.autoEvents
	m.mu.Unlock()

	if auto {
		m.Emit(PlaylistEmpty{})
	}
}

func (m *Mock) SeekTo(pos time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, pos)
}

func (m *Mock) SetMode(mode playlist.Mode) {
	m.mu.Lock()
	m.mode = mode
	auto := m.autoEvents
	m.mu.Unlock()

	if auto {
		m.Emit(ModeChanged{Mode: mode})
	}
}

func (m *Mock) HasMedia() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.track != nil
}

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

// SetAutoEvents makes commands emit their engine events.
func (m *Mock) SetAutoEvents(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.autoEvents = on
}

// SetDeferLoad makes Play leave the track loading until CompleteLoad.
func (m *Mock) SetDeferLoad(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deferLoad = on
}

// CompleteLoad finishes the pending load, if any, and reports whether there was one.
func (m *Mock) CompleteLoad() bool {
	m.mu.Lock()
	t := m.loading
	m.mu.Unlock()
	if t == nil {
		return false
	}
	m.load(*t)
	return true
}

// SetPlayError makes Play fail.
func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

// SetState forces the engine state; a paused or playing state loads a placeholder track.
func (m *Mock) SetState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
	if s != Stopped && m.track == nil {
		m.track = &playlist.Track{}
	}
}

// Emit queues an event; it is dropped when the buffer is full.
func (m *Mock) Emit(ev Event) {
	select {
	case m.events <- ev:
	default:
	}
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) Mode() playlist.Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

func (m *Mock) PlayCalls() []playlist.Track {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]playlist.Track(nil), m.playCalls...)
}

// PlayedIDs returns the ids of every track passed to Play, in order.
func (m *Mock) PlayedIDs() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]int64, len(m.playCalls))
	for i, t := range m.playCalls {
		ids[i] = t.ID
	}
	return ids
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seekCalls...)
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCalls
}

func (m *Mock) ResumeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resumeCall
}

func (m *Mock) StopCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopCalls
}

func (m *Mock) ClearCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clearCalls
}

// Verify Mock implements Engine at compile time.
var _ Engine = (*Mock)(nil)
