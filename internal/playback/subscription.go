package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	StateChanged    <-chan StateChange
	TrackChanged    <-chan TrackChange
	PositionChanged <-chan PositionChange
	DurationChanged <-chan DurationChange
	QueueChanged    <-chan QueueChange
	ModeChanged     <-chan ModeChange
	FavoriteChanged <-chan FavoriteChange
	ArtworkChanged  <-chan ArtworkChange
	Status          <-chan StatusEvent
	Error           <-chan ErrorEvent
	Done            <-chan struct{}

	// Internal write channels
	stateCh    chan StateChange
	trackCh    chan TrackChange
	positionCh chan PositionChange
	durationCh chan DurationChange
	queueCh    chan QueueChange
	modeCh     chan ModeChange
	favoriteCh chan FavoriteChange
	artworkCh  chan ArtworkChange
	statusCh   chan StatusEvent
	errorCh    chan ErrorEvent
	doneCh     chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		stateCh:    make(chan StateChange, eventBufferSize),
		trackCh:    make(chan TrackChange, eventBufferSize),
		positionCh: make(chan PositionChange, eventBufferSize),
		durationCh: make(chan DurationChange, eventBufferSize),
		queueCh:    make(chan QueueChange, 1), // latest only, see sendLatest
		modeCh:     make(chan ModeChange, eventBufferSize),
		favoriteCh: make(chan FavoriteChange, eventBufferSize),
		artworkCh:  make(chan ArtworkChange, eventBufferSize),
		statusCh:   make(chan StatusEvent, eventBufferSize),
		errorCh:    make(chan ErrorEvent, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.TrackChanged = s.trackCh
	s.PositionChanged = s.positionCh
	s.DurationChanged = s.durationCh
	s.QueueChanged = s.queueCh
	s.ModeChanged = s.modeCh
	s.FavoriteChanged = s.favoriteCh
	s.ArtworkChanged = s.artworkCh
	s.Status = s.statusCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// send delivers e without blocking; it is dropped when the buffer is full.
func send[E any](ch chan E, e E) {
	select {
	case ch <- e:
	default:
	}
}

// sendLatest replaces whatever is still buffered in ch with e, so a slow
// reader always finds the newest value. ch must have a single sender.
func sendLatest[E any](ch chan E, e E) {
	for {
		select {
		case ch <- e:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
