package player

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/llehouerou/netwaves/internal/playlist"
)

const (
	speakerRate      = beep.SampleRate(44100)
	positionInterval = 500 * time.Millisecond
	eventBufferSize  = 64
)

var (
	speakerMu          sync.Mutex
	speakerInitialized bool
)

func initSpeaker() error {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerInitialized {
		return nil
	}
	if err := speaker.Init(speakerRate, speakerRate.N(time.Second/10)); err != nil {
		return err
	}
	speakerInitialized = true
	return nil
}

// Player streams tracks over HTTP through the beep speaker.
//
// Lock order is p.mu before the speaker lock. Speaker callbacks never take
// p.mu synchronously.
type Player struct {
	ctx     context.Context
	cancel  context.CancelFunc
	client  *http.Client
	resolve Resolver
	logger  *log.Logger
	events  chan Event
	wake    chan struct{}
	wg      sync.WaitGroup

	queueMu sync.Mutex
	queue   []Event

	mu         sync.Mutex
	gen        uint64 // bumped on every Play, Stop and Clear
	state      State
	track      *playlist.Track
	streamer   beep.StreamSeekCloser
	format     beep.Format
	ctrl       *beep.Ctrl
	loadCancel context.CancelFunc
	closed     bool
}

// New creates a player. resolve is used for tracks without a stream URL.
func New(resolve Resolver, timeout time.Duration, logger *log.Logger) *Player {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Player{
		ctx:     ctx,
		cancel:  cancel,
		client:  &http.Client{Timeout: timeout},
		resolve: resolve,
		logger:  logger.With("component", "player"),
		events:  make(chan Event, eventBufferSize),
		wake:    make(chan struct{}, 1),
		state:   Stopped,
	}
	p.wg.Add(2)
	go p.forward()
	go p.reportPosition()
	return p
}

func (p *Player) Events() <-chan Event { return p.events }

func (p *Player) Play(track playlist.Track) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	wasActive := p.state != Stopped
	p.releaseLocked()
	gen := p.gen
	ctx, cancel := context.WithCancel(p.ctx)
	p.loadCancel = cancel
	p.mu.Unlock()

	if wasActive {
		p.emit(StateChanged{State: Stopped})
	}

	p.wg.Add(1)
	go p.load(ctx, gen, track)
	return nil
}

// load downloads and decodes track, then starts it if no newer command came in.
func (p *Player) load(ctx context.Context, gen uint64, track playlist.Track) {
	defer p.wg.Done()

	start := time.Now()
	src, err := download(ctx, p.client, p.resolve, track.ID, track.StreamURL)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Warn("load failed", "track", track.ID, "err", err)
			p.emit(Failed{Message: err.Error()})
		}
		return
	}
	p.logger.Debug("downloaded", "track", track.ID, "format", src.format,
		"size", humanize.Bytes(uint64(len(src.data))), "took", time.Since(start))

	streamer, format, err := src.decode()
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.logger.Warn("decode failed", "track", track.ID, "err", err)
		p.emit(Failed{Message: "decode " + src.format.String() + ": " + err.Error()})
		return
	}
	if err := initSpeaker(); err != nil {
		streamer.Close()
		p.emit(Failed{Message: "audio output: " + err.Error()})
		return
	}

	p.mu.Lock()
	if gen != p.gen || p.closed {
		p.mu.Unlock()
		streamer.Close()
		return
	}
	var out beep.Streamer = streamer
	if format.SampleRate != speakerRate {
		out = beep.Resample(4, format.SampleRate, speakerRate, streamer)
	}
	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: out}
	p.track = &track
	p.state = Playing
	p.loadCancel = nil
	duration := format.SampleRate.D(streamer.Len())
	speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() {
		go p.finished(gen)
	})))
	// Emitted under the lock so a newer Play cannot interleave
	p.emit(MediaChanged{Track: track})
	p.emit(DurationChanged{Duration: duration})
	p.emit(StateChanged{State: Playing})
	p.mu.Unlock()
}

func (p *Player) finished(gen uint64) {
	p.mu.Lock()
	if gen != p.gen {
		p.mu.Unlock()
		return
	}
	p.releaseLocked()
	p.emit(StateChanged{State: Stopped})
	p.emit(Finished{})
	p.mu.Unlock()
}

func (p *Player) Pause() {
	p.mu.Lock()
	if p.state != Playing || p.ctrl == nil {
		p.mu.Unlock()
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
	p.mu.Unlock()

	p.emit(StateChanged{State: Paused})
}

func (p *Player) Resume() {
	p.mu.Lock()
	if p.state != Paused || p.ctrl == nil {
		p.mu.Unlock()
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
	p.mu.Unlock()

	p.emit(StateChanged{State: Playing})
}

func (p *Player) Stop() {
	p.mu.Lock()
	wasActive := p.state != Stopped
	p.releaseLocked()
	p.mu.Unlock()

	if wasActive {
		p.emit(StateChanged{State: Stopped})
	}
}

func (p *Player) Clear() {
	p.mu.Lock()
	p.releaseLocked()
	p.mu.Unlock()

	p.emit(PlaylistEmpty{})
}

// releaseLocked stops output, cancels any pending load and invalidates
// callbacks from the previous generation.
func (p *Player) releaseLocked() {
	p.gen++
	if p.loadCancel != nil {
		p.loadCancel()
		p.loadCancel = nil
	}
	if p.streamer != nil {
		speaker.Clear()
		p.streamer.Close()
		p.streamer = nil
	}
	p.ctrl = nil
	p.track = nil
	p.state = Stopped
}

func (p *Player) SeekTo(pos time.Duration) {
	p.mu.Lock()
	if p.streamer == nil {
		p.mu.Unlock()
		return
	}
	speaker.Lock()
	target := min(max(p.format.SampleRate.N(pos), 0), max(p.streamer.Len()-1, 0))
	err := p.streamer.Seek(target)
	actual := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	p.mu.Unlock()

	if err != nil {
		p.logger.Warn("seek failed", "pos", pos, "err", err)
		return
	}
	p.emit(PositionChanged{Position: actual})
}

// SetMode only echoes the mode; the sequence is owned by the caller.
func (p *Player) SetMode(mode playlist.Mode) {
	p.emit(ModeChanged{Mode: mode})
}

func (p *Player) HasMedia() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.streamer != nil
}

// Close stops playback and waits for background work to finish.
func (p *Player) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.releaseLocked()
	p.mu.Unlock()

	p.cancel()
	p.wg.Wait()
	return nil
}

func (p *Player) reportPosition() {
	defer p.wg.Done()
	ticker := time.NewTicker(positionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
		}

		p.mu.Lock()
		if p.state != Playing || p.streamer == nil {
			p.mu.Unlock()
			continue
		}
		speaker.Lock()
		pos := p.format.SampleRate.D(p.streamer.Position())
		speaker.Unlock()
		p.mu.Unlock()

		// Position updates are dropped while the consumer lags behind
		p.queueMu.Lock()
		lagging := len(p.queue) >= eventBufferSize
		p.queueMu.Unlock()
		if !lagging {
			p.emit(PositionChanged{Position: pos})
		}
	}
}

// emit queues an event without blocking; commands are issued from the
// goroutine that drains Events.
func (p *Player) emit(ev Event) {
	p.queueMu.Lock()
	p.queue = append(p.queue, ev)
	p.queueMu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// forward moves queued events to the Events channel in order.
func (p *Player) forward() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case <-p.wake:
		}

		for {
			p.queueMu.Lock()
			if len(p.queue) == 0 {
				p.queueMu.Unlock()
				break
			}
			ev := p.queue[0]
			p.queue = p.queue[1:]
			p.queueMu.Unlock()

			select {
			case p.events <- ev:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Verify Player implements Engine at compile time.
var _ Engine = (*Player)(nil)
