// Package app is the control loop: it owns the playback controller, the
// session and the correlator, and applies every event one at a time.
package app

import (
	"context"
	"io"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/netwaves/internal/correlator"
	"github.com/llehouerou/netwaves/internal/dispatch"
	"github.com/llehouerou/netwaves/internal/errmsg"
	"github.com/llehouerou/netwaves/internal/metadata"
	"github.com/llehouerou/netwaves/internal/notify"
	"github.com/llehouerou/netwaves/internal/playback"
	"github.com/llehouerou/netwaves/internal/player"
	"github.com/llehouerou/netwaves/internal/playlist"
	"github.com/llehouerou/netwaves/internal/session"
	"github.com/llehouerou/netwaves/internal/state"
)

const (
	eventQueueSize   = 256
	uiEventQueueSize = 64
	expiryInterval   = time.Second
)

// Options configure a Core. Engine, Client and Store are required.
type Options struct {
	Engine   player.Engine
	Client   metadata.Client
	Store    state.Interface
	Notifier notify.Notifier
	Covers   *notify.CoverCache
	Logger   *log.Logger

	Mode         playlist.Mode
	Workers      int
	RequestTTL   time.Duration
	FetchTimeout time.Duration
	FetchRate    float64

	// Work and Fetcher replace the worker pool and the HTTP fetcher.
	Work    dispatch.Offloader
	Fetcher dispatch.Fetcher
	Rand    playlist.Rand
}

// Core is the orchestrator. Send and Snapshot are safe from any goroutine;
// everything else runs on the goroutine calling Run.
type Core struct {
	ctx     context.Context
	events  chan Event
	ui      chan UIEvent
	done    chan struct{}
	stopped sync.Once

	engine   player.Engine
	client   metadata.Client
	store    state.Interface
	notifier notify.Notifier
	covers   *notify.CoverCache
	logger   *log.Logger

	corr    *correlator.Correlator
	session *session.State
	flow    *session.Flow
	ctrl    *playback.Controller
	work    dispatch.Offloader
	fetcher dispatch.Fetcher
	pool    *dispatch.Pool
	http    *dispatch.HTTPFetcher
	mode    playlist.Mode

	snapshot atomic.Pointer[Snapshot]
	wg       sync.WaitGroup
}

// New builds the core. ctx bounds the worker pool and the fetcher.
func New(ctx context.Context, opts Options) *Core {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.Disabled()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)) //nolint:gosec // shuffle only
	}
	ttl := opts.RequestTTL
	if ttl <= 0 {
		ttl = correlator.DefaultTTL
	}

	c := &Core{
		ctx:      ctx,
		events:   make(chan Event, eventQueueSize),
		ui:       make(chan UIEvent, uiEventQueueSize),
		done:     make(chan struct{}),
		engine:   opts.Engine,
		client:   opts.Client,
		store:    opts.Store,
		notifier: opts.Notifier,
		covers:   opts.Covers,
		logger:   logger.With("component", "core"),
		session:  session.New(),
		mode:     opts.Mode,
	}
	c.corr = correlator.New(ttl, logger)

	c.work = opts.Work
	if c.work == nil {
		c.pool = dispatch.NewPool(ctx, opts.Workers, func(a dispatch.Apply) { c.post(WorkDone{Apply: a}) }, logger)
		c.work = c.pool
	}
	c.fetcher = opts.Fetcher
	if c.fetcher == nil {
		rps := opts.FetchRate
		if rps <= 0 {
			rps = 5
		}
		c.http = dispatch.NewHTTPFetcher(ctx, c.corr, opts.FetchTimeout, rps,
			func(r correlator.Response) { c.post(NetworkEvent{Response: r}) }, logger)
		c.fetcher = c.http
	}

	c.ctrl = playback.New(playback.Deps{
		Engine:  c.engine,
		Client:  c.client,
		Session: c.session,
		Work:    c.work,
		Fetcher: c.fetcher,
		Rand:    opts.Rand,
		Logger:  logger,
	})
	c.flow = session.NewFlow(c.session, c.client, c.fetcher, c.work, sink{c}, c.ctrl.RefreshFavorite, logger)
	c.publish()
	return c
}

// Correlator exposes the correlator so tests and fetchers can share it.
func (c *Core) Correlator() *correlator.Correlator { return c.corr }

// Send queues cmd for the control loop.
func (c *Core) Send(cmd Command) {
	c.post(UserCommand{Command: cmd})
}

// UIEvents delivers what the user interface should show. It is closed
// once Run has returned and shut everything down.
func (c *Core) UIEvents() <-chan UIEvent { return c.ui }

// Done is closed once Run has returned.
func (c *Core) Done() <-chan struct{} { return c.done }

// post hands ev to the loop. It gives up once the loop has stopped.
func (c *Core) post(ev Event) {
	select {
	case c.events <- ev:
	case <-c.done:
	case <-c.ctx.Done():
	}
}

func (c *Core) toUI(ev UIEvent) {
	select {
	case c.ui <- ev:
	default:
		c.logger.Warn("ui event dropped", "type", ev)
	}
}

// Run restores the saved queue and processes events until ctx is done.
func (c *Core) Run(ctx context.Context) error {
	defer c.shutdown()

	sub := c.ctrl.Subscribe()
	c.restore()
	c.wg.Add(2)
	go c.forwardEngine(ctx)
	go c.watch(sub, c.ctrl.Mode())
	c.publish()

	ticker := time.NewTicker(expiryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-c.events:
			c.handle(ev)
		case now := <-ticker.C:
			c.handle(ExpiryTick{Now: now})
		}
		c.publish()
	}
}

func (c *Core) shutdown() {
	c.stopped.Do(func() {
		close(c.done)
		c.ctrl.Close()
		if err := c.engine.Close(); err != nil {
			c.logger.Warn("engine close failed", "err", err)
		}
		if c.pool != nil {
			c.pool.Wait()
		}
		if c.http != nil {
			c.http.Wait()
		}
		c.wg.Wait()
		// Only the loop and the watcher send to ui, and both are gone
		close(c.ui)
		c.logger.Info("core stopped")
	})
}

func (c *Core) forwardEngine(ctx context.Context) {
	defer c.wg.Done()
	events := c.engine.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		case ev := <-events:
			c.post(EngineEvent{Event: ev})
		}
	}
}

func (c *Core) restore() {
	saved, err := c.store.GetQueue()
	if err != nil {
		c.logger.Warn("queue restore failed", "err", err)
		c.status(errmsg.Format(errmsg.OpQueueLoad, err))
	}
	if saved == nil || len(saved.Tracks) == 0 {
		c.ctrl.Restore(nil, -1, c.mode)
		return
	}
	c.ctrl.Restore(saved.Tracks, saved.CurrentIndex, saved.Mode)
	c.logger.Info("queue restored", "tracks", len(saved.Tracks), "index", saved.CurrentIndex, "mode", saved.Mode)
}

func (c *Core) handle(ev Event) {
	switch e := ev.(type) {
	case UserCommand:
		c.handleCommand(e.Command)
	case EngineEvent:
		c.ctrl.HandleEngineEvent(e.Event)
	case NetworkEvent:
		c.corr.Dispatch(e.Response)
	case WorkDone:
		e.Apply()
	case ExpiryTick:
		if n := c.corr.Expire(e.Now); n > 0 {
			c.logger.Debug("requests expired", "count", n)
		}
	}
}
