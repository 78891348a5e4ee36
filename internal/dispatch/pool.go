// Package dispatch runs blocking work off the control goroutine and posts
// the results back to it.
package dispatch

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/semaphore"
)

// Apply applies the result of some work. It runs on the control goroutine.
type Apply func()

// Work runs on a worker and returns the Apply for its result, or nil.
type Work func(ctx context.Context) Apply

// Offloader runs Work away from the caller. op names the work in logs.
type Offloader interface {
	Offload(op string, work Work)
}

// Inline runs work synchronously and applies the result immediately.
// It stands in for the pool in tests.
type Inline struct{}

func (Inline) Offload(_ string, work Work) {
	if apply := work(context.Background()); apply != nil {
		apply()
	}
}

// Pool runs Work on goroutines, at most workers at a time, and hands each
// result to post. Offload never blocks the caller.
type Pool struct {
	ctx    context.Context
	sem    *semaphore.Weighted
	post   func(Apply)
	logger *log.Logger
	wg     sync.WaitGroup
}

// NewPool creates a pool bound to ctx; cancelling ctx drops queued work.
func NewPool(ctx context.Context, workers int, post func(Apply), logger *log.Logger) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		ctx:    ctx,
		sem:    semaphore.NewWeighted(int64(workers)),
		post:   post,
		logger: logger.With("component", "pool"),
	}
}

func (p *Pool) Offload(op string, work Work) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := p.sem.Acquire(p.ctx, 1); err != nil {
			p.logger.Debug("work dropped", "op", op, "err", err)
			return
		}
		defer p.sem.Release(1)

		start := time.Now()
		apply := work(p.ctx)
		p.logger.Debug("work done", "op", op, "took", time.Since(start))

		if apply != nil && p.ctx.Err() == nil {
			p.post(apply)
		}
	}()
}

// Wait blocks until all offloaded work has finished.
func (p *Pool) Wait() {
	p.wg.Wait()
}
