// Package correlator matches asynchronous network completions to the
// handler that issued the request.
//
// Every request gets an identifier when its handler is enqueued. Responses
// that carry the identifier are matched by key, so completions may arrive in
// any order. Responses without an identifier fall back to positional (FIFO)
// matching against the oldest pending handler.
//
// A Correlator is not safe for concurrent use; it belongs to the control loop.
package correlator

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// ErrExpired is passed to a handler whose response never arrived in time.
var ErrExpired = errors.New("request expired before a response arrived")

// DefaultTTL is how long a handler waits for its response.
const DefaultTTL = 30 * time.Second

// RequestID identifies one outstanding request.
type RequestID string

// Response is a completed network request.
type Response struct {
	ID   RequestID // empty for transports that cannot carry it
	URL  string
	Body []byte
	Err  error
}

// Handler consumes the response of one request.
type Handler func(Response)

type pending struct {
	handler  Handler
	deadline time.Time
}

// Correlator holds pending handlers keyed by request ID.
type Correlator struct {
	pending map[RequestID]pending
	order   []RequestID // enqueue order; may hold IDs already consumed
	ttl     time.Duration
	now     func() time.Time
	newID   func() RequestID
	logger  *log.Logger
}

// Option configures a Correlator.
type Option func(*Correlator)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Correlator) { c.now = now }
}

// WithIDs replaces the UUID generator, for tests.
func WithIDs(next func() RequestID) Option {
	return func(c *Correlator) { c.newID = next }
}

// New creates a Correlator whose handlers expire after ttl.
// A non-positive ttl uses DefaultTTL.
func New(ttl time.Duration, logger *log.Logger, opts ...Option) *Correlator {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Correlator{
		pending: make(map[RequestID]pending),
		ttl:     ttl,
		now:     time.Now,
		newID:   newRequestID,
		logger:  logger.With("component", "correlator"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newRequestID() RequestID {
	id, err := uuid.NewV7()
	if err != nil {
		return RequestID(uuid.NewString())
	}
	return RequestID(id.String())
}

// Enqueue registers handler and returns the ID the response must carry.
func (c *Correlator) Enqueue(handler Handler) RequestID {
	id := c.newID()
	c.pending[id] = pending{
		handler:  handler,
		deadline: c.now().Add(c.ttl),
	}
	c.order = append(c.order, id)
	return id
}

// Dispatch hands resp to its handler and reports whether one was found.
// Unmatched responses are dropped and logged.
func (c *Correlator) Dispatch(resp Response) bool {
	id := resp.ID
	if id == "" {
		id = c.oldest()
	}

	p, ok := c.pending[id]
	if !ok {
		c.logger.Warn("response without pending request dropped",
			"id", string(resp.ID), "url", resp.URL, "pending", len(c.pending))
		return false
	}
	delete(c.pending, id)
	c.compact()

	p.handler(resp)
	return true
}

// Expire consumes every handler whose deadline has passed, calling it with
// ErrExpired. Returns the number of expired requests.
func (c *Correlator) Expire(now time.Time) int {
	var expired []pending
	for _, id := range c.order {
		p, ok := c.pending[id]
		if !ok || now.Before(p.deadline) {
			continue
		}
		delete(c.pending, id)
		expired = append(expired, p)
		c.logger.Debug("request expired", "id", string(id))
	}
	c.compact()

	for _, p := range expired {
		p.handler(Response{Err: ErrExpired})
	}
	return len(expired)
}

// Pending returns the number of outstanding requests.
func (c *Correlator) Pending() int {
	return len(c.pending)
}

// oldest returns the first still-pending ID in enqueue order, or "".
func (c *Correlator) oldest() RequestID {
	for _, id := range c.order {
		if _, ok := c.pending[id]; ok {
			return id
		}
	}
	return ""
}

// compact drops consumed IDs from the front of order.
func (c *Correlator) compact() {
	i := 0
	for i < len(c.order) {
		if _, ok := c.pending[c.order[i]]; ok {
			break
		}
		i++
	}
	c.order = c.order[i:]
	if len(c.pending) == 0 {
		c.order = nil
	}
}
