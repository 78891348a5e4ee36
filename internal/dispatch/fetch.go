package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"golang.org/x/time/rate"

	"github.com/llehouerou/netwaves/internal/correlator"
)

// maxBody bounds a fetched image.
const maxBody = 8 << 20

var errNoURL = errors.New("empty url")

// Fetcher issues GET requests whose completions are correlated with handlers.
type Fetcher interface {
	// Fetch registers handler and starts the request. Must be called on the
	// control goroutine, which also receives the completion.
	Fetch(url string, handler correlator.Handler) correlator.RequestID
}

// HTTPFetcher enqueues every request on the correlator before issuing it, so
// each request has exactly one pending entry. Completions go to post.
type HTTPFetcher struct {
	ctx     context.Context
	corr    *correlator.Correlator
	client  *http.Client
	limiter *rate.Limiter
	post    func(correlator.Response)
	logger  *log.Logger
	wg      sync.WaitGroup
}

// NewHTTPFetcher creates a fetcher; rps limits requests per second.
func NewHTTPFetcher(
	ctx context.Context,
	corr *correlator.Correlator,
	timeout time.Duration,
	rps float64,
	post func(correlator.Response),
	logger *log.Logger,
) *HTTPFetcher {
	return &HTTPFetcher{
		ctx:     ctx,
		corr:    corr,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), 2),
		post:    post,
		logger:  logger.With("component", "fetcher"),
	}
}

func (f *HTTPFetcher) Fetch(url string, handler correlator.Handler) correlator.RequestID {
	id := f.corr.Enqueue(handler)

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		body, err := f.get(url)
		if f.ctx.Err() != nil {
			return
		}
		f.post(correlator.Response{ID: id, URL: url, Body: body, Err: err})
	}()

	return id
}

// Wait blocks until all requests have completed.
func (f *HTTPFetcher) Wait() {
	f.wg.Wait()
}

func (f *HTTPFetcher) get(url string) ([]byte, error) {
	if url == "" {
		return nil, errNoURL
	}
	if err := f.limiter.Wait(f.ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(f.ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}

	f.logger.Debug("fetched", "url", url,
		"size", humanize.Bytes(uint64(len(body))), "took", time.Since(start))
	return body, nil
}
