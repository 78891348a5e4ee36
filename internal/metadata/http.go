package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/llehouerou/netwaves/internal/playlist"
)

const (
	userAgent = "netwaves/0.1"

	// Retry configuration
	maxRetries   = 2
	initialDelay = 500 * time.Millisecond
	maxDelay     = 5 * time.Second
)

var _ Client = (*HTTPClient)(nil)

// HTTPClient talks to a NeteaseCloudMusicApi compatible proxy.
// The login cookie is kept in a cookie jar.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
	retryDelay time.Duration

	mu     sync.Mutex
	userID int64
}

// NewHTTPClient creates a client for baseURL, limited to rps requests per second.
func NewHTTPClient(baseURL string, timeout time.Duration, rps float64, logger *log.Logger) *HTTPClient {
	jar, _ := cookiejar.New(nil) //nolint:errcheck // nil options never fail
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger.With("component", "metadata"),
		retryDelay: initialDelay,
	}
}

func (c *HTTPClient) Login(ctx context.Context, phone, password string) (Profile, error) {
	var resp loginResponse
	form := url.Values{"phone": {phone}, "password": {password}}
	if err := c.post(ctx, "/login/cellphone", form, &resp); err != nil {
		return Profile{}, err
	}
	profile, err := convertProfile(resp)
	if err != nil {
		return Profile{}, err
	}

	c.mu.Lock()
	c.userID = profile.UserID
	c.mu.Unlock()

	c.logger.Info("logged in", "user", profile.UserID, "nickname", profile.Nickname)
	return profile, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	c.mu.Lock()
	c.userID = 0
	c.mu.Unlock()

	var resp envelope
	return c.get(ctx, "/logout", nil, &resp)
}

func (c *HTTPClient) currentUser() (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.userID == 0 {
		return 0, ErrNotLoggedIn
	}
	return c.userID, nil
}

func (c *HTTPClient) UserPlaylists(ctx context.Context) ([]PlaylistSummary, error) {
	uid, err := c.currentUser()
	if err != nil {
		return nil, err
	}

	var resp userPlaylistResponse
	params := url.Values{"uid": {strconv.FormatInt(uid, 10)}}
	if err := c.get(ctx, "/user/playlist", params, &resp); err != nil {
		return nil, err
	}

	summaries := make([]PlaylistSummary, 0, len(resp.Playlist))
	for _, p := range resp.Playlist {
		s, err := convertSummary(p)
		if err != nil {
			c.logger.Debug("skipping playlist", "err", err)
			continue
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

func (c *HTTPClient) PlaylistDetail(ctx context.Context, id int64) (PlaylistDetail, error) {
	var resp playlistDetailResponse
	params := url.Values{"id": {strconv.FormatInt(id, 10)}}
	if err := c.get(ctx, "/playlist/detail", params, &resp); err != nil {
		return PlaylistDetail{}, err
	}
	if resp.Playlist == nil {
		return PlaylistDetail{}, fmt.Errorf("%w: playlist %d missing", ErrInvalid, id)
	}

	summary, err := convertSummary(*resp.Playlist)
	if err != nil {
		return PlaylistDetail{}, err
	}
	return PlaylistDetail{
		PlaylistSummary: summary,
		Tracks:          c.songs(resp.Playlist.Tracks),
	}, nil
}

func (c *HTTPClient) SongDetail(ctx context.Context, id int64) ([]playlist.Track, error) {
	var resp songDetailResponse
	params := url.Values{"ids": {strconv.FormatInt(id, 10)}}
	if err := c.get(ctx, "/song/detail", params, &resp); err != nil {
		return nil, err
	}
	return c.songs(resp.Songs), nil
}

func (c *HTTPClient) Search(ctx context.Context, text string) ([]playlist.Track, error) {
	var resp searchResponse
	params := url.Values{
		"keywords": {text},
		"type":     {"1"}, // songs
		"limit":    {"50"},
	}
	if err := c.get(ctx, "/cloudsearch", params, &resp); err != nil {
		return nil, err
	}
	return c.songs(resp.Result.Songs), nil
}

func (c *HTTPClient) IsFavorite(ctx context.Context, id int64) (bool, error) {
	uid, err := c.currentUser()
	if err != nil {
		return false, err
	}

	var resp likeListResponse
	params := url.Values{"uid": {strconv.FormatInt(uid, 10)}}
	if err := c.get(ctx, "/likelist", params, &resp); err != nil {
		return false, err
	}
	return slices.Contains(resp.IDs, id), nil
}

func (c *HTTPClient) SetFavorite(ctx context.Context, id int64, action FavoriteAction) error {
	if _, err := c.currentUser(); err != nil {
		return err
	}

	var resp envelope
	params := url.Values{
		"id":   {strconv.FormatInt(id, 10)},
		"like": {strconv.FormatBool(action == FavoriteAdd)},
	}
	return c.get(ctx, "/like", params, &resp)
}

func (c *HTTPClient) IsPlaylistMine(p PlaylistSummary) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userID != 0 && p.CreatorID == c.userID
}

func (c *HTTPClient) StreamURL(ctx context.Context, id int64) (string, error) {
	var resp songURLResponse
	params := url.Values{"id": {strconv.FormatInt(id, 10)}}
	if err := c.get(ctx, "/song/url", params, &resp); err != nil {
		return "", err
	}
	for _, d := range resp.Data {
		if d.ID == id && d.URL != "" {
			return d.URL, nil
		}
	}
	return "", fmt.Errorf("track %d: %w", id, ErrNoStream)
}

func (c *HTTPClient) songs(raw []songResult) []playlist.Track {
	tracks, errs := convertSongs(raw)
	for _, err := range errs {
		c.logger.Debug("skipping song", "err", err)
	}
	return tracks
}

// get performs a rate-limited GET and decodes the JSON body into out.
// A non-200 code in the body is reported as ErrAPI.
func (c *HTTPClient) get(ctx context.Context, path string, params url.Values, out any) error {
	return c.call(ctx, http.MethodGet, path, params, out)
}

// post sends form as an urlencoded body, keeping credentials out of the URL.
func (c *HTTPClient) post(ctx context.Context, path string, form url.Values, out any) error {
	return c.call(ctx, http.MethodPost, path, form, out)
}

func (c *HTTPClient) call(ctx context.Context, method, path string, params url.Values, out any) error {
	body, err := c.doWithRetry(ctx, method, path, params)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%s: decode response: %w", path, err)
	}
	if env.Code != http.StatusOK {
		return fmt.Errorf("%w: %s returned code %d: %s", ErrAPI, path, env.Code, env.text())
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", path, err)
	}
	return nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, params url.Values) (*http.Request, error) {
	reqURL := c.baseURL + path
	var body io.Reader = http.NoBody
	if method == http.MethodGet {
		if len(params) > 0 {
			reqURL += "?" + params.Encode()
		}
	} else {
		body = strings.NewReader(params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if method != http.MethodGet {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return req, nil
}

// redactURL drops the query from transport errors so parameters never reach
// logs or the status line.
func redactURL(err error) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}
	u, perr := url.Parse(ue.URL)
	if perr != nil {
		return &url.Error{Op: ue.Op, URL: "<redacted>", Err: ue.Err}
	}
	u.RawQuery = ""
	u.User = nil
	return &url.Error{Op: ue.Op, URL: u.String(), Err: ue.Err}
}

// doWithRetry executes the request with exponential backoff.
// Retries on 5xx errors and network errors.
func (c *HTTPClient) doWithRetry(ctx context.Context, method, path string, params url.Values) ([]byte, error) {
	var lastErr error
	delay := c.retryDelay

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay = min(delay*2, maxDelay)
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := c.newRequest(ctx, method, path, params)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = redactURL(err)
			c.logger.Debug("retrying request", "path", path, "err", lastErr, "attempt", attempt+1)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		// Client errors carry an API code in the body; only 5xx is retried
		if resp.StatusCode < 500 {
			return body, nil
		}
		lastErr = fmt.Errorf("%w: server returned status %d", ErrAPI, resp.StatusCode)
		c.logger.Debug("retrying request", "path", path, "status", resp.StatusCode, "attempt", attempt+1)
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", maxRetries+1, lastErr)
}
