package metadata

import (
	"context"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a fetched playlist detail stays fresh.
const DefaultCacheTTL = 10 * time.Minute

type cachedDetail struct {
	detail  PlaylistDetail
	fetched time.Time
}

// Cache wraps a Client and keeps playlist details for a while, so the
// prefetch done after login makes opening a playlist instant.
type Cache struct {
	Client

	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	details map[int64]cachedDetail
}

// NewCache wraps client; a non-positive ttl uses DefaultCacheTTL.
func NewCache(client Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		Client:  client,
		ttl:     ttl,
		now:     time.Now,
		details: make(map[int64]cachedDetail),
	}
}

func (c *Cache) PlaylistDetail(ctx context.Context, id int64) (PlaylistDetail, error) {
	c.mu.Lock()
	entry, ok := c.details[id]
	c.mu.Unlock()
	if ok && c.now().Sub(entry.fetched) < c.ttl {
		return entry.detail, nil
	}

	detail, err := c.Client.PlaylistDetail(ctx, id)
	if err != nil {
		return PlaylistDetail{}, err
	}

	c.mu.Lock()
	c.details[id] = cachedDetail{detail: detail, fetched: c.now()}
	c.mu.Unlock()
	return detail, nil
}

// Logout drops cached details along with the session.
func (c *Cache) Logout(ctx context.Context) error {
	c.mu.Lock()
	clear(c.details)
	c.mu.Unlock()
	return c.Client.Logout(ctx)
}

var _ Client = (*Cache)(nil)
