package notify

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// CoverCache writes decoded covers to disk so notifications can show them.
type CoverCache struct {
	dir string
}

// NewCoverCache stores covers in dir, or under the XDG cache directory
// when dir is empty.
func NewCoverCache(dir string) *CoverCache {
	if dir == "" {
		dir = filepath.Join(xdg.CacheHome, "netwaves", "covers")
	}
	return &CoverCache{dir: dir}
}

// Write stores the cover of a track and returns its path.
func (c *CoverCache) Write(trackID int64, img image.Image) (string, error) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(c.dir, fmt.Sprintf("%d.png", trackID))
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", err
	}
	return path, os.Rename(tmp, path)
}
