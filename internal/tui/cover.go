package tui

import (
	"image"
	"sync/atomic"

	"github.com/llehouerou/netwaves/internal/artwork"
)

// Cover size in cells inside the player bar.
const (
	coverCols = 4
	coverRows = 2
)

var nextImageID atomic.Uint32

// cover tracks the image uploaded to the terminal for the playing track.
type cover struct {
	enabled bool
	playing int64
	trackID int64
	imageID uint32
	// pending is written with the frames until the second tick after it
	// was set, so at least one frame carries it.
	pending string
	aged    bool
}

// load uploads img for trackID, freeing the previous image.
func (c *cover) load(trackID int64, img image.Image) error {
	if !c.enabled || img == nil {
		return nil
	}
	id := nextImageID.Add(1)
	transmit, err := artwork.KittyTransmit(img, id)
	if err != nil {
		return err
	}
	var out string
	if c.imageID != 0 {
		out = artwork.KittyDelete(c.imageID)
	}
	c.trackID = trackID
	c.imageID = id
	c.setPending(out + transmit)
	return nil
}

// trackChanged frees the image when playback moves to another track.
// A cover may arrive just before the snapshot names its track.
func (c *cover) trackChanged(playing int64) {
	if playing == c.playing {
		return
	}
	c.playing = playing
	if c.imageID == 0 || c.trackID == playing {
		return
	}
	c.setPending(c.pending + artwork.KittyDelete(c.imageID))
	c.imageID = 0
	c.trackID = 0
}

func (c *cover) setPending(s string) {
	c.pending = s
	c.aged = false
}

// tick ages the pending sequence.
func (c *cover) tick() {
	if c.pending == "" {
		return
	}
	if c.aged {
		c.pending = ""
	}
	c.aged = !c.aged
}

// shown reports whether the image belongs to the playing track.
func (c cover) shown(playing int64) bool {
	return c.enabled && c.imageID != 0 && c.trackID == playing
}

// placement draws the image with its top-left cell at row, col (1-based).
func (c cover) placement(row, col int) string {
	return artwork.KittyPlace(c.imageID, row, col, coverCols, coverRows)
}
