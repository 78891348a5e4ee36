// Package artwork decodes and scales cover art and avatars fetched from the
// network, and encodes them for terminals that can display images.
package artwork

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // cover art is served as JPEG
	_ "image/png"  // avatars are sometimes PNG

	"github.com/nfnt/resize"
)

// AvatarSize is the edge length of the square avatar shown for a logged-in user.
const AvatarSize = 55

// ErrEmpty is returned when there is no image data to decode.
var ErrEmpty = errors.New("empty image data")

// Decode parses JPEG or PNG data.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Thumbnail scales img to fit within width x height, keeping its aspect ratio.
// Images already smaller are returned unchanged.
func Thumbnail(img image.Image, width, height int) image.Image {
	if width <= 0 || height <= 0 {
		return img
	}
	return resize.Thumbnail(uint(width), uint(height), img, resize.Lanczos3) //nolint:gosec // small positive sizes
}

// Square scales img to exactly size x size.
func Square(img image.Image, size int) image.Image {
	if size <= 0 {
		return img
	}
	return resize.Resize(uint(size), uint(size), img, resize.Lanczos3) //nolint:gosec // small positive size
}

// DecodeAvatar decodes data and scales it to AvatarSize.
func DecodeAvatar(data []byte) (image.Image, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Square(img, AvatarSize), nil
}

// DecodeCover decodes data and fits it into a width x height pixel box.
func DecodeCover(data []byte, width, height int) (image.Image, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return Thumbnail(img, width, height), nil
}
