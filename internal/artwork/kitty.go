package artwork

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
)

const (
	kittyStart = "\x1b_G"
	kittyEnd   = "\x1b\\"
	kittyChunk = 4096
)

// KittySupported reports whether the terminal speaks the Kitty graphics protocol.
// NETWAVES_IMAGES=none disables images, NETWAVES_IMAGES=kitty forces them.
func KittySupported() bool {
	switch os.Getenv("NETWAVES_IMAGES") {
	case "none":
		return false
	case "kitty":
		return true
	}
	if os.Getenv("KITTY_WINDOW_ID") != "" || os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}

// KittyTransmit returns the escape sequence uploading img under id without
// displaying it. Payloads are split into 4096-byte chunks.
func KittyTransmit(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())

	var sb strings.Builder
	for i := 0; i < len(encoded); i += kittyChunk {
		end := min(i+kittyChunk, len(encoded))
		more := 0
		if end < len(encoded) {
			more = 1
		}
		sb.WriteString(kittyStart)
		if i == 0 {
			fmt.Fprintf(&sb, "a=t,f=100,i=%d,q=2,m=%d;", id, more)
		} else {
			fmt.Fprintf(&sb, "m=%d;", more)
		}
		sb.WriteString(encoded[i:end])
		sb.WriteString(kittyEnd)
	}
	return sb.String(), nil
}

// KittyPlace displays image id at the 1-based cell position, sized in cells.
// The cursor is saved and restored around the placement.
func KittyPlace(id uint32, row, col, width, height int) string {
	return fmt.Sprintf("\x1b[s\x1b[%d;%dH%sa=p,i=%d,p=1,c=%d,r=%d,C=1,q=2;%s\x1b[u",
		row, col, kittyStart, id, width, height, kittyEnd)
}

// KittyDelete frees image id and its placements.
func KittyDelete(id uint32) string {
	return fmt.Sprintf("%sa=d,d=i,i=%d,q=2;%s", kittyStart, id, kittyEnd)
}
