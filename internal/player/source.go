package player

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
)

// maxTrackSize bounds a downloaded track.
const maxTrackSize = 256 << 20

// Resolver returns a stream URL for a track id.
type Resolver func(ctx context.Context, id int64) (string, error)

type audioFormat int

const (
	formatMP3 audioFormat = iota
	formatFLAC
)

func (f audioFormat) String() string {
	if f == formatFLAC {
		return "FLAC"
	}
	return "MP3"
}

// source is a downloaded track held in memory.
type source struct {
	data   []byte
	format audioFormat
}

// memFile lets a byte slice stand in for an opened file.
type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

// download resolves the stream URL if needed and fetches the whole track.
func download(ctx context.Context, client *http.Client, resolve Resolver, id int64, streamURL string) (*source, error) {
	if streamURL == "" {
		if resolve == nil {
			return nil, errors.New("no stream url")
		}
		u, err := resolve(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolve stream: %w", err)
		}
		streamURL = u
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, streamURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxTrackSize))
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("download: empty body")
	}

	return &source{
		data:   data,
		format: detectFormat(resp.Header.Get("Content-Type"), streamURL, data),
	}, nil
}

// detectFormat picks the decoder from the content type, the URL extension,
// then the magic bytes. MP3 is the fallback.
func detectFormat(contentType, streamURL string, data []byte) audioFormat {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mt {
		case "audio/flac", "audio/x-flac":
			return formatFLAC
		case "audio/mpeg", "audio/mp3":
			return formatMP3
		}
	}

	u, _, _ := strings.Cut(streamURL, "?")
	if strings.EqualFold(path.Ext(u), ".flac") {
		return formatFLAC
	}

	if bytes.HasPrefix(skipID3v2Bytes(data), []byte("fLaC")) {
		return formatFLAC
	}
	return formatMP3
}

// decode opens the in-memory track with the matching decoder.
func (s *source) decode() (beep.StreamSeekCloser, beep.Format, error) {
	f := memFile{bytes.NewReader(s.data)}

	// Some encoders prepend ID3v2 tags to FLAC, which its decoder rejects
	if err := skipID3v2(f); err != nil {
		return nil, beep.Format{}, err
	}

	switch s.format {
	case formatFLAC:
		return flac.Decode(f)
	default:
		return decodeGoMP3(f)
	}
}

// skipID3v2 skips an ID3v2 tag if present at the current start of r.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// ID3v2 size is a syncsafe integer: 7 bits per byte
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}

func skipID3v2Bytes(data []byte) []byte {
	r := bytes.NewReader(data)
	if err := skipID3v2(r); err != nil {
		return data
	}
	return data[len(data)-r.Len():]
}
