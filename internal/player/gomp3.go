package player

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/go-mp3"
)

// bytesPerFrame is one stereo 16-bit sample pair as produced by go-mp3.
const bytesPerFrame = 4

// mp3Stream adapts a go-mp3 decoder to beep.StreamSeekCloser.
type mp3Stream struct {
	dec *mp3.Decoder
	src io.Closer
	pcm []byte
	err error
}

func decodeGoMP3(src io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, error) {
	dec, err := mp3.NewDecoder(src)
	if err != nil {
		return nil, beep.Format{}, err
	}
	rate := dec.SampleRate()
	if rate == 0 {
		return nil, beep.Format{}, errors.New("mp3: invalid sample rate")
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(rate),
		NumChannels: 2,
		Precision:   2,
	}
	return &mp3Stream{dec: dec, src: src}, format, nil
}

func (s *mp3Stream) Stream(samples [][2]float64) (int, bool) {
	if s.err != nil {
		return 0, false
	}

	want := len(samples) * bytesPerFrame
	if cap(s.pcm) < want {
		s.pcm = make([]byte, want)
	}
	buf := s.pcm[:want]

	got, err := io.ReadFull(s.dec, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		s.err = err
		return 0, false
	}

	n := got / bytesPerFrame
	for i := range n {
		frame := buf[i*bytesPerFrame:]
		samples[i][0] = pcm16(frame[0:2])
		samples[i][1] = pcm16(frame[2:4])
	}
	return n, n > 0
}

func pcm16(b []byte) float64 {
	return float64(int16(binary.LittleEndian.Uint16(b))) / 32768 //nolint:gosec // PCM sample
}

func (s *mp3Stream) Err() error { return s.err }

func (s *mp3Stream) Len() int {
	return max(int(s.dec.SampleCount()), 0)
}

func (s *mp3Stream) Position() int {
	return int(s.dec.SamplePosition())
}

func (s *mp3Stream) Seek(p int) error {
	p = min(max(p, 0), s.Len())
	if err := s.dec.SeekToSample(int64(p)); err != nil {
		return err
	}
	s.err = nil
	return nil
}

func (s *mp3Stream) Close() error {
	return s.src.Close()
}
