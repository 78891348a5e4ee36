package player

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/netwaves/internal/playlist"
)

func nextEvent(t *testing.T, p *Player) Event {
	t.Helper()
	select {
	case ev := <-p.Events():
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no engine event")
		return nil
	}
}

func newTestPlayer(t *testing.T, resolve Resolver) *Player {
	t.Helper()
	p := New(resolve, time.Second, log.New(io.Discard))
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestPlayer_PlayUnresolvableTrackFails(t *testing.T) {
	resolve := func(context.Context, int64) (string, error) {
		return "", errors.New("copyright restricted")
	}
	p := newTestPlayer(t, resolve)

	require.NoError(t, p.Play(playlist.Track{ID: 9, Title: "gone"}))

	ev := nextEvent(t, p)
	failed, ok := ev.(Failed)
	require.True(t, ok, "got %T, want Failed", ev)
	assert.Contains(t, failed.Message, "copyright restricted")
	assert.False(t, p.HasMedia())
}

func TestPlayer_ClearEmitsPlaylistEmpty(t *testing.T) {
	p := newTestPlayer(t, nil)

	p.Clear()

	assert.Equal(t, PlaylistEmpty{}, nextEvent(t, p))
}

func TestPlayer_SetModeEchoes(t *testing.T) {
	p := newTestPlayer(t, nil)

	p.SetMode(playlist.ModeLoopAll)

	assert.Equal(t, ModeChanged{Mode: playlist.ModeLoopAll}, nextEvent(t, p))
}

func TestPlayer_CommandsWithoutMediaAreNoops(t *testing.T) {
	p := newTestPlayer(t, nil)

	p.Pause()
	p.Resume()
	p.Stop()
	p.SeekTo(30 * time.Second)
	p.SetMode(playlist.ModeSingle)

	// Only the mode echo is emitted
	assert.Equal(t, ModeChanged{Mode: playlist.ModeSingle}, nextEvent(t, p))
	assert.False(t, p.HasMedia())
}

func TestPlayer_EventsKeepOrder(t *testing.T) {
	p := newTestPlayer(t, nil)

	for _, m := range []playlist.Mode{playlist.ModeSingle, playlist.ModeShuffle, playlist.ModeSequential} {
		p.SetMode(m)
	}
	p.Clear()

	assert.Equal(t, ModeChanged{Mode: playlist.ModeSingle}, nextEvent(t, p))
	assert.Equal(t, ModeChanged{Mode: playlist.ModeShuffle}, nextEvent(t, p))
	assert.Equal(t, ModeChanged{Mode: playlist.ModeSequential}, nextEvent(t, p))
	assert.Equal(t, PlaylistEmpty{}, nextEvent(t, p))
}

func TestPlayer_PlayAfterClose(t *testing.T) {
	p := New(nil, time.Second, log.New(io.Discard))
	require.NoError(t, p.Close())

	assert.ErrorIs(t, p.Play(playlist.Track{ID: 1}), ErrClosed)
	assert.NoError(t, p.Close())
}
