package session

import (
	"context"
	"image"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/netwaves/internal/artwork"
	"github.com/llehouerou/netwaves/internal/correlator"
	"github.com/llehouerou/netwaves/internal/dispatch"
	"github.com/llehouerou/netwaves/internal/errmsg"
	"github.com/llehouerou/netwaves/internal/metadata"
)

// Sink receives what the login flow produces for display.
type Sink interface {
	AvatarLoaded(img image.Image)
	PlaylistListed(p metadata.PlaylistSummary, mine bool)
	Status(msg string)
}

// Flow runs the steps that follow a successful login.
type Flow struct {
	state    *State
	client   metadata.Client
	fetcher  dispatch.Fetcher
	work     dispatch.Offloader
	sink     Sink
	loggedIn func()
	logger   *log.Logger
}

// NewFlow creates the login flow. loggedIn, if set, runs after the session
// is marked logged in (the player re-checks the favorite status there).
func NewFlow(
	state *State,
	client metadata.Client,
	fetcher dispatch.Fetcher,
	work dispatch.Offloader,
	sink Sink,
	loggedIn func(),
	logger *log.Logger,
) *Flow {
	return &Flow{
		state:    state,
		client:   client,
		fetcher:  fetcher,
		work:     work,
		sink:     sink,
		loggedIn: loggedIn,
		logger:   logger.With("component", "session"),
	}
}

// OnLoginSuccess marks the session logged in, fetches the avatar once and
// lists the user's playlists, prefetching each one's detail.
func (f *Flow) OnLoginSuccess(profile metadata.Profile) {
	f.state.Login(profile)
	f.logger.Info("login succeeded", "user", profile.UserID)

	f.fetcher.Fetch(profile.AvatarURL, f.showAvatar)

	f.sink.Status("Caching your playlists, this takes a few seconds")
	f.work.Offload("user playlists", func(ctx context.Context) dispatch.Apply {
		lists, err := f.client.UserPlaylists(ctx)
		mine := make([]bool, len(lists))
		for i := range lists {
			mine[i] = f.client.IsPlaylistMine(lists[i])
		}
		return func() { f.listPlaylists(lists, mine, err) }
	})

	if f.loggedIn != nil {
		f.loggedIn()
	}
}

func (f *Flow) showAvatar(resp correlator.Response) {
	if resp.Err != nil {
		f.logger.Warn("avatar fetch failed", "err", resp.Err)
		return
	}
	img, err := artwork.DecodeAvatar(resp.Body)
	if err != nil {
		f.sink.Status(errmsg.Format(errmsg.OpAvatarLoad, err))
		return
	}
	f.sink.AvatarLoaded(img)
}

func (f *Flow) listPlaylists(lists []metadata.PlaylistSummary, mine []bool, err error) {
	if err != nil {
		f.sink.Status(errmsg.Format(errmsg.OpUserPlaylists, err))
		return
	}
	if !f.state.LoggedIn() {
		return
	}

	for i, p := range lists {
		id := p.ID
		// Fire and forget: warms the detail cache
		f.work.Offload("prefetch playlist", func(ctx context.Context) dispatch.Apply {
			if _, err := f.client.PlaylistDetail(ctx, id); err != nil {
				f.logger.Debug("prefetch failed", "playlist", id, "err", err)
			}
			return nil
		})
		f.sink.PlaylistListed(p, mine[i])
	}
}
