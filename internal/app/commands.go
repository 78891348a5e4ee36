package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/llehouerou/netwaves/internal/dispatch"
	"github.com/llehouerou/netwaves/internal/errmsg"
	"github.com/llehouerou/netwaves/internal/metadata"
	"github.com/llehouerou/netwaves/internal/playback"
)

func (c *Core) handleCommand(cmd Command) {
	c.logger.Debug("command", "type", fmt.Sprintf("%T", cmd))

	switch cmd := cmd.(type) {
	case Play:
		c.ctrl.Play(cmd.TrackID)
	case PlayTracks:
		c.ctrl.ReplaceQueue(cmd.Tracks...)
	case PlayPlaylist:
		c.ctrl.PlayPlaylist(cmd.PlaylistID)
	case OpenPlaylist:
		c.openPlaylist(cmd.PlaylistID)
	case TogglePlayPause:
		c.ctrl.TogglePlayPause()
	case Next:
		c.ctrl.Next()
	case Previous:
		c.ctrl.Previous()
	case Seek:
		c.ctrl.Seek(cmd.Seconds)
	case RemoveFromList:
		if err := c.ctrl.RemoveFromList(cmd.TrackID); err != nil {
			c.status(errmsg.Format(errmsg.OpPlaylistRemove, err))
		}
	case SetMode:
		c.ctrl.SetMode(cmd.Mode)
	case CycleMode:
		c.ctrl.CycleMode()
	case SetFavorite:
		c.favoriteResult(c.ctrl.SetFavorite(cmd.On))
	case ToggleFavorite:
		c.favoriteResult(c.ctrl.ToggleFavorite())
	case Search:
		c.search(cmd.Text)
	case Login:
		c.login(cmd.Phone, cmd.Password)
	case Logout:
		c.logout()
	}
}

func (c *Core) status(msg string) {
	c.toUI(StatusLine{Message: msg})
}

func (c *Core) favoriteResult(err error) {
	switch {
	case err == nil:
	case errors.Is(err, playback.ErrLoginRequired):
		c.status("Log in to manage your favorites")
	default:
		c.status(errmsg.Format(errmsg.OpFavoriteToggle, err))
	}
}

func (c *Core) search(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	c.status("Searching: " + text)
	c.work.Offload("search", func(ctx context.Context) dispatch.Apply {
		tracks, err := c.client.Search(ctx, text)
		return func() {
			if err != nil {
				c.status(errmsg.FormatWith(errmsg.OpSearch, text, err))
				return
			}
			c.toUI(SearchResults{Text: text, Tracks: tracks})
			if len(tracks) == 0 {
				c.status("No tracks found")
				return
			}
			c.status(fmt.Sprintf("Found %d tracks related to %s", len(tracks), text))
		}
	})
}

func (c *Core) openPlaylist(id int64) {
	c.work.Offload("open playlist", func(ctx context.Context) dispatch.Apply {
		detail, err := c.client.PlaylistDetail(ctx, id)
		return func() {
			if err != nil {
				c.status(errmsg.Format(errmsg.OpPlaylistLoad, err))
				return
			}
			c.toUI(PlaylistOpened{Detail: detail})
		}
	})
}

func (c *Core) login(phone, password string) {
	if c.session.LoggedIn() {
		c.logger.Debug("login ignored, already logged in")
		return
	}
	c.status("Logging in...")
	c.work.Offload("login", func(ctx context.Context) dispatch.Apply {
		profile, err := c.client.Login(ctx, phone, password)
		return func() {
			if err != nil {
				c.status(errmsg.Format(errmsg.OpLogin, err))
				return
			}
			if c.session.LoggedIn() {
				return
			}
			c.flow.OnLoginSuccess(profile)
			c.toUI(LoggedIn{Profile: profile})
		}
	})
}

func (c *Core) logout() {
	if !c.session.LoggedIn() {
		return
	}
	c.session.Logout()
	c.toUI(LoggedOut{})
	c.status("Logged out")
	c.work.Offload("logout", func(ctx context.Context) dispatch.Apply {
		if err := c.client.Logout(ctx); err != nil {
			c.logger.Warn("logout request failed", "err", err)
		}
		return nil
	})
}

// sink receives what the login flow produces.
type sink struct{ c *Core }

func (s sink) AvatarLoaded(img image.Image) { s.c.toUI(AvatarLoaded{Image: img}) }

func (s sink) PlaylistListed(p metadata.PlaylistSummary, mine bool) {
	s.c.toUI(PlaylistListed{Playlist: p, Mine: mine})
}

func (s sink) Status(msg string) { s.c.status(msg) }
