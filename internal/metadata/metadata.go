// Package metadata is the boundary to the remote music metadata service:
// accounts, playlists, track details, search, favorites and stream URLs.
//
// Responses are validated and converted into typed values here; nothing past
// this package sees the wire format.
package metadata

import (
	"context"
	"errors"

	"github.com/llehouerou/netwaves/internal/playlist"
)

var (
	// ErrAPI is returned when the service answers with a non-success code.
	ErrAPI = errors.New("metadata api error")
	// ErrInvalid is returned when a response is missing required fields.
	ErrInvalid = errors.New("invalid metadata response")
	// ErrNotLoggedIn is returned by calls that need an account.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrNoStream is returned when a track has no playable URL.
	ErrNoStream = errors.New("no stream available")
)

// Profile is the logged-in user.
type Profile struct {
	UserID    int64
	Nickname  string
	AvatarURL string
}

// PlaylistSummary is a playlist as listed in the user's library.
type PlaylistSummary struct {
	ID         int64
	Name       string
	CreatorID  int64
	TrackCount int
	CoverURL   string
}

// PlaylistDetail is a playlist with its tracks.
type PlaylistDetail struct {
	PlaylistSummary
	Tracks []playlist.Track
}

// FavoriteAction adds or removes a track from the favorites list.
type FavoriteAction int

const (
	FavoriteAdd FavoriteAction = iota
	FavoriteDel
)

func (a FavoriteAction) String() string {
	if a == FavoriteAdd {
		return "add"
	}
	return "del"
}

// Client is the metadata collaborator used by the player core.
type Client interface {
	Login(ctx context.Context, phone, password string) (Profile, error)
	Logout(ctx context.Context) error
	UserPlaylists(ctx context.Context) ([]PlaylistSummary, error)
	PlaylistDetail(ctx context.Context, id int64) (PlaylistDetail, error)
	// SongDetail returns an empty slice when the track is unavailable.
	SongDetail(ctx context.Context, id int64) ([]playlist.Track, error)
	Search(ctx context.Context, text string) ([]playlist.Track, error)
	IsFavorite(ctx context.Context, id int64) (bool, error)
	SetFavorite(ctx context.Context, id int64, action FavoriteAction) error
	// IsPlaylistMine reports whether the logged-in user created p.
	IsPlaylistMine(p PlaylistSummary) bool
	StreamURL(ctx context.Context, id int64) (string, error)
}
