package metadata

import (
	"fmt"
	"time"

	"github.com/llehouerou/netwaves/internal/playlist"
)

// envelope is the status part every response carries.
type envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Msg     string `json:"msg"`
}

func (e envelope) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Msg
}

type loginResponse struct {
	Profile *struct {
		UserID    int64  `json:"userId"`
		Nickname  string `json:"nickname"`
		AvatarURL string `json:"avatarUrl"`
	} `json:"profile"`
}

type playlistResult struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	TrackCount  int    `json:"trackCount"`
	CoverImgURL string `json:"coverImgUrl"`
	Creator     struct {
		UserID int64 `json:"userId"`
	} `json:"creator"`
	Tracks []songResult `json:"tracks"`
}

type userPlaylistResponse struct {
	Playlist []playlistResult `json:"playlist"`
}

type playlistDetailResponse struct {
	Playlist *playlistResult `json:"playlist"`
}

type songResult struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"ar"`
	Album struct {
		Name   string `json:"name"`
		PicURL string `json:"picUrl"`
	} `json:"al"`
	DurationMS int64 `json:"dt"`
}

type songDetailResponse struct {
	Songs []songResult `json:"songs"`
}

type searchResponse struct {
	Result struct {
		Songs     []songResult `json:"songs"`
		SongCount int          `json:"songCount"`
	} `json:"result"`
}

type likeListResponse struct {
	IDs []int64 `json:"ids"`
}

type songURLResponse struct {
	Data []struct {
		ID  int64  `json:"id"`
		URL string `json:"url"`
	} `json:"data"`
}

func convertProfile(r loginResponse) (Profile, error) {
	if r.Profile == nil || r.Profile.UserID == 0 {
		return Profile{}, fmt.Errorf("%w: login without profile", ErrInvalid)
	}
	return Profile{
		UserID:    r.Profile.UserID,
		Nickname:  r.Profile.Nickname,
		AvatarURL: r.Profile.AvatarURL,
	}, nil
}

func convertSummary(p playlistResult) (PlaylistSummary, error) {
	if p.ID == 0 {
		return PlaylistSummary{}, fmt.Errorf("%w: playlist without id", ErrInvalid)
	}
	return PlaylistSummary{
		ID:         p.ID,
		Name:       p.Name,
		CreatorID:  p.Creator.UserID,
		TrackCount: p.TrackCount,
		CoverURL:   p.CoverImgURL,
	}, nil
}

func convertSong(s songResult) (playlist.Track, error) {
	if s.ID == 0 {
		return playlist.Track{}, fmt.Errorf("%w: song without id", ErrInvalid)
	}
	if s.Name == "" {
		return playlist.Track{}, fmt.Errorf("%w: song %d without name", ErrInvalid, s.ID)
	}
	if s.DurationMS < 0 {
		return playlist.Track{}, fmt.Errorf("%w: song %d with negative duration", ErrInvalid, s.ID)
	}

	artists := make([]string, 0, len(s.Artists))
	for _, a := range s.Artists {
		if a.Name != "" {
			artists = append(artists, a.Name)
		}
	}

	return playlist.Track{
		ID:       s.ID,
		Title:    s.Name,
		Artists:  artists,
		Album:    s.Album.Name,
		ArtURL:   s.Album.PicURL,
		Duration: time.Duration(s.DurationMS) * time.Millisecond,
	}, nil
}

// convertSongs converts every valid song and returns the invalid ones' errors.
func convertSongs(songs []songResult) ([]playlist.Track, []error) {
	tracks := make([]playlist.Track, 0, len(songs))
	var errs []error
	for _, s := range songs {
		t, err := convertSong(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		tracks = append(tracks, t)
	}
	return tracks, errs
}
