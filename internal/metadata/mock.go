package metadata

import (
	"context"
	"sync"

	"github.com/llehouerou/netwaves/internal/playlist"
)

// FavoriteCall records one SetFavorite call.
type FavoriteCall struct {
	ID     int64
	Action FavoriteAction
}

// Mock is a test double for Client. Results are configured with the Set
// helpers; every call is recorded.
type Mock struct {
	mu sync.Mutex

	profile   Profile
	loginErr  error
	playlists []PlaylistSummary
	details   map[int64]PlaylistDetail
	songs     map[int64][]playlist.Track
	search    []playlist.Track
	favorites map[int64]bool
	streams   map[int64]string
	err       error

	loginCalls     int
	playlistsCalls int
	detailCalls    []int64
	songCalls      []int64
	searchCalls    []string
	isFavCalls     []int64
	favoriteCalls  []FavoriteCall
	streamCalls    []int64
}

// NewMock creates an empty mock.
func NewMock() *Mock {
	return &Mock{
		details:   make(map[int64]PlaylistDetail),
		songs:     make(map[int64][]playlist.Track),
		favorites: make(map[int64]bool),
		streams:   make(map[int64]string),
	}
}

func (m *Mock) Login(_ context.Context, _, _ string) (Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loginCalls++
	if m.loginErr != nil {
		return Profile{}, m.loginErr
	}
	return m.profile, nil
}

func (m *Mock) Logout(context.Context) error { return nil }

func (m *Mock) UserPlaylists(context.Context) ([]PlaylistSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playlistsCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.playlists, nil
}

func (m *Mock) PlaylistDetail(_ context.Context, id int64) (PlaylistDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.detailCalls = append(m.detailCalls, id)
	if m.err != nil {
		return PlaylistDetail{}, m.err
	}
	d, ok := m.details[id]
	if !ok {
		return PlaylistDetail{PlaylistSummary: PlaylistSummary{ID: id}}, nil
	}
	return d, nil
}

func (m *Mock) SongDetail(_ context.Context, id int64) ([]playlist.Track, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.songCalls = append(m.songCalls, id)
	if m.err != nil {
		return nil, m.err
	}
	return m.songs[id], nil
}

func (m *Mock) Search(_ context.Context, text string) ([]playlist.Track, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchCalls = append(m.searchCalls, text)
	if m.err != nil {
		return nil, m.err
	}
	return m.search, nil
}

func (m *Mock) IsFavorite(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isFavCalls = append(m.isFavCalls, id)
	if m.err != nil {
		return false, m.err
	}
	return m.favorites[id], nil
}

func (m *Mock) SetFavorite(_ context.Context, id int64, action FavoriteAction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.favoriteCalls = append(m.favoriteCalls, FavoriteCall{ID: id, Action: action})
	if m.err != nil {
		return m.err
	}
	m.favorites[id] = action == FavoriteAdd
	return nil
}

func (m *Mock) IsPlaylistMine(p PlaylistSummary) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return p.CreatorID != 0 && p.CreatorID == m.profile.UserID
}

func (m *Mock) StreamURL(_ context.Context, id int64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.streamCalls = append(m.streamCalls, id)
	if u, ok := m.streams[id]; ok {
		return u, nil
	}
	return "", ErrNoStream
}

// Test helpers

// SetProfile sets the profile returned by Login.
func (m *Mock) SetProfile(p Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = p
}

// SetLoginError makes Login fail.
func (m *Mock) SetLoginError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loginErr = err
}

// SetError makes every other call fail with err.
func (m *Mock) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *Mock) SetPlaylists(p ...PlaylistSummary) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playlists = p
}

func (m *Mock) SetPlaylistDetail(d PlaylistDetail) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.details[d.ID] = d
}

// SetSong registers the detail result for id; no tracks means unavailable.
func (m *Mock) SetSong(id int64, tracks ...playlist.Track) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.songs[id] = tracks
}

func (m *Mock) SetSearchResult(tracks ...playlist.Track) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.search = tracks
}

func (m *Mock) SetFavoriteState(id int64, fav bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.favorites[id] = fav
}

func (m *Mock) SetStreamURL(id int64, u string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.streams[id] = u
}

func (m *Mock) LoginCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loginCalls
}

func (m *Mock) UserPlaylistsCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playlistsCalls
}

func (m *Mock) PlaylistDetailCalls() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int64(nil), m.detailCalls...)
}

func (m *Mock) SongDetailCalls() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int64(nil), m.songCalls...)
}

func (m *Mock) SearchCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.searchCalls...)
}

func (m *Mock) IsFavoriteCalls() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int64(nil), m.isFavCalls...)
}

func (m *Mock) SetFavoriteCalls() []FavoriteCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]FavoriteCall(nil), m.favoriteCalls...)
}

func (m *Mock) StreamURLCalls() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int64(nil), m.streamCalls...)
}

// Verify Mock implements Client.
var _ Client = (*Mock)(nil)
