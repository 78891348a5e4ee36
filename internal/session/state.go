// Package session holds the login state of the user and the flow run after
// a successful login.
package session

import "github.com/llehouerou/netwaves/internal/metadata"

// State is the session record. It is owned by the control goroutine.
type State struct {
	loggedIn       bool
	profile        metadata.Profile
	currentTrackID int64
	favorites      map[int64]bool
}

// New creates a logged-out session.
func New() *State {
	return &State{favorites: make(map[int64]bool)}
}

// Login marks the session logged in as profile.
func (s *State) Login(profile metadata.Profile) {
	s.loggedIn = true
	s.profile = profile
}

// Logout forgets the profile and the favorite cache; the current track is kept.
func (s *State) Logout() {
	s.loggedIn = false
	s.profile = metadata.Profile{}
	clear(s.favorites)
}

func (s *State) LoggedIn() bool { return s.loggedIn }

func (s *State) UserID() int64 { return s.profile.UserID }

func (s *State) Profile() metadata.Profile { return s.profile }

// SetCurrentTrack records the id of the track now playing; 0 means none.
func (s *State) SetCurrentTrack(id int64) { s.currentTrackID = id }

func (s *State) CurrentTrackID() int64 { return s.currentTrackID }

// SetFavorite caches the favorite status of a track.
func (s *State) SetFavorite(id int64, on bool) {
	s.favorites[id] = on
}

// Favorite returns the cached favorite status and whether it is known.
func (s *State) Favorite(id int64) (fav, known bool) {
	fav, known = s.favorites[id]
	return fav, known
}
