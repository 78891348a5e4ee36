package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/netwaves/internal/metadata"
)

func TestState_LoginLogout(t *testing.T) {
	s := New()
	assert.False(t, s.LoggedIn())
	assert.Zero(t, s.UserID())

	s.Login(metadata.Profile{UserID: 42, Nickname: "nw"})
	s.SetFavorite(7, true)
	s.SetCurrentTrack(7)

	assert.True(t, s.LoggedIn())
	assert.Equal(t, int64(42), s.UserID())
	assert.Equal(t, "nw", s.Profile().Nickname)

	s.Logout()

	assert.False(t, s.LoggedIn())
	assert.Zero(t, s.UserID())
	_, known := s.Favorite(7)
	assert.False(t, known, "favorite cache survives logout")
	assert.Equal(t, int64(7), s.CurrentTrackID())
}

func TestState_Favorite(t *testing.T) {
	s := New()

	fav, known := s.Favorite(1)
	assert.False(t, fav)
	assert.False(t, known)

	s.SetFavorite(1, false)
	fav, known = s.Favorite(1)
	assert.False(t, fav)
	assert.True(t, known)

	s.SetFavorite(1, true)
	fav, _ = s.Favorite(1)
	assert.True(t, fav)
}
