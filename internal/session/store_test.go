package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakerskart/kart/internal/domain"
	"github.com/bakerskart/kart/internal/store"
)

func newTestBackend(t *testing.T) *store.Store {
	t.Helper()
	backend, err := store.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })
	return backend
}

func TestStoreStartsAnonymous(t *testing.T) {
	s := NewStore(newTestBackend(t))

	sess := s.Get()
	assert.Nil(t, sess.User)
	assert.Nil(t, sess.Admin)
	assert.Equal(t, domain.ThemeWinter, s.Theme())
}

func TestSetUserRejectsEmptyToken(t *testing.T) {
	s := NewStore(newTestBackend(t))

	err := s.SetUser(domain.User{ID: "u1"}, "")
	assert.ErrorIs(t, err, ErrEmptyToken)
	assert.Nil(t, s.Get().User)
}

func TestSessionsAreIndependent(t *testing.T) {
	s := NewStore(newTestBackend(t))

	require.NoError(t, s.SetUser(domain.User{ID: "u1", Username: "asha"}, "user-token"))
	require.NoError(t, s.SetAdmin(domain.Admin{ID: "a1", Role: domain.RoleStaff}, "admin-token"))

	sess := s.Get()
	require.NotNil(t, sess.User)
	require.NotNil(t, sess.Admin)

	// Clearing one surface must not touch the other
	s.ClearUser()
	sess = s.Get()
	assert.Nil(t, sess.User)
	require.NotNil(t, sess.Admin)
	assert.Equal(t, "admin-token", s.AdminToken())
}

func TestSessionsSurviveReload(t *testing.T) {
	dir := t.TempDir()

	backend, err := store.Open(dir)
	require.NoError(t, err)
	s := NewStore(backend)
	require.NoError(t, s.SetUser(domain.User{ID: "u1", Username: "asha"}, "user-token"))
	_, err = s.ToggleTheme()
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	// Reopen against the same directory, as a process restart would
	backend, err = store.Open(dir)
	require.NoError(t, err)
	defer backend.Close()

	reloaded := NewStore(backend)
	sess := reloaded.Get()
	require.NotNil(t, sess.User)
	assert.Equal(t, "asha", sess.User.User.Username)
	assert.Equal(t, "user-token", reloaded.UserToken())
	assert.Equal(t, domain.ThemeDracula, reloaded.Theme())
}

func TestClearNotifiesSubscribers(t *testing.T) {
	s := NewStore(newTestBackend(t))
	require.NoError(t, s.SetUser(domain.User{ID: "u1"}, "tok"))
	require.NoError(t, s.SetAdmin(domain.Admin{ID: "a1", Role: domain.RoleAdmin}, "tok"))

	var ended []Scope
	s.OnSessionEnded(func(scope Scope) { ended = append(ended, scope) })

	s.ClearAdmin()
	s.ClearUser()
	assert.Equal(t, []Scope{ScopeAdmin, ScopeUser}, ended)

	// Clearing an already-anonymous session must not re-notify
	s.ClearUser()
	assert.Len(t, ended, 2)
}

func TestToggleThemeFlipsAndPersists(t *testing.T) {
	s := NewStore(newTestBackend(t))

	next, err := s.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDracula, next)

	next, err = s.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeWinter, next)
}
