package session

import (
	"errors"
	"sync"

	"github.com/bakerskart/kart/internal/domain"
	"github.com/bakerskart/kart/internal/store"
)

// Storage keys within the sessions bucket
const (
	keyUser  = "user"
	keyAdmin = "admin"
	keyTheme = "theme"
)

// ErrEmptyToken is returned when a login result carries no bearer token.
// A stored session must always be usable for authenticated calls.
var ErrEmptyToken = errors.New("session token must not be empty")

// Scope identifies which of the two independent sessions an event concerns
type Scope int

const (
	ScopeUser Scope = iota
	ScopeAdmin
)

func (s Scope) String() string {
	if s == ScopeAdmin {
		return "admin"
	}
	return "user"
}

// EndedFunc is called after a session has been cleared, with the scope that
// ended. The cache layer subscribes to drop per-user reads so a later
// (possibly anonymous) viewer never sees another identity's data.
type EndedFunc func(scope Scope)

// Store holds the client's authentication state and theme preference. Every
// mutation persists to the durable store before returning, so a crash right
// after login cannot lose the session on the next start. Injected into
// everything that needs session state; never a package-level singleton.
type Store struct {
	backend *store.Store

	mu    sync.RWMutex
	user  *domain.UserSession
	admin *domain.AdminSession
	theme domain.Theme

	onEnded []EndedFunc
}

// NewStore loads persisted sessions and the theme preference from backend.
// A missing key means anonymous / default theme.
func NewStore(backend *store.Store) *Store {
	s := &Store{backend: backend, theme: domain.ThemeWinter}

	var user domain.UserSession
	if backend.GetSession(keyUser, &user) && user.Token != "" {
		s.user = &user
	}
	var admin domain.AdminSession
	if backend.GetSession(keyAdmin, &admin) && admin.Token != "" {
		s.admin = &admin
	}
	var theme domain.Theme
	if backend.GetPref(keyTheme, &theme) && theme != "" {
		s.theme = theme
	}

	return s
}

// OnSessionEnded registers fn to be called whenever a session is cleared,
// whether by explicit logout or by the gateway after an auth failure.
func (s *Store) OnSessionEnded(fn EndedFunc) {
	s.mu.Lock()
	s.onEnded = append(s.onEnded, fn)
	s.mu.Unlock()
}

// Get returns the current session state. The returned pointers are shared;
// callers must not mutate them.
func (s *Store) Get() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Session{User: s.user, Admin: s.admin}
}

// SetUser stores a shopper session and persists it before returning.
func (s *Store) SetUser(user domain.User, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	sess := &domain.UserSession{User: user, Token: token}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.SaveSession(keyUser, sess); err != nil {
		return err
	}
	s.user = sess
	return nil
}

// SetAdmin stores a back-office session and persists it before returning.
func (s *Store) SetAdmin(admin domain.Admin, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	sess := &domain.AdminSession{Admin: admin, Token: token}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.SaveSession(keyAdmin, sess); err != nil {
		return err
	}
	s.admin = sess
	return nil
}

// ClearUser drops the shopper session and notifies subscribers.
// Clearing an already-anonymous session is a no-op.
func (s *Store) ClearUser() {
	s.clear(ScopeUser)
}

// ClearAdmin drops the back-office session and notifies subscribers.
func (s *Store) ClearAdmin() {
	s.clear(ScopeAdmin)
}

func (s *Store) clear(scope Scope) {
	s.mu.Lock()
	switch scope {
	case ScopeUser:
		if s.user == nil {
			s.mu.Unlock()
			return
		}
		s.user = nil
		s.backend.DeleteSession(keyUser)
	case ScopeAdmin:
		if s.admin == nil {
			s.mu.Unlock()
			return
		}
		s.admin = nil
		s.backend.DeleteSession(keyAdmin)
	}
	subs := make([]EndedFunc, len(s.onEnded))
	copy(subs, s.onEnded)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(scope)
	}
}

// UserToken returns the shopper bearer token, or "" when anonymous.
func (s *Store) UserToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Token
}

// AdminToken returns the back-office bearer token, or "" when anonymous.
func (s *Store) AdminToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.admin == nil {
		return ""
	}
	return s.admin.Token
}

// Theme returns the current theme preference.
func (s *Store) Theme() domain.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// ToggleTheme flips between the two themes and persists the choice.
func (s *Store) ToggleTheme() (domain.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.theme.Toggle()
	if err := s.backend.SavePref(keyTheme, next); err != nil {
		return s.theme, err
	}
	s.theme = next
	return next, nil
}
