// Package session holds the signed-in user's backend token and profile.
//
// A Session is created at login or register, restored per request from a
// Store, and cleared on logout or when the backend rejects the token.
package session

import (
	"errors"
	"sync"

	"internhub/internal/model"
)

// ErrNoSession is returned when a session id is unknown or expired.
var ErrNoSession = errors.New("no session")

// State is what a Store persists for one session.
type State struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Session is the explicit session context handed to the API client.
type Session struct {
	ID string

	mu      sync.Mutex
	state   State
	cleared bool
	onClear func(id string)
}

// New returns a session; onClear runs once, the first time Clear is called.
func New(id string, st State, onClear func(id string)) *Session {
	return &Session{ID: id, state: st, onClear: onClear}
}

// Token returns the backend bearer token, or "" once cleared.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

func (s *Session) User() model.User {
	if s == nil {
		return model.User{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.User
}

// Authenticated reports whether the session still holds a token.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Clear drops the stored credentials.
func (s *Session) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.state = State{}
	first := !s.cleared
	s.cleared = true
	hook := s.onClear
	s.mu.Unlock()

	if first && hook != nil {
		hook(s.ID)
	}
}
