package session

import (
	"sync"

	"studytrack/internal/domain/entities"
)

// Session binds "who is currently authenticated" to one client connection.
// It holds at most one user, lives in memory only, and is never shared
// between independent connections. A new connection starts empty.
type Session struct {
	mu   sync.RWMutex
	user *entities.User
}

func New() *Session {
	return &Session{}
}

// Current returns the authenticated user, or nil. Pure read.
func (s *Session) Current() *entities.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Set overwrites any existing identity.
func (s *Session) Set(user *entities.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// Clear is idempotent; clearing an empty session is a no-op.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// HasRole is an authorization check: true iff a user is set and its stored
// role equals the argument. It trusts the role recorded on the session user.
func (s *Session) HasRole(role entities.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.Role == role
}
