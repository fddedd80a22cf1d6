package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// idleTTL bounds how long an untouched session survives. Sessions live in
// process memory only, so eviction equals logout for that client.
const idleTTL = 24 * time.Hour

type registryEntry struct {
	session  *Session
	lastSeen time.Time
}

// Registry hands each client connection its own Session, keyed by an opaque
// token the delivery layer stores in a cookie. Everything lives in process
// memory; a restart logs every client out. Tokens idle past idleTTL are
// evicted so abandoned cookies cannot grow the map forever.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
}

func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]*registryEntry)}
	go r.cleanupIdleEntries()
	return r
}

// Get returns the session for token, creating one for unknown tokens. Each
// lookup refreshes the token's idle clock.
func (r *Registry) Get(token string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[token]; ok {
		e.lastSeen = time.Now()
		return e.session
	}
	e := &registryEntry{session: New(), lastSeen: time.Now()}
	r.entries[token] = e
	return e.session
}

// Issue creates a fresh token with an empty session bound to it.
func (r *Registry) Issue() (string, *Session) {
	token := uuid.NewString()
	e := &registryEntry{session: New(), lastSeen: time.Now()}
	r.mu.Lock()
	r.entries[token] = e
	r.mu.Unlock()
	return token, e.session
}

// Drop forgets a token entirely. Unknown tokens are a no-op.
func (r *Registry) Drop(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, token)
}

func (r *Registry) evictIdle(cutoff time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for token, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			delete(r.entries, token)
		}
	}
}

func (r *Registry) cleanupIdleEntries() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		r.evictIdle(time.Now().Add(-idleTTL))
	}
}
