// Package session provides server-side browser sessions: an in-memory
// store keyed by opaque session IDs, carried in a signed cookie. The
// only attribute stored today is the visitor's selected ticker.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// TickerKey is the attribute under which the resolved ticker is stored.
const TickerKey = "stock_ticker"

// Session is one browser session's attribute bag.
type Session struct {
	ID        string
	Values    map[string]string
	CreatedAt time.Time
	LastSeen  time.Time
}

// Store holds active sessions in memory.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Create allocates a new session with a random ID.
func (s *Store) Create() *Session {
	now := time.Now()
	sess := &Session{
		ID:        uuid.NewString(),
		Values:    make(map[string]string),
		CreatedAt: now,
		LastSeen:  now,
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session for an ID, or nil if none exists.
func (s *Store) Get(id string) *Session {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	s.mu.Lock()
	sess.LastSeen = time.Now()
	s.mu.Unlock()
	return sess
}

// Set writes an attribute on a session. Repeated writes overwrite: the
// last value wins.
func (s *Store) Set(id, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		sess.Values[key] = value
	}
}

// Value reads an attribute from a session. ok is false when the session
// or the attribute is missing.
func (s *Store) Value(id, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return "", false
	}
	v, ok := sess.Values[key]
	return v, ok
}

// Delete removes a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of active sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
