// Package session tracks per-user conversation state between messages.
// Sessions live only in memory; they do not survive a restart.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/skydesk/skydesk/chatbot/respond"
	"github.com/skydesk/skydesk/store"
)

// DefaultTimeout is how long an idle session survives before the sweep
// removes it.
const DefaultTimeout = time.Hour

// Session is the conversation state for one user. A session with Query set
// always has Airport set; the classifier's rule ordering guarantees it.
type Session struct {
	UserID       string
	LastActiveAt time.Time
	Airport      store.Airport  // empty until the user picks one
	Query        store.Category // empty until the user picks a category
	PriorReplies []respond.Record
}

// Store is a lock-guarded in-memory session map. It is an explicitly owned
// instance passed into the dispatcher, not a package-level singleton.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the session for userID, creating a fresh one with the
// current time when the user has not been seen before.
func (s *Store) GetOrCreate(userID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		return sess
	}
	sess := &Session{UserID: userID, LastActiveAt: time.Now()}
	s.sessions[userID] = sess
	return sess
}

// Touch marks the session active now. Called on every message.
func (s *Store) Touch(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess.LastActiveAt = time.Now()
}

// Delete removes the session for userID. Deleting an unknown user is a no-op.
func (s *Store) Delete(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// SweepExpired removes every session idle since before now-timeout and
// returns how many were removed. Invoked once per incoming request.
func (s *Store) SweepExpired(now time.Time, timeout time.Duration) int {
	cutoff := now.Add(-timeout)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for userID, sess := range s.sessions {
		if sess.LastActiveAt.Before(cutoff) {
			delete(s.sessions, userID)
			removed++
		}
	}
	if removed > 0 {
		slog.Debug("swept expired sessions", "removed", removed)
	}
	return removed
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
