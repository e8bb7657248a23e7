// Package session owns the mapping from user identity to game session.
// The store is the only component allowed to create, mutate ownership of,
// or delete sessions.
package session

import (
	"errors"
	"sync"
	"time"

	"footballer-guess-bot/internal/model"
)

// ErrNotFound is returned when a user has no active session.
var ErrNotFound = errors.New("session not found")

// Store is an in-memory, concurrency-safe session store keyed by user id.
// Operations for different users are independent; serialization of a single
// user's operations is handled by the engine via per-user locks, not here.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*model.Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]*model.Session),
	}
}

// Create binds a target to a new active session for the user and stores it.
// Any existing session for the same user is silently replaced: starting a
// new game abandons the old one.
func (s *Store) Create(userID int64, target *model.PlayerRecord, maxQuestions, guessAttempts int) *model.Session {
	sess := &model.Session{
		UserID:            userID,
		Target:            target,
		MaxQuestions:      maxQuestions,
		GuessAttemptsLeft: guessAttempts,
		State:             model.StateActive,
		StartedAt:         time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sess
	return sess
}

// Get retrieves the session for a user.
// Returns ErrNotFound if the user has no active session.
func (s *Store) Get(userID int64) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sess, ok := s.sessions[userID]; ok {
		return sess, nil
	}
	return nil, ErrNotFound
}

// Delete removes the session for a user. Deleting a missing session is a no-op.
func (s *Store) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Count returns the number of active sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
