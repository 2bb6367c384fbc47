package session

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"timesheet-assistant/internal/timesheet/draft"
)

// DefaultCapacity bounds the number of concurrently tracked sessions.
const DefaultCapacity = 1024

// Store holds per-session draft state. Least recently used sessions are
// evicted once capacity is reached, so an abandoned conversation does not
// pin its draft forever.
type Store struct {
	sessions *lru.Cache[string, *draft.State]
}

// NewStore creates a session store with the given capacity.
func NewStore(capacity int) (*Store, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	cache, err := lru.New[string, *draft.State](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}

	return &Store{sessions: cache}, nil
}

// GetOrCreate returns the draft state for the session, creating an empty
// one on first use.
func (s *Store) GetOrCreate(sessionID string) *draft.State {
	if state, ok := s.sessions.Get(sessionID); ok {
		return state
	}

	state := draft.NewState()
	// PeekOrAdd guards against a concurrent first request for the same session.
	if prev, ok, _ := s.sessions.PeekOrAdd(sessionID, state); ok {
		return prev
	}
	return state
}

// Get returns the draft state for the session if one exists.
func (s *Store) Get(sessionID string) (*draft.State, bool) {
	return s.sessions.Get(sessionID)
}

// Remove drops the session's draft state.
func (s *Store) Remove(sessionID string) {
	s.sessions.Remove(sessionID)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	return s.sessions.Len()
}
