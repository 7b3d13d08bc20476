package engine

import (
	"sync"

	"github.com/alexanderramin/stride/internal/domain"
)

// SessionStore holds the per-chat conversation sessions. Sessions are
// created lazily on first access and live for the process lifetime.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*domain.ConversationSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*domain.ConversationSession)}
}

// Get returns the session for the chat, creating it in the default state if
// none exists yet.
func (s *SessionStore) Get(chatID int64) *domain.ConversationSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[chatID]
	if !ok {
		sess = domain.NewSession()
		s.sessions[chatID] = sess
	}
	return sess
}
