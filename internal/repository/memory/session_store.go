package memory

import (
	"context"
	"sync"
	"time"

	"go-jobboard-backend/internal/domain"
)

type sessionEntry struct {
	user      domain.User
	expiresAt time.Time
}

// sessionStore keeps current-user records in process memory. It is used
// when Redis is not configured or unreachable.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
	now      func() time.Time
}

func NewSessionStore() domain.SessionStore {
	return &sessionStore{
		sessions: make(map[string]sessionEntry),
		now:      time.Now,
	}
}

func (s *sessionStore) Save(ctx context.Context, sessionID string, user *domain.User, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.purgeExpired(now)
	s.sessions[sessionID] = sessionEntry{user: *user, expiresAt: now.Add(ttl)}
	return nil
}

func (s *sessionStore) Load(ctx context.Context, sessionID string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, notFound("session", sessionID)
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.sessions, sessionID)
		return nil, notFound("session", sessionID)
	}
	user := entry.user
	return &user, nil
}

// purgeExpired drops every expired entry. Callers hold s.mu.
func (s *sessionStore) purgeExpired(now time.Time) {
	for id, entry := range s.sessions {
		if !now.Before(entry.expiresAt) {
			delete(s.sessions, id)
		}
	}
}

func (s *sessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}
