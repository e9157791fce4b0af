package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"go-jobboard-backend/internal/domain"
)

const currentUserKeyPrefix = "currentUser:"

type sessionStore struct {
	client *redis.Client
}

// NewSessionStore stores each session's user as JSON under "currentUser:<sid>".
func NewSessionStore(client *redis.Client) domain.SessionStore {
	return &sessionStore{client: client}
}

func key(sessionID string) string {
	return currentUserKeyPrefix + sessionID
}

func (s *sessionStore) Save(ctx context.Context, sessionID string, user *domain.User, ttl time.Duration) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	if err := s.client.Set(ctx, key(sessionID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *sessionStore) Load(ctx context.Context, sessionID string) (*domain.User, error) {
	payload, err := s.client.Get(ctx, key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("session %q: %w", sessionID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, fmt.Errorf("decode session user: %w", err)
	}
	return &user, nil
}

func (s *sessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, key(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
