package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one issued login token.
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

// TokenStore is an in-memory session token registry with TTL expiry.
type TokenStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]Session
}

func NewTokenStore(ttl time.Duration) *TokenStore {
	return &TokenStore{
		ttl:      ttl,
		sessions: make(map[string]Session),
	}
}

// Issue creates a fresh token for a user.
func (ts *TokenStore) Issue(username string) Session {
	s := Session{
		Token:     uuid.NewString(),
		Username:  username,
		ExpiresAt: time.Now().Add(ts.ttl),
	}
	ts.mu.Lock()
	ts.sessions[s.Token] = s
	ts.mu.Unlock()
	return s
}

// Validate resolves a token to its username. Expired tokens are rejected
// and dropped.
func (ts *TokenStore) Validate(token string) (string, bool) {
	ts.mu.RLock()
	s, ok := ts.sessions[token]
	ts.mu.RUnlock()
	if !ok {
		return "", false
	}
	if time.Now().After(s.ExpiresAt) {
		ts.Revoke(token)
		return "", false
	}
	return s.Username, true
}

// Revoke drops a token.
func (ts *TokenStore) Revoke(token string) {
	ts.mu.Lock()
	delete(ts.sessions, token)
	ts.mu.Unlock()
}

// CleanupExpired periodically removes expired sessions until the context
// is cancelled.
func (ts *TokenStore) CleanupExpired(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			ts.mu.Lock()
			for token, s := range ts.sessions {
				if now.After(s.ExpiresAt) {
					delete(ts.sessions, token)
				}
			}
			ts.mu.Unlock()
		}
	}
}
