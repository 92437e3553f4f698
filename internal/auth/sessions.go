package auth

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type session struct {
	userID    string
	expiresAt time.Time
}

// SessionStore holds opaque bearer tokens in memory. Tokens die with the
// process; durable sessions are out of scope for this service.
type SessionStore struct {
	log   *slog.Logger
	ttl   time.Duration
	mu    sync.Mutex
	byTok map[string]session
}

func NewSessionStore(log *slog.Logger, ttl time.Duration) *SessionStore {
	return &SessionStore{
		log:   log,
		ttl:   ttl,
		byTok: make(map[string]session),
	}
}

func (s *SessionStore) Create(userID string) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byTok[token] = session{
		userID:    userID,
		expiresAt: time.Now().Add(s.ttl),
	}

	return token
}

func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byTok, token)
}

// UserID resolves a token to its owner, treating expired tokens as unknown.
func (s *SessionStore) UserID(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byTok[token]
	if !ok || time.Now().After(sess.expiresAt) {
		return "", false
	}

	return sess.userID, true
}

// Run prunes expired sessions until the context is cancelled.
func (s *SessionStore) Run(ctx context.Context) error {
	interval := s.ttl / 2
	if interval < time.Second {
		// ttl is operator-supplied, keep the ticker interval valid
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if pruned := s.prune(); pruned > 0 {
				s.log.DebugContext(ctx, "pruned expired sessions", slog.Int("count", pruned))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *SessionStore) prune() int {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for token, sess := range s.byTok {
		if now.After(sess.expiresAt) {
			delete(s.byTok, token)
			pruned++
		}
	}

	return pruned
}
