package events

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TokenStore issues single-use, short-lived tickets that bind a downstream
// websocket upgrade to an authenticated service account. The HTTP credential
// check happens on POST /v1/ws-token; the upgrade itself only presents the
// ticket, which is consumed atomically on first use.
type TokenStore struct {
	ttl time.Duration

	mu     sync.Mutex
	tokens map[string]tokenEntry

	now func() time.Time
}

type tokenEntry struct {
	serviceAccountID uuid.UUID
	expiresAt        time.Time
}

// NewTokenStore creates a ticket store with the given lifetime.
func NewTokenStore(ttl time.Duration) *TokenStore {
	return &TokenStore{
		ttl:    ttl,
		tokens: make(map[string]tokenEntry),
		now:    time.Now,
	}
}

// Issue creates a new ticket for the service account.
func (s *TokenStore) Issue(serviceAccountID uuid.UUID) string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	token := base64.RawURLEncoding.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for t, entry := range s.tokens {
		if !now.Before(entry.expiresAt) {
			delete(s.tokens, t)
		}
	}
	s.tokens[token] = tokenEntry{
		serviceAccountID: serviceAccountID,
		expiresAt:        now.Add(s.ttl),
	}
	return token
}

// Consume redeems a ticket, returning the bound service account id. A ticket
// can be consumed at most once; expired or unknown tickets fail.
func (s *TokenStore) Consume(token string) (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.tokens[token]
	if !ok {
		return uuid.Nil, false
	}
	delete(s.tokens, token)
	if !s.now().Before(entry.expiresAt) {
		return uuid.Nil, false
	}
	return entry.serviceAccountID, true
}
