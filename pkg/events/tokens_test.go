package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStore_IssueAndConsume(t *testing.T) {
	store := NewTokenStore(time.Minute)
	serviceID := uuid.New()

	token := store.Issue(serviceID)
	require.NotEmpty(t, token)

	got, ok := store.Consume(token)
	require.True(t, ok)
	assert.Equal(t, serviceID, got)
}

func TestTokenStore_SingleUse(t *testing.T) {
	store := NewTokenStore(time.Minute)
	token := store.Issue(uuid.New())

	_, ok := store.Consume(token)
	require.True(t, ok)

	_, ok = store.Consume(token)
	assert.False(t, ok)
}

func TestTokenStore_UnknownToken(t *testing.T) {
	store := NewTokenStore(time.Minute)

	got, ok := store.Consume("does-not-exist")
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, got)
}

func TestTokenStore_Expiry(t *testing.T) {
	now := time.Now()
	store := NewTokenStore(time.Minute)
	store.now = func() time.Time { return now }

	token := store.Issue(uuid.New())

	now = now.Add(2 * time.Minute)
	_, ok := store.Consume(token)
	assert.False(t, ok)
}

func TestTokenStore_TokensAreUnique(t *testing.T) {
	store := NewTokenStore(time.Minute)
	serviceID := uuid.New()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := store.Issue(serviceID)
		require.False(t, seen[token])
		seen[token] = true
	}
}
