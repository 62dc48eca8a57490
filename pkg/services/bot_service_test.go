package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotService_RegisterBot(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewBotService(client, newFakeTwitchClient(t, &fakeTwitch{}))
	ctx := t.Context()

	expiry := time.Now().Add(3 * time.Hour)
	bot, err := svc.RegisterBot(ctx, "777", "relay_bot", "Relay Bot", "tok-1", "ref-1", expiry)
	require.NoError(t, err)
	assert.Equal(t, "777", bot.TwitchUserID)
	assert.Equal(t, "relay_bot", bot.TwitchLogin)
	assert.True(t, bot.Enabled)

	// Re-registering the same Twitch user updates in place and re-enables.
	require.NoError(t, svc.DisableOnRevoke(ctx, "777"))
	updated, err := svc.RegisterBot(ctx, "777", "relay_bot2", "Relay Bot", "tok-2", "ref-2", expiry)
	require.NoError(t, err)
	assert.Equal(t, bot.ID, updated.ID)
	assert.Equal(t, "relay_bot2", updated.TwitchLogin)
	assert.Equal(t, "tok-2", updated.AccessToken)
	assert.True(t, updated.Enabled)

	n, err := client.BotAccount.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBotService_RegisterBot_Validation(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewBotService(client, newFakeTwitchClient(t, &fakeTwitch{}))

	_, err := svc.RegisterBot(t.Context(), "", "relay_bot", "", "tok", "ref", time.Now())
	assert.True(t, IsValidationError(err))

	_, err = svc.RegisterBot(t.Context(), "777", "", "", "tok", "ref", time.Now())
	assert.True(t, IsValidationError(err))
}

func TestBotService_FreshUserToken_CachedWhileValid(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewBotService(client, newFakeTwitchClient(t, &fakeTwitch{}))
	ctx := t.Context()

	bot := createTestBot(t, client, "777", "relay_bot")

	token, err := svc.FreshUserToken(ctx, bot.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-token-777", token, "token far from expiry is returned as-is")
}

func TestBotService_FreshUserToken_RefreshesNearExpiry(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewBotService(client, newFakeTwitchClient(t, &fakeTwitch{}))
	ctx := t.Context()

	bot := createTestBot(t, client, "777", "relay_bot")
	require.NoError(t, bot.Update().SetTokenExpiresAt(time.Now().Add(30*time.Second)).Exec(ctx))

	token, err := svc.FreshUserToken(ctx, bot.ID)
	require.NoError(t, err)
	assert.Equal(t, "fake-token", token)

	// The refreshed token and its new expiry are persisted.
	stored, err := client.BotAccount.Get(ctx, bot.ID)
	require.NoError(t, err)
	assert.Equal(t, "fake-token", stored.AccessToken)
	assert.Equal(t, "fake-refresh", stored.RefreshToken)
	require.NotNil(t, stored.TokenExpiresAt)
	assert.True(t, time.Until(*stored.TokenExpiresAt) > 30*time.Minute)
}

func TestBotService_FreshUserToken_Disabled(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewBotService(client, newFakeTwitchClient(t, &fakeTwitch{}))
	ctx := t.Context()

	bot := createTestBot(t, client, "777", "relay_bot")
	require.NoError(t, bot.Update().SetEnabled(false).Exec(ctx))

	_, err := svc.FreshUserToken(ctx, bot.ID)
	assert.ErrorContains(t, err, "disabled")
}

func TestBotService_FreshUserToken_NoRefreshToken(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewBotService(client, newFakeTwitchClient(t, &fakeTwitch{}))
	ctx := t.Context()

	bot := createTestBot(t, client, "777", "relay_bot")
	require.NoError(t, bot.Update().
		SetRefreshToken("").
		SetTokenExpiresAt(time.Now().Add(-time.Minute)).
		Exec(ctx))

	_, err := svc.FreshUserToken(ctx, bot.ID)
	assert.ErrorContains(t, err, "no refresh token")
}

func TestBotService_FreshUserToken_UnknownBot(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewBotService(client, newFakeTwitchClient(t, &fakeTwitch{}))

	_, err := svc.FreshUserToken(t.Context(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBotService_DisableOnRevoke(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewBotService(client, newFakeTwitchClient(t, &fakeTwitch{}))
	ctx := t.Context()

	bot := createTestBot(t, client, "777", "relay_bot")

	require.NoError(t, svc.DisableOnRevoke(ctx, "777"))

	stored, err := client.BotAccount.Get(ctx, bot.ID)
	require.NoError(t, err)
	assert.False(t, stored.Enabled)
	assert.Empty(t, stored.AccessToken)
	assert.Empty(t, stored.RefreshToken)
	assert.Nil(t, stored.TokenExpiresAt)

	// Unknown users are a quiet no-op.
	require.NoError(t, svc.DisableOnRevoke(ctx, "424242"))
}
