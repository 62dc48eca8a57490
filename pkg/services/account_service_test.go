package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Authenticate(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewAccountService(client)
	ctx := t.Context()

	account, secret := createTestServiceAccount(t, client, "alerts-bot")

	t.Run("valid credentials", func(t *testing.T) {
		got, err := svc.Authenticate(ctx, account.ClientID, secret)
		require.NoError(t, err)
		assert.Equal(t, account.ID, got.ID)
		assert.Equal(t, "alerts-bot", got.Name)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, account.ClientID, "not-the-secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown client id", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "missing", secret)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty credentials", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("disabled account", func(t *testing.T) {
		disabled, disabledSecret := createTestServiceAccount(t, client, "retired")
		require.NoError(t, disabled.Update().SetEnabled(false).Exec(ctx))

		_, err := svc.Authenticate(ctx, disabled.ClientID, disabledSecret)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAccountService_CreateServiceAccount(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewAccountService(client)

	account, secret, err := svc.CreateServiceAccount(t.Context(), "chat-overlay")
	require.NoError(t, err)
	assert.Equal(t, "chat-overlay", account.Name)
	assert.NotEmpty(t, account.ClientID)
	assert.NotEmpty(t, secret)
	assert.True(t, account.Enabled)

	_, _, err = svc.CreateServiceAccount(t.Context(), "")
	assert.True(t, IsValidationError(err))
}

func TestAccountService_CanUseBot(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewAccountService(client)
	ctx := t.Context()

	account, _ := createTestServiceAccount(t, client, "moderation")
	botA := createTestBot(t, client, "111", "bot_a")
	botB := createTestBot(t, client, "222", "bot_b")

	// No allow-list rows: every bot is usable.
	ok, err := svc.CanUseBot(ctx, account.ID, botA.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// Once a row exists the list is exhaustive.
	require.NoError(t, svc.GrantBotAccess(ctx, account.ID, botA.ID))

	ok, err = svc.CanUseBot(ctx, account.ID, botA.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.CanUseBot(ctx, account.ID, botB.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// Other services are unaffected.
	other, _ := createTestServiceAccount(t, client, "other")
	ok, err = svc.CanUseBot(ctx, other.ID, botB.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAccountService_GrantBotAccess_Idempotent(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewAccountService(client)
	ctx := t.Context()

	account, _ := createTestServiceAccount(t, client, "grants")
	bot := createTestBot(t, client, "333", "bot_c")

	require.NoError(t, svc.GrantBotAccess(ctx, account.ID, bot.ID))
	require.NoError(t, svc.GrantBotAccess(ctx, account.ID, bot.ID))

	n, err := client.ServiceBotAccess.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestAccountService_CanUseBot_UnknownService(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewAccountService(client)

	ok, err := svc.CanUseBot(t.Context(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.True(t, ok, "a service with no allow-list rows may use any bot")
}
