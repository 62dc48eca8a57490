package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamgate/streamgate/ent/twitchsubscription"
)

func TestSubscriptionService_EnsurePending(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewSubscriptionService(client)
	ctx := t.Context()

	bot := createTestBot(t, client, "111", "bot_a")
	key := InterestKey{BotAccountID: bot.ID, EventType: "channel.follow", BroadcasterUserID: "12345"}

	sub, err := svc.EnsurePending(ctx, key, "websocket")
	require.NoError(t, err)
	assert.Equal(t, twitchsubscription.StatusPending, sub.Status)
	assert.Equal(t, twitchsubscription.TransportWebsocket, sub.Transport)
	assert.Nil(t, sub.TwitchSubscriptionID)

	// Re-ensuring an existing row resets it without creating a second one.
	require.NoError(t, svc.MarkEnabled(ctx, sub.ID, "tw-sub-1", "session-1"))
	again, err := svc.EnsurePending(ctx, key, "webhook")
	require.NoError(t, err)
	assert.Equal(t, sub.ID, again.ID)
	assert.Equal(t, twitchsubscription.StatusPending, again.Status)
	assert.Equal(t, twitchsubscription.TransportWebhook, again.Transport)
	assert.Nil(t, again.TwitchSubscriptionID)
	assert.Nil(t, again.SessionID)

	n, err := client.TwitchSubscription.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSubscriptionService_StatusTransitions(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewSubscriptionService(client)
	ctx := t.Context()

	bot := createTestBot(t, client, "111", "bot_a")
	key := InterestKey{BotAccountID: bot.ID, EventType: "channel.follow", BroadcasterUserID: "12345"}

	sub, err := svc.EnsurePending(ctx, key, "websocket")
	require.NoError(t, err)

	require.NoError(t, svc.MarkEnabled(ctx, sub.ID, "tw-sub-1", "session-1"))
	got, err := svc.GetByKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, twitchsubscription.StatusEnabled, got.Status)
	require.NotNil(t, got.TwitchSubscriptionID)
	assert.Equal(t, "tw-sub-1", *got.TwitchSubscriptionID)
	require.NotNil(t, got.SessionID)
	assert.Equal(t, "session-1", *got.SessionID)

	require.NoError(t, svc.MarkFailed(ctx, sub.ID, "subscription missing proper authorization"))
	got, err = svc.GetByKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, twitchsubscription.StatusFailed, got.Status)
	require.NotNil(t, got.LastError)

	require.NoError(t, svc.MarkRevokedByTwitchID(ctx, "tw-sub-1", "authorization_revoked"))
	got, err = svc.GetByKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, twitchsubscription.StatusRevoked, got.Status)
}

func TestSubscriptionService_GetByTwitchID(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewSubscriptionService(client)
	ctx := t.Context()

	bot := createTestBot(t, client, "111", "bot_a")
	key := InterestKey{BotAccountID: bot.ID, EventType: "channel.follow", BroadcasterUserID: "12345"}

	sub, err := svc.EnsurePending(ctx, key, "websocket")
	require.NoError(t, err)
	require.NoError(t, svc.MarkEnabled(ctx, sub.ID, "tw-sub-1", "session-1"))

	got, err := svc.GetByTwitchID(ctx, "tw-sub-1")
	require.NoError(t, err)
	assert.Equal(t, sub.ID, got.ID)

	_, err = svc.GetByTwitchID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubscriptionService_DeleteByKey(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewSubscriptionService(client)
	ctx := t.Context()

	bot := createTestBot(t, client, "111", "bot_a")
	key := InterestKey{BotAccountID: bot.ID, EventType: "channel.follow", BroadcasterUserID: "12345"}

	sub, err := svc.EnsurePending(ctx, key, "websocket")
	require.NoError(t, err)
	require.NoError(t, svc.MarkEnabled(ctx, sub.ID, "tw-sub-1", "session-1"))

	twitchID, err := svc.DeleteByKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "tw-sub-1", twitchID)

	_, err = svc.GetByKey(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.DeleteByKey(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubscriptionService_ListWebsocketBound(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewSubscriptionService(client)
	ctx := t.Context()

	bot := createTestBot(t, client, "111", "bot_a")
	wsKey := InterestKey{BotAccountID: bot.ID, EventType: "channel.follow", BroadcasterUserID: "1"}
	whKey := InterestKey{BotAccountID: bot.ID, EventType: "user.authorization.revoke", BroadcasterUserID: "2"}
	failedKey := InterestKey{BotAccountID: bot.ID, EventType: "channel.subscribe", BroadcasterUserID: "3"}

	_, err := svc.EnsurePending(ctx, wsKey, "websocket")
	require.NoError(t, err)
	_, err = svc.EnsurePending(ctx, whKey, "webhook")
	require.NoError(t, err)
	failed, err := svc.EnsurePending(ctx, failedKey, "websocket")
	require.NoError(t, err)
	require.NoError(t, svc.MarkFailed(ctx, failed.ID, "boom"))

	bound, err := svc.ListWebsocketBound(ctx)
	require.NoError(t, err)
	require.Len(t, bound, 1)
	assert.Equal(t, "channel.follow", bound[0].EventType)
}

func TestSubscriptionService_ListEnabledByKeys(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewSubscriptionService(client)
	ctx := t.Context()

	bot := createTestBot(t, client, "111", "bot_a")
	enabledKey := InterestKey{BotAccountID: bot.ID, EventType: "channel.follow", BroadcasterUserID: "1"}
	pendingKey := InterestKey{BotAccountID: bot.ID, EventType: "channel.subscribe", BroadcasterUserID: "2"}

	sub, err := svc.EnsurePending(ctx, enabledKey, "websocket")
	require.NoError(t, err)
	require.NoError(t, svc.MarkEnabled(ctx, sub.ID, "tw-1", "s-1"))
	_, err = svc.EnsurePending(ctx, pendingKey, "websocket")
	require.NoError(t, err)

	enabled, err := svc.ListEnabledByKeys(ctx, []InterestKey{enabledKey, pendingKey})
	require.NoError(t, err)
	require.Len(t, enabled, 1)
	assert.Contains(t, enabled, enabledKey)
}
