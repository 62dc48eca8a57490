package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamgate/streamgate/ent"
	"github.com/streamgate/streamgate/ent/serviceinterest"
)

func newTestInterestService(t *testing.T) (*InterestService, *testFixtures) {
	t.Helper()
	client := newTestEntClient(t)
	twitchClient := newFakeTwitchClient(t, &fakeTwitch{
		usersByLogin: map[string]string{"somecaster": "45678"},
	})
	account, _ := createTestServiceAccount(t, client, "consumer")
	bot := createTestBot(t, client, "999", "relay_bot")
	return NewInterestService(client, twitchClient), &testFixtures{
		client:  client,
		account: account,
		bot:     bot,
	}
}

type testFixtures struct {
	client  *ent.Client
	account *ent.ServiceAccount
	bot     *ent.BotAccount
}

func TestInterestService_Upsert(t *testing.T) {
	svc, fx := newTestInterestService(t)
	ctx := t.Context()

	result, err := svc.Upsert(ctx, fx.account.ID, fx.bot.ID, "channel.follow", "12345", "websocket", "")
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, "channel.follow", result.Interest.EventType)
	assert.Equal(t, "12345", result.Interest.BroadcasterUserID)
	assert.Equal(t, serviceinterest.TransportWebsocket, result.Interest.Transport)

	// Companion liveness interests ride along on first registration.
	require.Len(t, result.Companions, 2)
	companionTypes := []string{result.Companions[0].EventType, result.Companions[1].EventType}
	assert.ElementsMatch(t, []string{"stream.online", "stream.offline"}, companionTypes)
	for _, companion := range result.Companions {
		assert.Equal(t, serviceinterest.TransportWebsocket, companion.Transport)
	}
}

func TestInterestService_Upsert_Idempotent(t *testing.T) {
	svc, fx := newTestInterestService(t)
	ctx := t.Context()

	first, err := svc.Upsert(ctx, fx.account.ID, fx.bot.ID, "channel.follow", "12345", "websocket", "")
	require.NoError(t, err)
	second, err := svc.Upsert(ctx, fx.account.ID, fx.bot.ID, "channel.follow", "12345", "websocket", "")
	require.NoError(t, err)

	assert.True(t, first.Created)
	assert.False(t, second.Created)
	assert.Equal(t, first.Interest.ID, second.Interest.ID)
	assert.Empty(t, second.Companions)
	assert.False(t, second.Interest.LastHeartbeatAt.Before(first.Interest.LastHeartbeatAt))
}

func TestInterestService_Upsert_Validation(t *testing.T) {
	svc, fx := newTestInterestService(t)
	ctx := t.Context()

	t.Run("unknown event type", func(t *testing.T) {
		_, err := svc.Upsert(ctx, fx.account.ID, fx.bot.ID, "channel.made.up", "12345", "websocket", "")
		assert.True(t, IsValidationError(err))
	})

	t.Run("webhook requires url", func(t *testing.T) {
		_, err := svc.Upsert(ctx, fx.account.ID, fx.bot.ID, "channel.follow", "12345", "webhook", "")
		assert.True(t, IsValidationError(err))
	})

	t.Run("bad transport", func(t *testing.T) {
		_, err := svc.Upsert(ctx, fx.account.ID, fx.bot.ID, "channel.follow", "12345", "carrier-pigeon", "")
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown bot", func(t *testing.T) {
		_, err := svc.Upsert(ctx, fx.account.ID, uuid.New(), "channel.follow", "12345", "websocket", "")
		assert.True(t, IsValidationError(err))
	})

	t.Run("empty broadcaster", func(t *testing.T) {
		_, err := svc.Upsert(ctx, fx.account.ID, fx.bot.ID, "channel.follow", "  ", "websocket", "")
		assert.True(t, IsValidationError(err))
	})
}

func TestInterestService_ResolveBroadcaster(t *testing.T) {
	svc, _ := newTestInterestService(t)
	ctx := t.Context()

	t.Run("numeric id passes through", func(t *testing.T) {
		id, err := svc.ResolveBroadcaster(ctx, "12345")
		require.NoError(t, err)
		assert.Equal(t, "12345", id)
	})

	t.Run("login resolves via helix", func(t *testing.T) {
		id, err := svc.ResolveBroadcaster(ctx, "SomeCaster")
		require.NoError(t, err)
		assert.Equal(t, "45678", id)
	})

	t.Run("channel url resolves via helix", func(t *testing.T) {
		id, err := svc.ResolveBroadcaster(ctx, "https://www.twitch.tv/somecaster")
		require.NoError(t, err)
		assert.Equal(t, "45678", id)
	})

	t.Run("unknown login", func(t *testing.T) {
		_, err := svc.ResolveBroadcaster(ctx, "nobody_here")
		assert.True(t, IsValidationError(err))
	})
}

func TestInterestService_ResolveBroadcaster_MigratesLegacyRows(t *testing.T) {
	svc, fx := newTestInterestService(t)
	ctx := t.Context()

	// A row persisted under the login, from before id normalization.
	legacy, err := fx.client.ServiceInterest.Create().
		SetServiceAccountID(fx.account.ID).
		SetBotAccountID(fx.bot.ID).
		SetEventType("channel.follow").
		SetBroadcasterUserID("somecaster").
		Save(ctx)
	require.NoError(t, err)

	id, err := svc.ResolveBroadcaster(ctx, "somecaster")
	require.NoError(t, err)
	assert.Equal(t, "45678", id)

	migrated, err := fx.client.ServiceInterest.Get(ctx, legacy.ID)
	require.NoError(t, err)
	assert.Equal(t, "45678", migrated.BroadcasterUserID)
}

func TestInterestService_Delete(t *testing.T) {
	svc, fx := newTestInterestService(t)
	ctx := t.Context()

	result, err := svc.Upsert(ctx, fx.account.ID, fx.bot.ID, "channel.follow", "12345", "websocket", "")
	require.NoError(t, err)

	otherAccount, _ := createTestServiceAccount(t, fx.client, "second-consumer")
	otherResult, err := svc.Upsert(ctx, otherAccount.ID, fx.bot.ID, "channel.follow", "12345", "websocket", "")
	require.NoError(t, err)

	// First delete: the other service still holds the key.
	key, lastForKey, err := svc.Delete(ctx, fx.account.ID, result.Interest.ID)
	require.NoError(t, err)
	assert.False(t, lastForKey)
	assert.Equal(t, "channel.follow", key.EventType)

	// Second delete: key is orphaned.
	_, lastForKey, err = svc.Delete(ctx, otherAccount.ID, otherResult.Interest.ID)
	require.NoError(t, err)
	assert.True(t, lastForKey)
}

func TestInterestService_Delete_WrongService(t *testing.T) {
	svc, fx := newTestInterestService(t)
	ctx := t.Context()

	result, err := svc.Upsert(ctx, fx.account.ID, fx.bot.ID, "channel.follow", "12345", "websocket", "")
	require.NoError(t, err)

	stranger, _ := createTestServiceAccount(t, fx.client, "stranger")
	_, _, err = svc.Delete(ctx, stranger.ID, result.Interest.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInterestService_Heartbeat(t *testing.T) {
	svc, fx := newTestInterestService(t)
	ctx := t.Context()

	result, err := svc.Upsert(ctx, fx.account.ID, fx.bot.ID, "channel.follow", "12345", "websocket", "")
	require.NoError(t, err)

	// Age the whole cluster.
	old := time.Now().Add(-30 * time.Minute)
	_, err = fx.client.ServiceInterest.Update().SetLastHeartbeatAt(old).Save(ctx)
	require.NoError(t, err)

	// One heartbeat touches the interest plus its companions.
	n, err := svc.Heartbeat(ctx, fx.account.ID, result.Interest.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	interests, err := svc.ListByService(ctx, fx.account.ID)
	require.NoError(t, err)
	for _, interest := range interests {
		assert.True(t, interest.LastHeartbeatAt.After(old.Add(time.Minute)))
	}
}

func TestInterestService_Heartbeat_NotFound(t *testing.T) {
	svc, fx := newTestInterestService(t)

	_, err := svc.Heartbeat(t.Context(), fx.account.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInterestService_PruneStale(t *testing.T) {
	svc, fx := newTestInterestService(t)
	ctx := t.Context()

	_, err := svc.Upsert(ctx, fx.account.ID, fx.bot.ID, "channel.follow", "12345", "websocket", "")
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, fx.account.ID, fx.bot.ID, "channel.subscribe", "67890", "websocket", "")
	require.NoError(t, err)

	// Age only the channel.follow cluster.
	old := time.Now().Add(-2 * time.Hour)
	_, err = fx.client.ServiceInterest.Update().
		Where(serviceinterest.BroadcasterUserIDEQ("12345")).
		SetLastHeartbeatAt(old).
		Save(ctx)
	require.NoError(t, err)

	orphaned, removed, err := svc.PruneStale(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 3, removed, "interest plus two companions")
	assert.Len(t, orphaned, 3)
	for _, key := range orphaned {
		assert.Equal(t, "12345", key.BroadcasterUserID)
	}

	remaining, err := svc.ListByService(ctx, fx.account.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 3, "fresh cluster survives")
}

func TestInterestService_Keys(t *testing.T) {
	svc, fx := newTestInterestService(t)
	ctx := t.Context()

	_, err := svc.Upsert(ctx, fx.account.ID, fx.bot.ID, "channel.follow", "12345", "websocket", "")
	require.NoError(t, err)

	other, _ := createTestServiceAccount(t, fx.client, "dupe-consumer")
	_, err = svc.Upsert(ctx, other.ID, fx.bot.ID, "channel.follow", "12345", "websocket", "")
	require.NoError(t, err)

	keys, err := svc.Keys(ctx)
	require.NoError(t, err)
	// channel.follow + both companions, shared across services.
	assert.Len(t, keys, 3)
}
