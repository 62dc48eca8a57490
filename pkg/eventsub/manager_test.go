package eventsub

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamgate/streamgate/ent/twitchsubscription"
	"github.com/streamgate/streamgate/pkg/services"
	"github.com/streamgate/streamgate/pkg/twitch"
)

func TestManager_Ensure_Webhook(t *testing.T) {
	h := newManagerHarness(t)
	ctx := t.Context()

	key := h.addInterest(t, "channel.follow", "12345")
	require.NoError(t, h.manager.Ensure(ctx, key))

	record, err := h.subs.GetByKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, twitchsubscription.StatusEnabled, record.Status)
	assert.Equal(t, twitchsubscription.TransportWebhook, record.Transport)
	require.NotNil(t, record.TwitchSubscriptionID)

	upstream, ok := h.api.subscription(*record.TwitchSubscriptionID)
	require.True(t, ok)
	assert.Equal(t, "webhook", upstream.Transport.Method)
	assert.Equal(t, "https://bridge.example.com/webhooks/twitch/eventsub", upstream.Transport.Callback)
	assert.Equal(t, "12345", upstream.Condition["broadcaster_user_id"])

	// Idempotent: a second ensure does not touch Twitch again.
	before := h.api.createCalls
	require.NoError(t, h.manager.Ensure(ctx, key))
	assert.Equal(t, before, h.api.createCalls)
}

func TestManager_Ensure_ChatCondition(t *testing.T) {
	h := newManagerHarness(t)
	ctx := t.Context()

	key := h.addInterest(t, "channel.chat.message", "12345")
	require.NoError(t, h.manager.Ensure(ctx, key))

	record, err := h.subs.GetByKey(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, record.TwitchSubscriptionID)

	upstream, ok := h.api.subscription(*record.TwitchSubscriptionID)
	require.True(t, ok)
	assert.Equal(t, "9001", upstream.Condition["user_id"], "chat conditions carry the bot user id")
}

func TestManager_Ensure_WebsocketDeferredUntilWelcome(t *testing.T) {
	h := newManagerHarness(t)
	h.withoutWebhook()
	ctx := t.Context()

	key := h.addInterest(t, "channel.follow", "12345")

	// No session yet: the row stays pending and Twitch is not called.
	require.NoError(t, h.manager.Ensure(ctx, key))
	record, err := h.subs.GetByKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, twitchsubscription.StatusPending, record.Status)
	assert.Equal(t, 0, h.api.createCalls)

	h.manager.HandleSessionWelcome(ctx, "session-1")

	record, err = h.subs.GetByKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, twitchsubscription.StatusEnabled, record.Status)
	require.NotNil(t, record.SessionID)
	assert.Equal(t, "session-1", *record.SessionID)

	upstream, ok := h.api.subscription(*record.TwitchSubscriptionID)
	require.True(t, ok)
	assert.Equal(t, "websocket", upstream.Transport.Method)
	assert.Equal(t, "session-1", upstream.Transport.SessionID)
}

func TestManager_SessionRotationRecreatesSubscriptions(t *testing.T) {
	h := newManagerHarness(t)
	h.withoutWebhook()
	ctx := t.Context()

	key := h.addInterest(t, "channel.follow", "12345")
	require.NoError(t, h.manager.Ensure(ctx, key))
	h.manager.HandleSessionWelcome(ctx, "session-1")

	h.manager.HandleSessionWelcome(ctx, "session-2")

	record, err := h.subs.GetByKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, twitchsubscription.StatusEnabled, record.Status)
	require.NotNil(t, record.SessionID)
	assert.Equal(t, "session-2", *record.SessionID)
}

func TestManager_Ensure_TerminalFailureEmitsError(t *testing.T) {
	h := newManagerHarness(t)
	ctx := t.Context()

	receiver, url := newEnvelopeReceiver(t)
	result, err := h.interests.Upsert(ctx, h.account.ID, h.bot.ID, "channel.follow", "12345", "webhook", url)
	require.NoError(t, err)
	key := services.InterestKey{
		BotAccountID:      h.bot.ID,
		EventType:         result.Interest.EventType,
		BroadcasterUserID: result.Interest.BroadcasterUserID,
	}

	h.api.failCreates(http.StatusForbidden, "subscription missing proper authorization")

	err = h.manager.Ensure(ctx, key)
	require.Error(t, err)

	record, err := h.subs.GetByKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, twitchsubscription.StatusFailed, record.Status)

	require.Eventually(t, func() bool { return receiver.count() >= 1 }, 5*time.Second, 50*time.Millisecond)
	env := receiver.last()
	assert.Equal(t, "subscription.error", env.Type)
	assert.Equal(t, "twitch-service", env.Provider)

	var body struct {
		ErrorCode string `json:"error_code"`
		EventType string `json:"event_type"`
	}
	require.NoError(t, json.Unmarshal(env.Event, &body))
	assert.Equal(t, CodeInsufficientPermissions, body.ErrorCode)
	assert.Equal(t, "channel.follow", body.EventType)

	// Repeated failures inside the cooldown window stay quiet.
	_ = h.manager.Ensure(ctx, key)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, 1, receiver.count())
}

func TestManager_Ensure_MissingScopeIsTerminal(t *testing.T) {
	h := newManagerHarness(t)
	h.withoutWebhook()
	ctx := t.Context()

	receiver, url := newEnvelopeReceiver(t)
	_, err := h.interests.Upsert(ctx, h.account.ID, h.bot.ID, "channel.poll.begin", "12345", "webhook", url)
	require.NoError(t, err)
	key := services.InterestKey{
		BotAccountID:      h.bot.ID,
		EventType:         "channel.poll.begin",
		BroadcasterUserID: "12345",
	}

	h.manager.HandleSessionWelcome(ctx, "session-1")
	h.api.setScopes("user:read:chat")

	// The bot token lacks channel:read:polls: the create must not even be
	// attempted, and the failure is terminal.
	err = h.manager.Ensure(ctx, key)
	require.Error(t, err)
	assert.Equal(t, 0, h.api.createCalls)

	record, err := h.subs.GetByKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, twitchsubscription.StatusFailed, record.Status)

	require.Eventually(t, func() bool { return receiver.count() >= 1 }, 5*time.Second, 50*time.Millisecond)
	var body struct {
		ErrorCode string `json:"error_code"`
		EventType string `json:"event_type"`
	}
	require.NoError(t, json.Unmarshal(receiver.last().Event, &body))
	assert.Equal(t, CodeMissingScope, body.ErrorCode)
	assert.Equal(t, "channel.poll.begin", body.EventType)

	// Once the authorization carries the scope, ensure goes through.
	h.api.setScopes("channel:read:polls")
	require.NoError(t, h.manager.Ensure(ctx, key))
	assert.Equal(t, 1, h.api.createCalls)
}

func TestManager_Release(t *testing.T) {
	h := newManagerHarness(t)
	ctx := t.Context()

	result, err := h.interests.Upsert(ctx, h.account.ID, h.bot.ID, "channel.follow", "12345", "websocket", "")
	require.NoError(t, err)
	key := services.InterestKey{
		BotAccountID:      h.bot.ID,
		EventType:         "channel.follow",
		BroadcasterUserID: "12345",
	}
	require.NoError(t, h.manager.Ensure(ctx, key))
	require.Equal(t, 1, h.api.count())

	// Interest still present: release is a no-op.
	require.NoError(t, h.manager.Release(ctx, key))
	assert.Equal(t, 1, h.api.count())

	_, _, err = h.interests.Delete(ctx, h.account.ID, result.Interest.ID)
	require.NoError(t, err)

	require.NoError(t, h.manager.Release(ctx, key))
	assert.Equal(t, 0, h.api.count())
	_, err = h.subs.GetByKey(ctx, key)
	assert.ErrorIs(t, err, services.ErrNotFound)

	// Idempotent.
	require.NoError(t, h.manager.Release(ctx, key))
}

func TestManager_HandleNotification_DeliversAndDedupes(t *testing.T) {
	h := newManagerHarness(t)
	ctx := t.Context()

	receiver, url := newEnvelopeReceiver(t)
	_, err := h.interests.Upsert(ctx, h.account.ID, h.bot.ID, "channel.follow", "12345", "webhook", url)
	require.NoError(t, err)
	key := services.InterestKey{
		BotAccountID:      h.bot.ID,
		EventType:         "channel.follow",
		BroadcasterUserID: "12345",
	}
	require.NoError(t, h.manager.Ensure(ctx, key))
	record, err := h.subs.GetByKey(ctx, key)
	require.NoError(t, err)

	n := Notification{
		MessageID:      "msg-1",
		EventType:      "channel.follow",
		EventTimestamp: time.Now().UTC().Format(time.RFC3339Nano),
		SubscriptionID: *record.TwitchSubscriptionID,
		Condition:      map[string]string{"broadcaster_user_id": "12345"},
		Event:          json.RawMessage(`{"broadcaster_user_id":"12345","user_name":"follower"}`),
	}
	h.manager.HandleNotification(ctx, n)

	require.Eventually(t, func() bool { return receiver.count() >= 1 }, 5*time.Second, 50*time.Millisecond)
	env := receiver.last()
	assert.Equal(t, "msg-1", env.ID, "upstream message id is reused")
	assert.Equal(t, "twitch", env.Provider)
	assert.Equal(t, "channel.follow", env.Type)

	// Redelivery of the same message id over the websocket is dropped.
	h.manager.HandleNotification(ctx, n)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, 1, receiver.count())
}

func TestManager_Route_DeliversAfterIngressDedupe(t *testing.T) {
	h := newManagerHarness(t)
	ctx := t.Context()

	receiver, url := newEnvelopeReceiver(t)
	_, err := h.interests.Upsert(ctx, h.account.ID, h.bot.ID, "channel.follow", "12345", "webhook", url)
	require.NoError(t, err)

	// The webhook ingress marks the message id in the shared window before
	// handing the notification over. Route must still fan it out: the mark is
	// the gate, not a veto.
	require.False(t, h.dedupe.Seen("msg-first"))
	h.manager.Route(ctx, Notification{
		MessageID: "msg-first",
		EventType: "channel.follow",
		Condition: map[string]string{"broadcaster_user_id": "12345"},
		Event:     json.RawMessage(`{"broadcaster_user_id":"12345","user_name":"follower"}`),
	})

	require.Eventually(t, func() bool { return receiver.count() >= 1 }, 5*time.Second, 50*time.Millisecond)
	assert.Equal(t, "msg-first", receiver.last().ID)
}

func TestManager_Route_LegacyFallback(t *testing.T) {
	h := newManagerHarness(t)
	ctx := t.Context()

	receiver, url := newEnvelopeReceiver(t)
	_, err := h.interests.Upsert(ctx, h.account.ID, h.bot.ID, "channel.follow", "12345", "webhook", url)
	require.NoError(t, err)

	// No subscription id recorded: resolution falls back to condition
	// matching against registered interests.
	h.manager.Route(ctx, Notification{
		MessageID: "msg-legacy",
		EventType: "channel.follow",
		Condition: map[string]string{"broadcaster_user_id": "12345"},
		Event:     json.RawMessage(`{"broadcaster_user_id":"12345"}`),
	})

	require.Eventually(t, func() bool { return receiver.count() >= 1 }, 5*time.Second, 50*time.Millisecond)
	assert.Equal(t, "msg-legacy", receiver.last().ID)
}

func TestManager_Route_StreamEventsUpdateChannelState(t *testing.T) {
	h := newManagerHarness(t)
	ctx := t.Context()

	h.manager.Route(ctx, Notification{
		MessageID: "msg-online",
		EventType: "stream.online",
		Event:     json.RawMessage(`{"broadcaster_user_id":"12345","type":"live"}`),
	})

	state, err := h.channels.GetState(ctx, "12345")
	require.NoError(t, err)
	assert.True(t, state.IsLive)
}

func TestManager_Route_AuthRevokeDisablesBot(t *testing.T) {
	h := newManagerHarness(t)
	ctx := t.Context()

	h.manager.Route(ctx, Notification{
		MessageID: "msg-revoke",
		EventType: "user.authorization.revoke",
		Event:     json.RawMessage(`{"client_id":"test-client","user_id":"9001"}`),
	})

	bot, err := h.client.BotAccount.Get(ctx, h.bot.ID)
	require.NoError(t, err)
	assert.False(t, bot.Enabled)
	assert.Empty(t, bot.AccessToken)
}

func TestManager_HandleRevocation(t *testing.T) {
	h := newManagerHarness(t)
	ctx := t.Context()

	receiver, url := newEnvelopeReceiver(t)
	_, err := h.interests.Upsert(ctx, h.account.ID, h.bot.ID, "channel.follow", "12345", "webhook", url)
	require.NoError(t, err)
	key := services.InterestKey{
		BotAccountID:      h.bot.ID,
		EventType:         "channel.follow",
		BroadcasterUserID: "12345",
	}
	require.NoError(t, h.manager.Ensure(ctx, key))
	record, err := h.subs.GetByKey(ctx, key)
	require.NoError(t, err)

	h.manager.HandleRevocation(ctx, *record.TwitchSubscriptionID, "authorization_revoked")

	record, err = h.subs.GetByKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, twitchsubscription.StatusRevoked, record.Status)

	require.Eventually(t, func() bool { return receiver.count() >= 1 }, 5*time.Second, 50*time.Millisecond)
	var body struct {
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(receiver.last().Event, &body))
	assert.Equal(t, CodeRevoked, body.ErrorCode)
}

func TestManager_ReconcileStartup(t *testing.T) {
	h := newManagerHarness(t)
	ctx := t.Context()

	key := h.addInterest(t, "channel.follow", "12345")

	// A matching enabled webhook row upstream is adopted as-is.
	h.api.add(twitch.Subscription{
		ID:        "tw-existing",
		Status:    "enabled",
		Type:      "channel.follow",
		Version:   "2",
		Condition: map[string]string{"broadcaster_user_id": "12345"},
		Transport: twitch.SubscriptionTransport{
			Method:   "webhook",
			Callback: "https://bridge.example.com/webhooks/twitch/eventsub",
		},
	})
	// An upstream row nobody wants anymore is deleted.
	h.api.add(twitch.Subscription{
		ID:        "tw-orphan",
		Status:    "enabled",
		Type:      "channel.cheer",
		Version:   "1",
		Condition: map[string]string{"broadcaster_user_id": "99999"},
		Transport: twitch.SubscriptionTransport{
			Method:   "webhook",
			Callback: "https://bridge.example.com/webhooks/twitch/eventsub",
		},
	})

	require.NoError(t, h.manager.ReconcileStartup(ctx))

	record, err := h.subs.GetByKey(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, twitchsubscription.StatusEnabled, record.Status)
	require.NotNil(t, record.TwitchSubscriptionID)
	assert.Equal(t, "tw-existing", *record.TwitchSubscriptionID)

	_, orphanAlive := h.api.subscription("tw-orphan")
	assert.False(t, orphanAlive)

	// Companion interests got fresh subscriptions, and the revoke guard is in
	// place under the app token.
	onlineKey := services.InterestKey{BotAccountID: h.bot.ID, EventType: "stream.online", BroadcasterUserID: "12345"}
	onlineRecord, err := h.subs.GetByKey(ctx, onlineKey)
	require.NoError(t, err)
	assert.Equal(t, twitchsubscription.StatusEnabled, onlineRecord.Status)

	foundGuard := false
	for id := range h.apiSubs() {
		if sub, ok := h.api.subscription(id); ok && sub.Type == "user.authorization.revoke" {
			foundGuard = true
		}
	}
	assert.True(t, foundGuard, "authorization-revoke guard installed")
}

func (h *managerHarness) apiSubs() map[string]twitch.Subscription {
	h.api.mu.Lock()
	defer h.api.mu.Unlock()
	out := make(map[string]twitch.Subscription, len(h.api.subs))
	for id, sub := range h.api.subs {
		out[id] = sub
	}
	return out
}
