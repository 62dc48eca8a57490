package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	t.Run("reuses upstream message id", func(t *testing.T) {
		env := NewEnvelope("msg-123", "stream.online", "2026-01-02T03:04:05Z", json.RawMessage(`{"broadcaster_user_id":"42"}`))

		assert.Equal(t, "msg-123", env.ID)
		assert.Equal(t, ProviderTwitch, env.Provider)
		assert.Equal(t, "stream.online", env.Type)
		assert.Equal(t, "2026-01-02T03:04:05Z", env.EventTimestamp)
		assert.JSONEq(t, `{"broadcaster_user_id":"42"}`, string(env.Event))
	})

	t.Run("generates id and timestamp when missing", func(t *testing.T) {
		env := NewEnvelope("", "stream.online", "", nil)

		assert.Len(t, env.ID, 32)
		assert.NotContains(t, env.ID, "-")
		assert.JSONEq(t, `{}`, string(env.Event))

		ts, err := time.Parse(time.RFC3339Nano, env.EventTimestamp)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
	})

	t.Run("omits chat assets when absent", func(t *testing.T) {
		env := NewEnvelope("msg-1", "channel.follow", "2026-01-02T03:04:05Z", json.RawMessage(`{}`))

		data, err := json.Marshal(env)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "twitch_chat_assets")
	})
}

func TestNewSubscriptionErrorEnvelope(t *testing.T) {
	env := NewSubscriptionErrorEnvelope(SubscriptionError{
		ErrorCode:         "missing_scope",
		Reason:            "subscription missing proper authorization: scope channel:read:subscriptions",
		Hint:              "re-authorize the bot account with the required scopes",
		EventType:         "channel.subscribe",
		BroadcasterUserID: "42",
		BotAccountID:      "6f1c0de2-8a7e-4f3a-9c42-000000000001",
		UpstreamTransport: "websocket",
	})

	assert.Equal(t, ProviderBridge, env.Provider)
	assert.Equal(t, "subscription.error", env.Type)
	assert.Len(t, env.ID, 32)

	var body SubscriptionError
	require.NoError(t, json.Unmarshal(env.Event, &body))
	assert.Equal(t, "missing_scope", body.ErrorCode)
	assert.Equal(t, "channel.subscribe", body.EventType)
	assert.Equal(t, "42", body.BroadcasterUserID)
}
