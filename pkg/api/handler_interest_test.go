package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamgate/streamgate/pkg/services"
)

func createInterestBody(h *serverHarness, eventType, broadcaster, transport, webhookURL string) *strings.Reader {
	body, _ := json.Marshal(CreateInterestRequest{
		BotAccountID:      h.bot.ID.String(),
		EventType:         eventType,
		BroadcasterUserID: broadcaster,
		Transport:         transport,
		WebhookURL:        webhookURL,
	})
	return strings.NewReader(string(body))
}

func TestCreateInterestHandler(t *testing.T) {
	h := newServerHarness(t)

	rec := h.do(httptest.NewRequest(http.MethodPost, "/v1/interests",
		createInterestBody(h, "channel.follow", "12345", "websocket", "")))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp CreateInterestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Created)
	assert.Equal(t, "channel.follow", resp.Interest.EventType)
	assert.Equal(t, "12345", resp.Interest.BroadcasterUserID)
	assert.Equal(t, h.bot.ID, resp.Interest.BotAccountID)
	assert.Len(t, resp.Companions, 2, "stream liveness companions auto-created")

	// The primary key and both companion keys were ensured upstream.
	ensured := h.manager.ensuredKeys()
	require.Len(t, ensured, 3)
	types := make(map[string]bool)
	for _, key := range ensured {
		types[key.EventType] = true
		assert.Equal(t, "12345", key.BroadcasterUserID)
	}
	assert.True(t, types["channel.follow"])
	assert.True(t, types["stream.online"])
	assert.True(t, types["stream.offline"])

	// Re-registering the same tuple is idempotent.
	rec = h.do(httptest.NewRequest(http.MethodPost, "/v1/interests",
		createInterestBody(h, "channel.follow", "12345", "websocket", "")))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Created)
	assert.Empty(t, resp.Companions)
}

func TestCreateInterestHandler_Validation(t *testing.T) {
	h := newServerHarness(t)

	t.Run("unknown event type", func(t *testing.T) {
		rec := h.do(httptest.NewRequest(http.MethodPost, "/v1/interests",
			createInterestBody(h, "channel.made_up", "12345", "websocket", "")))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("malformed bot id", func(t *testing.T) {
		body := `{"bot_account_id":"not-a-uuid","event_type":"channel.follow","broadcaster_user_id":"12345"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/interests", strings.NewReader(body))
		rec := h.do(req)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("webhook target outside allowlist", func(t *testing.T) {
		rec := h.do(httptest.NewRequest(http.MethodPost, "/v1/interests",
			createInterestBody(h, "channel.follow", "12345", "webhook", "https://evil.example.net/hook")))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("allowed webhook target", func(t *testing.T) {
		rec := h.do(httptest.NewRequest(http.MethodPost, "/v1/interests",
			createInterestBody(h, "channel.subscribe", "12345", "webhook", "https://consumer.example.com/hook")))
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})
}

func TestCreateInterestHandler_RequiresAuth(t *testing.T) {
	h := newServerHarness(t)

	rec := h.doAnon(httptest.NewRequest(http.MethodPost, "/v1/interests",
		createInterestBody(h, "channel.follow", "12345", "websocket", "")))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/v1/interests",
		createInterestBody(h, "channel.follow", "12345", "websocket", ""))
	req.Header.Set("X-Client-Id", h.account.ClientID)
	req.Header.Set("X-Client-Secret", "wrong-secret")
	req.Header.Set("Content-Type", "application/json")
	rec = h.doAnon(req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateInterestHandler_BotAllowlist(t *testing.T) {
	h := newServerHarness(t)
	ctx := t.Context()

	// Grant access to a different bot only; the harness bot becomes
	// off-limits once any allow-list rows exist.
	otherBot, err := h.client.BotAccount.Create().
		SetTwitchUserID("9002").
		SetTwitchLogin("other_bot").
		Save(ctx)
	require.NoError(t, err)
	require.NoError(t, h.accounts.GrantBotAccess(ctx, h.account.ID, otherBot.ID))

	rec := h.do(httptest.NewRequest(http.MethodPost, "/v1/interests",
		createInterestBody(h, "channel.follow", "12345", "websocket", "")))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListInterestsHandler(t *testing.T) {
	h := newServerHarness(t)

	rec := h.do(httptest.NewRequest(http.MethodPost, "/v1/interests",
		createInterestBody(h, "channel.follow", "12345", "websocket", "")))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(httptest.NewRequest(http.MethodGet, "/v1/interests", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []InterestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 3)
}

func TestDeleteInterestHandler(t *testing.T) {
	h := newServerHarness(t)

	rec := h.do(httptest.NewRequest(http.MethodPost, "/v1/interests",
		createInterestBody(h, "channel.follow", "12345", "websocket", "")))
	require.Equal(t, http.StatusOK, rec.Code)
	var created CreateInterestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = h.do(httptest.NewRequest(http.MethodDelete, "/v1/interests/"+created.Interest.ID.String(), nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DeleteInterestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Deleted)
	assert.True(t, resp.Released, "last interest on the key releases upstream")

	released := h.manager.releasedKeys()
	require.Len(t, released, 1)
	assert.Equal(t, services.InterestKey{
		BotAccountID:      h.bot.ID,
		EventType:         "channel.follow",
		BroadcasterUserID: "12345",
	}, released[0])

	// Deleting again is a 404.
	rec = h.do(httptest.NewRequest(http.MethodDelete, "/v1/interests/"+created.Interest.ID.String(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHeartbeatInterestHandler(t *testing.T) {
	h := newServerHarness(t)

	rec := h.do(httptest.NewRequest(http.MethodPost, "/v1/interests",
		createInterestBody(h, "channel.follow", "12345", "websocket", "")))
	require.Equal(t, http.StatusOK, rec.Code)
	var created CreateInterestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = h.do(httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/v1/interests/%s/heartbeat", created.Interest.ID), nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HeartbeatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Touched, "companions are refreshed too")

	rec = h.do(httptest.NewRequest(http.MethodPost,
		"/v1/interests/00000000-0000-0000-0000-000000000001/heartbeat", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
