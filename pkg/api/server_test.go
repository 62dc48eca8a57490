package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	h := newServerHarness(t)

	rec := h.doAnon(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, healthStatusHealthy, resp.Status)
	assert.NotEmpty(t, resp.Version)
	assert.Equal(t, healthStatusHealthy, resp.Checks["database"].Status)
	assert.Equal(t, healthStatusHealthy, resp.Checks["fanout_hub"].Status)
}

func TestSubscriptionTypesHandler(t *testing.T) {
	h := newServerHarness(t)

	rec := h.do(httptest.NewRequest(http.MethodGet, "/v1/eventsub/subscription-types", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []SubscriptionTypeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp)

	byType := make(map[string]SubscriptionTypeResponse)
	for _, entry := range resp {
		byType[entry.EventType+"/"+entry.Version] = entry
	}

	follow, ok := byType["channel.follow/2"]
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"webhook", "websocket"}, follow.SupportedTransports)
	// The harness config has a webhook secret but no callback URL, so
	// websocket-capable types fall back to websocket.
	assert.Equal(t, "websocket", follow.SelectedTransport)
	assert.NotEmpty(t, follow.SelectionReason)

	revoke, ok := byType["user.authorization.revoke/1"]
	require.True(t, ok)
	assert.Equal(t, []string{"webhook"}, revoke.SupportedTransports)
	assert.Equal(t, "webhook", revoke.SelectedTransport)
}

func TestListSubscriptionsHandler(t *testing.T) {
	h := newServerHarness(t)
	ctx := t.Context()

	rec := h.do(httptest.NewRequest(http.MethodPost, "/v1/interests",
		createInterestBody(h, "channel.follow", "12345", "websocket", "")))
	require.Equal(t, http.StatusOK, rec.Code)

	// Only keys with an enabled upstream subscription are listed.
	rec = h.do(httptest.NewRequest(http.MethodGet, "/v1/subscriptions", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var resp []SubscriptionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp)

	_, err := h.client.TwitchSubscription.Create().
		SetBotAccountID(h.bot.ID).
		SetEventType("channel.follow").
		SetBroadcasterUserID("12345").
		SetTransport("websocket").
		SetStatus("enabled").
		SetTwitchSubscriptionID("tw-sub-1").
		Save(ctx)
	require.NoError(t, err)

	rec = h.do(httptest.NewRequest(http.MethodGet, "/v1/subscriptions", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "channel.follow", resp[0].EventType)
	assert.Equal(t, "12345", resp[0].BroadcasterUserID)
	assert.Equal(t, "enabled", resp[0].Status)
	assert.Equal(t, "tw-sub-1", resp[0].TwitchSubscriptionID)
}

func TestAuthenticateService_RecordsAPIRequests(t *testing.T) {
	h := newServerHarness(t)

	for range 3 {
		rec := h.do(httptest.NewRequest(http.MethodGet, "/v1/interests", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	require.Eventually(t, func() bool {
		stats, err := h.stats.GetStats(t.Context(), h.account.ID)
		if err != nil {
			return false
		}
		return stats.TotalAPIRequests == 3
	}, 5*time.Second, 50*time.Millisecond)
}
