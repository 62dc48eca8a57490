package api

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamgate/streamgate/pkg/config"
	"github.com/streamgate/streamgate/pkg/database"
	"github.com/streamgate/streamgate/pkg/events"
	"github.com/streamgate/streamgate/pkg/eventsub"
	"github.com/streamgate/streamgate/pkg/services"
	"github.com/streamgate/streamgate/test/util"
)

func signIngress(secret, messageID, timestamp, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(messageID))
	mac.Write([]byte(timestamp))
	mac.Write([]byte(body))
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func ingressRequest(messageID, messageType, body string) *http.Request {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	req := httptest.NewRequest(http.MethodPost, twitchWebhookPath, strings.NewReader(body))
	req.Header.Set(headerMessageID, messageID)
	req.Header.Set(headerMessageTimestamp, timestamp)
	req.Header.Set(headerMessageType, messageType)
	req.Header.Set(headerMessageSignature, signIngress(testWebhookSecret, messageID, timestamp, body))
	return req
}

const notificationBody = `{
	"subscription": {
		"id": "tw-sub-1",
		"status": "enabled",
		"type": "channel.follow",
		"condition": {"broadcaster_user_id": "12345"}
	},
	"event": {"broadcaster_user_id": "12345", "user_name": "follower"}
}`

func TestTwitchWebhookHandler_Notification(t *testing.T) {
	h := newServerHarness(t)

	req := ingressRequest("msg-1", messageTypeNotification, notificationBody)
	req.Header.Set(headerSubscriptionType, "channel.follow")
	rec := h.doAnon(req)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	routed := h.manager.routedNotifications()
	require.Len(t, routed, 1)
	assert.Equal(t, "msg-1", routed[0].MessageID)
	assert.Equal(t, "channel.follow", routed[0].EventType)
	assert.Equal(t, "tw-sub-1", routed[0].SubscriptionID)
	assert.Equal(t, "12345", routed[0].Condition["broadcaster_user_id"])
	assert.Contains(t, string(routed[0].Event), "follower")
}

func TestTwitchWebhookHandler_EventTypeFromBody(t *testing.T) {
	h := newServerHarness(t)

	// No Twitch-Eventsub-Subscription-Type header; the subscription type in
	// the body is used.
	rec := h.doAnon(ingressRequest("msg-2", messageTypeNotification, notificationBody))
	require.Equal(t, http.StatusNoContent, rec.Code)

	routed := h.manager.routedNotifications()
	require.Len(t, routed, 1)
	assert.Equal(t, "channel.follow", routed[0].EventType)
}

func TestTwitchWebhookHandler_RejectsBadSignature(t *testing.T) {
	h := newServerHarness(t)

	req := ingressRequest("msg-1", messageTypeNotification, notificationBody)
	req.Header.Set(headerMessageSignature, "sha256=deadbeef")
	rec := h.doAnon(req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, h.manager.routedNotifications())
}

func TestTwitchWebhookHandler_RejectsStaleTimestamp(t *testing.T) {
	h := newServerHarness(t)

	timestamp := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339Nano)
	req := httptest.NewRequest(http.MethodPost, twitchWebhookPath, strings.NewReader(notificationBody))
	req.Header.Set(headerMessageID, "msg-old")
	req.Header.Set(headerMessageTimestamp, timestamp)
	req.Header.Set(headerMessageType, messageTypeNotification)
	req.Header.Set(headerMessageSignature, signIngress(testWebhookSecret, "msg-old", timestamp, notificationBody))

	rec := h.doAnon(req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, h.manager.routedNotifications())
}

func TestTwitchWebhookHandler_DeduplicatesRetries(t *testing.T) {
	h := newServerHarness(t)

	rec := h.doAnon(ingressRequest("msg-1", messageTypeNotification, notificationBody))
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Twitch retry with the same message id: acked, not reprocessed.
	rec = h.doAnon(ingressRequest("msg-1", messageTypeNotification, notificationBody))
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Len(t, h.manager.routedNotifications(), 1)
}

// TestTwitchWebhookHandler_FansOutThroughManager runs a notification through
// the real subscription manager with the ingress and the manager sharing one
// dedupe window, the way main wires them.
func TestTwitchWebhookHandler_FansOutThroughManager(t *testing.T) {
	ctx := t.Context()
	entClient, db := util.SetupTestDatabase(t)
	logger := slog.New(slog.DiscardHandler)

	accounts := services.NewAccountService(entClient)
	interests := services.NewInterestService(entClient, nil)
	subs := services.NewSubscriptionService(entClient)
	stats := services.NewStatsService(entClient)
	bots := services.NewBotService(entClient, nil)
	channels := services.NewChannelService(entClient, nil)

	hub := events.NewHub(logger, stats, 2*time.Second, 1, "")
	hub.Start(ctx)
	t.Cleanup(hub.Stop)

	dedupe := events.NewDedupeWindow(10 * time.Minute)
	manager := eventsub.NewManager(logger, eventsub.Config{ClientID: "test-client"}, eventsub.Deps{
		Interests: interests,
		Subs:      subs,
		Bots:      bots,
		Channels:  channels,
		Hub:       hub,
		Dedupe:    dedupe,
	})

	cfg := config.Config{
		TwitchClientID:        "test-client",
		TwitchClientSecret:    "test-secret",
		EventSubWebhookSecret: testWebhookSecret,
		WSTokenTTL:            time.Minute,
	}
	server := NewServer(cfg, Deps{
		DB:        database.NewClientFromEnt(entClient, db),
		Accounts:  accounts,
		Interests: interests,
		Subs:      subs,
		Stats:     stats,
		Hub:       hub,
		Tokens:    events.NewTokenStore(cfg.WSTokenTTL),
		Dedupe:    dedupe,
		Manager:   manager,
	})

	account, clientSecret, err := accounts.CreateServiceAccount(ctx, "bridge-consumer")
	require.NoError(t, err)
	bot, err := entClient.BotAccount.Create().
		SetTwitchUserID("9001").
		SetTwitchLogin("harness_bot").
		SetAccessToken("user-token").
		SetRefreshToken("refresh-token").
		SetTokenExpiresAt(time.Now().Add(time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = interests.Upsert(ctx, account.ID, bot.ID, "channel.follow", "12345", "websocket", "")
	require.NoError(t, err)
	_, err = entClient.TwitchSubscription.Create().
		SetBotAccountID(bot.ID).
		SetEventType("channel.follow").
		SetBroadcasterUserID("12345").
		SetTransport("webhook").
		SetStatus("enabled").
		SetTwitchSubscriptionID("tw-sub-1").
		Save(ctx)
	require.NoError(t, err)

	srv := httptest.NewServer(server.echo)
	t.Cleanup(srv.Close)

	wsAddr := "ws" + strings.TrimPrefix(srv.URL, "http") +
		"/ws/events?client_id=" + url.QueryEscape(account.ClientID) +
		"&client_secret=" + url.QueryEscape(clientSecret)
	conn, _, err := websocket.Dial(ctx, wsAddr, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })

	_, greeting, err := conn.Read(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(greeting), "connection.established")

	rec := httptest.NewRecorder()
	server.echo.ServeHTTP(rec, ingressRequest("msg-bridge-1", messageTypeNotification, notificationBody))
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	// First delivery reaches the consumer even though the ingress already
	// marked the message id in the shared window.
	readCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, data, err := conn.Read(readCtx)
	require.NoError(t, err)
	var env events.Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	assert.Equal(t, "msg-bridge-1", env.ID)
	assert.Equal(t, "channel.follow", env.Type)

	// Twitch retry with the same message id: acked, not fanned out again.
	rec = httptest.NewRecorder()
	server.echo.ServeHTTP(rec, ingressRequest("msg-bridge-1", messageTypeNotification, notificationBody))
	require.Equal(t, http.StatusNoContent, rec.Code)

	quietCtx, cancelQuiet := context.WithTimeout(ctx, 300*time.Millisecond)
	defer cancelQuiet()
	_, _, err = conn.Read(quietCtx)
	assert.Error(t, err, "duplicate delivery must not reach the consumer")
}

func TestTwitchWebhookHandler_ChallengeEcho(t *testing.T) {
	h := newServerHarness(t)

	body := `{"challenge":"pong-me-back","subscription":{"id":"tw-sub-1","type":"channel.follow"}}`
	rec := h.doAnon(ingressRequest("msg-challenge", messageTypeVerification, body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong-me-back", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestTwitchWebhookHandler_Revocation(t *testing.T) {
	h := newServerHarness(t)

	body := `{"subscription":{"id":"tw-sub-9","status":"authorization_revoked","type":"channel.follow"}}`
	rec := h.doAnon(ingressRequest("msg-revoke", messageTypeRevocation, body))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"tw-sub-9"}, h.manager.revokedIDs())
}
