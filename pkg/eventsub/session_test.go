package eventsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu            sync.Mutex
	welcomes      []string
	notifications []Notification
	revocations   []string
}

func (s *recordingSink) HandleSessionWelcome(_ context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.welcomes = append(s.welcomes, sessionID)
}

func (s *recordingSink) HandleNotification(_ context.Context, n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, n)
}

func (s *recordingSink) HandleRevocation(_ context.Context, twitchSubscriptionID, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revocations = append(s.revocations, twitchSubscriptionID)
}

func (s *recordingSink) snapshot() (welcomes []string, notifications []Notification, revocations []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.welcomes...),
		append([]Notification{}, s.notifications...),
		append([]string{}, s.revocations...)
}

func sendFrame(t *testing.T, ctx context.Context, conn *websocket.Conn, messageType string, payload any) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	data, err := json.Marshal(map[string]any{
		"metadata": map[string]any{
			"message_id":        "frame-" + messageType,
			"message_type":      messageType,
			"message_timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		},
		"payload": json.RawMessage(raw),
	})
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func welcomePayloadFor(sessionID string, keepaliveSeconds int) map[string]any {
	return map[string]any{
		"session": map[string]any{
			"id":                        sessionID,
			"status":                    "connected",
			"keepalive_timeout_seconds": keepaliveSeconds,
		},
	}
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestWSSession_WelcomeNotificationAndFrames(t *testing.T) {
	sink := &recordingSink{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("keepalive_timeout_seconds"))

		conn, err := websocket.Accept(w, r, nil)
		require.NoError(t, err)
		defer conn.Close(websocket.StatusNormalClosure, "")

		ctx := r.Context()
		sendFrame(t, ctx, conn, frameWelcome, welcomePayloadFor("session-1", 10))
		sendFrame(t, ctx, conn, frameKeepalive, map[string]any{})

		notification := map[string]any{
			"subscription": map[string]any{
				"id":        "tw-sub-1",
				"type":      "channel.follow",
				"condition": map[string]string{"broadcaster_user_id": "12345"},
			},
			"event": map[string]any{"broadcaster_user_id": "12345", "user_name": "follower"},
		}
		data, err := json.Marshal(map[string]any{
			"metadata": map[string]any{
				"message_id":        "msg-1",
				"message_type":      frameNotification,
				"message_timestamp": "2026-08-24T12:00:00Z",
				"subscription_type": "channel.follow",
			},
			"payload": notification,
		})
		require.NoError(t, err)
		require.NoError(t, conn.Write(ctx, websocket.MessageText, data))

		sendFrame(t, ctx, conn, frameRevocation, map[string]any{
			"subscription": map[string]any{
				"id":     "tw-sub-1",
				"status": "authorization_revoked",
				"type":   "channel.follow",
			},
		})

		<-ctx.Done()
	}))
	defer srv.Close()

	session := NewWSSession(slog.New(slog.DiscardHandler), wsURL(srv), 10*time.Second, sink)
	session.Start(t.Context())
	defer session.Stop()

	require.Eventually(t, func() bool {
		welcomes, notifications, revocations := sink.snapshot()
		return len(welcomes) == 1 && len(notifications) == 1 && len(revocations) == 1
	}, 5*time.Second, 50*time.Millisecond)

	welcomes, notifications, revocations := sink.snapshot()
	assert.Equal(t, []string{"session-1"}, welcomes)
	assert.Equal(t, "msg-1", notifications[0].MessageID)
	assert.Equal(t, "channel.follow", notifications[0].EventType)
	assert.Equal(t, "tw-sub-1", notifications[0].SubscriptionID)
	assert.Equal(t, "12345", notifications[0].Condition["broadcaster_user_id"])
	assert.Equal(t, []string{"tw-sub-1"}, revocations)
}

func TestWSSession_FollowsSessionReconnect(t *testing.T) {
	sink := &recordingSink{}

	second := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		require.NoError(t, err)
		defer conn.Close(websocket.StatusNormalClosure, "")

		sendFrame(t, r.Context(), conn, frameWelcome, welcomePayloadFor("session-2", 10))
		<-r.Context().Done()
	}))
	defer second.Close()

	first := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		require.NoError(t, err)
		defer conn.Close(websocket.StatusNormalClosure, "")

		ctx := r.Context()
		sendFrame(t, ctx, conn, frameWelcome, welcomePayloadFor("session-1", 10))
		sendFrame(t, ctx, conn, frameReconnect, map[string]any{
			"session": map[string]any{
				"id":            "session-1",
				"status":        "reconnecting",
				"reconnect_url": wsURL(second),
			},
		})
		<-ctx.Done()
	}))
	defer first.Close()

	session := NewWSSession(slog.New(slog.DiscardHandler), wsURL(first), 10*time.Second, sink)
	session.Start(t.Context())
	defer session.Stop()

	require.Eventually(t, func() bool {
		welcomes, _, _ := sink.snapshot()
		return len(welcomes) == 2
	}, 5*time.Second, 50*time.Millisecond)

	welcomes, _, _ := sink.snapshot()
	assert.Equal(t, []string{"session-1", "session-2"}, welcomes)
}

func TestWSSession_KeepaliveWatchdogReconnects(t *testing.T) {
	sink := &recordingSink{}
	var dials atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dials.Add(1)
		conn, err := websocket.Accept(w, r, nil)
		require.NoError(t, err)
		defer conn.Close(websocket.StatusNormalClosure, "")

		// Advertise a 1 s keepalive and then go silent: the watchdog must
		// trip and redial.
		sendFrame(t, r.Context(), conn, frameWelcome, welcomePayloadFor("silent-session", 1))
		<-r.Context().Done()
	}))
	defer srv.Close()

	session := NewWSSession(slog.New(slog.DiscardHandler), wsURL(srv), time.Second, sink)
	session.Start(t.Context())
	defer session.Stop()

	require.Eventually(t, func() bool {
		return dials.Load() >= 2
	}, 10*time.Second, 100*time.Millisecond)
}
