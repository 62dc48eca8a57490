package twitch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTwitchClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		ClientID:     "test-client-id",
		ClientSecret: "test-client-secret",
		HelixBaseURL: srv.URL + "/helix",
		OAuthBaseURL: srv.URL,
	})
}

func TestAppAccessToken_Caching(t *testing.T) {
	var tokenCalls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))
		assert.Equal(t, "test-client-id", r.Form.Get("client_id"))
		json.NewEncoder(w).Encode(map[string]any{"access_token": "app-token", "expires_in": 3600})
	})

	client := newTestTwitchClient(t, mux)
	ctx := context.Background()

	token, err := client.AppAccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "app-token", token)

	_, err = client.AppAccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), tokenCalls.Load(), "second call should hit the cache")
}

func TestRefreshToken_KeepsOldRefreshTokenWhenOmitted(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
		json.NewEncoder(w).Encode(map[string]any{"access_token": "new-access", "expires_in": 3600})
	})

	client := newTestTwitchClient(t, mux)

	tok, err := client.RefreshToken(context.Background(), "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", tok.AccessToken)
	assert.Equal(t, "old-refresh", tok.RefreshToken)
	assert.False(t, tok.ExpiresAt.IsZero())
}

func TestListEventSubSubscriptions_Pagination(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"access_token": "app-token", "expires_in": 3600})
	})
	mux.HandleFunc("GET /helix/eventsub/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer app-token", r.Header.Get("Authorization"))
		assert.Equal(t, "test-client-id", r.Header.Get("Client-Id"))
		if r.URL.Query().Get("after") == "" {
			json.NewEncoder(w).Encode(map[string]any{
				"data":       []map[string]any{{"id": "sub-1", "type": "channel.follow", "status": "enabled"}},
				"pagination": map[string]any{"cursor": "next-page"},
			})
			return
		}
		assert.Equal(t, "next-page", r.URL.Query().Get("after"))
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": "sub-2", "type": "stream.online", "status": "enabled"}},
		})
	})

	client := newTestTwitchClient(t, mux)

	subs, err := client.ListEventSubSubscriptions(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "sub-1", subs[0].ID)
	assert.Equal(t, "sub-2", subs[1].ID)
}

func TestCreateEventSubSubscription(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /helix/eventsub/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		var req CreateSubscriptionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "channel.chat.message", req.Type)
		assert.Equal(t, "websocket", req.Transport.Method)
		assert.Equal(t, "ws-session-1", req.Transport.SessionID)
		assert.Equal(t, "123", req.Condition["broadcaster_user_id"])
		assert.Equal(t, "456", req.Condition["user_id"])

		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{
				"id":        "created-sub",
				"status":    "enabled",
				"type":      req.Type,
				"transport": map[string]any{"method": "websocket", "session_id": "ws-session-1"},
			}},
		})
	})

	client := newTestTwitchClient(t, mux)

	sub, err := client.CreateEventSubSubscription(context.Background(), CreateSubscriptionRequest{
		Type:      "channel.chat.message",
		Version:   "1",
		Condition: map[string]string{"broadcaster_user_id": "123", "user_id": "456"},
		Transport: SubscriptionTransport{Method: "websocket", SessionID: "ws-session-1"},
	}, "user-token")
	require.NoError(t, err)
	assert.Equal(t, "created-sub", sub.ID)
	assert.Equal(t, "enabled", sub.Status)
	assert.Equal(t, "ws-session-1", sub.Transport.SessionID)
}

func TestCreateEventSubSubscription_ErrorClassification(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"access_token": "app-token", "expires_in": 3600})
	})
	mux.HandleFunc("POST /helix/eventsub/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"Forbidden","message":"subscription missing proper authorization"}`))
	})

	client := newTestTwitchClient(t, mux)

	_, err := client.CreateEventSubSubscription(context.Background(), CreateSubscriptionRequest{
		Type:      "channel.follow",
		Version:   "2",
		Condition: map[string]string{"broadcaster_user_id": "123"},
		Transport: SubscriptionTransport{Method: "webhook", Callback: "https://x.example/cb", Secret: "s3cretsecret"},
	}, "")
	require.Error(t, err)
	assert.True(t, IsForbidden(err))
	assert.False(t, IsTransient(err))
}

func TestDo_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"access_token": "app-token", "expires_in": 3600})
	})
	mux.HandleFunc("GET /helix/users", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": "123", "login": "somebody", "display_name": "Somebody"}},
		})
	})

	client := newTestTwitchClient(t, mux)

	users, err := client.GetUsersByLogin(context.Background(), []string{"Somebody"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "123", users[0].ID)
	assert.GreaterOrEqual(t, calls.Load(), int64(2))
}

func TestGetStreams_Chunking(t *testing.T) {
	var requests atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"access_token": "app-token", "expires_in": 3600})
	})
	mux.HandleFunc("GET /helix/streams", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		ids := r.URL.Query()["user_id"]
		assert.LessOrEqual(t, len(ids), streamsChunkSize)
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"user_id": ids[0], "type": "live"}},
		})
	})

	client := newTestTwitchClient(t, mux)

	userIDs := make([]string, 150)
	for i := range userIDs {
		userIDs[i] = "u" + string(rune('0'+i%10))
	}
	streams, err := client.GetStreams(context.Background(), userIDs)
	require.NoError(t, err)
	assert.Equal(t, int64(2), requests.Load())
	assert.Len(t, streams, 2)
}
