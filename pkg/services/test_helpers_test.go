package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/streamgate/streamgate/ent"
	"github.com/streamgate/streamgate/pkg/twitch"
	"github.com/streamgate/streamgate/test/util"
)

func newTestEntClient(t *testing.T) *ent.Client {
	client, _ := util.SetupTestDatabase(t)
	return client
}

func createTestServiceAccount(t *testing.T, client *ent.Client, name string) (*ent.ServiceAccount, string) {
	t.Helper()
	account, secret, err := NewAccountService(client).CreateServiceAccount(t.Context(), name)
	require.NoError(t, err)
	return account, secret
}

func createTestBot(t *testing.T, client *ent.Client, twitchUserID, login string) *ent.BotAccount {
	t.Helper()
	bot, err := client.BotAccount.Create().
		SetTwitchUserID(twitchUserID).
		SetTwitchLogin(login).
		SetAccessToken("user-token-" + twitchUserID).
		SetRefreshToken("refresh-token-" + twitchUserID).
		SetTokenExpiresAt(time.Now().Add(time.Hour)).
		Save(t.Context())
	require.NoError(t, err)
	return bot
}

// fakeTwitch backs a twitch.Client with a local Helix/OAuth stand-in.
type fakeTwitch struct {
	// usersByLogin maps login -> numeric user id.
	usersByLogin map[string]string
	// liveUserIDs lists user ids with an active stream.
	liveUserIDs []string
}

func newFakeTwitchClient(t *testing.T, fake *fakeTwitch) *twitch.Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"access_token":  "fake-token",
			"refresh_token": "fake-refresh",
			"expires_in":    3600,
		})
	})
	mux.HandleFunc("GET /helix/users", func(w http.ResponseWriter, r *http.Request) {
		var data []map[string]string
		for _, login := range r.URL.Query()["login"] {
			if id, ok := fake.usersByLogin[login]; ok {
				data = append(data, map[string]string{"id": id, "login": login, "display_name": login})
			}
		}
		writeJSON(t, w, map[string]any{"data": data})
	})
	mux.HandleFunc("GET /helix/streams", func(w http.ResponseWriter, r *http.Request) {
		requested := make(map[string]bool)
		for _, id := range r.URL.Query()["user_id"] {
			requested[id] = true
		}
		var data []map[string]string
		for _, id := range fake.liveUserIDs {
			if requested[id] {
				data = append(data, map[string]string{"user_id": id, "type": "live"})
			}
		}
		writeJSON(t, w, map[string]any{"data": data})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return twitch.NewClient(twitch.Config{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		HelixBaseURL: srv.URL + "/helix",
		OAuthBaseURL: srv.URL,
	})
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}
