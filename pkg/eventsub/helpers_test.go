package eventsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/streamgate/streamgate/ent"
	"github.com/streamgate/streamgate/pkg/events"
	"github.com/streamgate/streamgate/pkg/services"
	"github.com/streamgate/streamgate/pkg/twitch"
	"github.com/streamgate/streamgate/test/util"
)

// fakeEventSubAPI is an in-memory stand-in for the Twitch Helix EventSub and
// OAuth endpoints.
type fakeEventSubAPI struct {
	mu   sync.Mutex
	subs map[string]twitch.Subscription
	next int

	// createStatus forces subscription creates to fail with this HTTP status.
	createStatus int
	// createMessage is the error body used with createStatus.
	createMessage string

	// validateScopes is what the OAuth validate endpoint reports as granted.
	validateScopes []string

	createCalls int
	deleteCalls int
}

func (f *fakeEventSubAPI) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"access_token":  "fake-app-token",
			"refresh_token": "fake-refresh",
			"expires_in":    3600,
		})
	})
	mux.HandleFunc("GET /oauth2/validate", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		scopes := append([]string{}, f.validateScopes...)
		f.mu.Unlock()
		writeJSON(t, w, map[string]any{
			"client_id": "test-client",
			"login":     "harness_bot",
			"user_id":   "9001",
			"scopes":    scopes,
		})
	})
	mux.HandleFunc("GET /helix/streams", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"data": []any{}})
	})
	mux.HandleFunc("POST /helix/eventsub/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.createCalls++

		if f.createStatus != 0 {
			w.WriteHeader(f.createStatus)
			writeJSON(t, w, map[string]any{"message": f.createMessage})
			return
		}

		var req twitch.CreateSubscriptionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		f.next++
		sub := twitch.Subscription{
			ID:        fmt.Sprintf("tw-sub-%d", f.next),
			Status:    "enabled",
			Type:      req.Type,
			Version:   req.Version,
			Condition: req.Condition,
			Transport: twitch.SubscriptionTransport{
				Method:    req.Transport.Method,
				Callback:  req.Transport.Callback,
				SessionID: req.Transport.SessionID,
			},
		}
		f.subs[sub.ID] = sub
		w.WriteHeader(http.StatusAccepted)
		writeJSON(t, w, map[string]any{"data": []twitch.Subscription{sub}})
	})
	mux.HandleFunc("GET /helix/eventsub/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		data := make([]twitch.Subscription, 0, len(f.subs))
		for _, sub := range f.subs {
			data = append(data, sub)
		}
		writeJSON(t, w, map[string]any{"data": data, "pagination": map[string]any{}})
	})
	mux.HandleFunc("DELETE /helix/eventsub/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.deleteCalls++
		id := r.URL.Query().Get("id")
		if _, ok := f.subs[id]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		delete(f.subs, id)
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func (f *fakeEventSubAPI) subscription(id string) (twitch.Subscription, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sub, ok := f.subs[id]
	return sub, ok
}

func (f *fakeEventSubAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

func (f *fakeEventSubAPI) add(sub twitch.Subscription) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs[sub.ID] = sub
}

func (f *fakeEventSubAPI) setScopes(scopes ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.validateScopes = scopes
}

func (f *fakeEventSubAPI) failCreates(status int, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createStatus = status
	f.createMessage = message
}

type noopStats struct{}

func (noopStats) RecordWSConnect(context.Context, uuid.UUID)         {}
func (noopStats) RecordWSDisconnect(context.Context, uuid.UUID)      {}
func (noopStats) RecordEventSent(context.Context, uuid.UUID, string) {}
func (noopStats) RecordWebhookFailure(context.Context, uuid.UUID)    {}

// managerHarness wires a Manager against a test database, a fake Twitch API
// and a running hub.
type managerHarness struct {
	manager   *Manager
	api       *fakeEventSubAPI
	client    *ent.Client
	interests *services.InterestService
	subs      *services.SubscriptionService
	bots      *services.BotService
	channels  *services.ChannelService
	hub       *events.Hub
	dedupe    *events.DedupeWindow
	account   *ent.ServiceAccount
	bot       *ent.BotAccount
}

func newManagerHarness(t *testing.T) *managerHarness {
	t.Helper()

	client, _ := util.SetupTestDatabase(t)
	api := &fakeEventSubAPI{subs: make(map[string]twitch.Subscription)}
	srv := httptest.NewServer(api.handler(t))
	t.Cleanup(srv.Close)

	twitchClient := twitch.NewClient(twitch.Config{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		HelixBaseURL: srv.URL + "/helix",
		OAuthBaseURL: srv.URL,
	})

	logger := slog.New(slog.DiscardHandler)
	hub := events.NewHub(logger, noopStats{}, 2*time.Second, 1, "")
	hub.Start(t.Context())
	t.Cleanup(hub.Stop)

	interests := services.NewInterestService(client, twitchClient)
	subs := services.NewSubscriptionService(client)
	bots := services.NewBotService(client, twitchClient)
	channels := services.NewChannelService(client, twitchClient)

	dedupe := events.NewDedupeWindow(10 * time.Minute)
	manager := NewManager(logger, Config{
		ClientID:      "test-client",
		CallbackURL:   "https://bridge.example.com/webhooks/twitch/eventsub",
		WebhookSecret: "upstream-secret",
	}, Deps{
		Twitch:    twitchClient,
		Interests: interests,
		Subs:      subs,
		Bots:      bots,
		Channels:  channels,
		Hub:       hub,
		Dedupe:    dedupe,
	})

	account, err := client.ServiceAccount.Create().
		SetName("harness-consumer").
		SetClientID("harness-client").
		SetClientSecretHash("unused").
		Save(t.Context())
	require.NoError(t, err)

	bot, err := client.BotAccount.Create().
		SetTwitchUserID("9001").
		SetTwitchLogin("harness_bot").
		SetAccessToken("bot-user-token").
		SetRefreshToken("bot-refresh-token").
		SetTokenExpiresAt(time.Now().Add(time.Hour)).
		Save(t.Context())
	require.NoError(t, err)

	return &managerHarness{
		manager:   manager,
		api:       api,
		client:    client,
		interests: interests,
		subs:      subs,
		bots:      bots,
		channels:  channels,
		hub:       hub,
		dedupe:    dedupe,
		account:   account,
		bot:       bot,
	}
}

// withoutWebhook rebuilds the manager with no callback configured, forcing
// websocket upstream transport.
func (h *managerHarness) withoutWebhook() {
	h.manager.cfg.CallbackURL = ""
	h.manager.cfg.WebhookSecret = ""
}

func (h *managerHarness) addInterest(t *testing.T, eventType, broadcaster string) services.InterestKey {
	t.Helper()
	result, err := h.interests.Upsert(t.Context(), h.account.ID, h.bot.ID, eventType, broadcaster, "websocket", "")
	require.NoError(t, err)
	return services.InterestKey{
		BotAccountID:      h.bot.ID,
		EventType:         result.Interest.EventType,
		BroadcasterUserID: result.Interest.BroadcasterUserID,
	}
}

// envelopeReceiver collects envelopes POSTed to a downstream webhook target.
type envelopeReceiver struct {
	mu        sync.Mutex
	envelopes []events.Envelope
}

func newEnvelopeReceiver(t *testing.T) (*envelopeReceiver, string) {
	t.Helper()
	r := &envelopeReceiver{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var env events.Envelope
		require.NoError(t, json.NewDecoder(req.Body).Decode(&env))
		r.mu.Lock()
		r.envelopes = append(r.envelopes, env)
		r.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)
	return r, srv.URL
}

func (r *envelopeReceiver) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.envelopes)
}

func (r *envelopeReceiver) last() events.Envelope {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.envelopes[len(r.envelopes)-1]
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}
