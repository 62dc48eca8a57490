package api

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/streamgate/streamgate/ent"
	"github.com/streamgate/streamgate/pkg/config"
	"github.com/streamgate/streamgate/pkg/database"
	"github.com/streamgate/streamgate/pkg/events"
	"github.com/streamgate/streamgate/pkg/eventsub"
	"github.com/streamgate/streamgate/pkg/services"
	"github.com/streamgate/streamgate/test/util"
)

// fakeManager records subscription manager calls so handler tests can assert
// on wiring without an upstream Twitch.
type fakeManager struct {
	mu        sync.Mutex
	ensured   []services.InterestKey
	released  []services.InterestKey
	routed    []eventsub.Notification
	revoked   []string
	ensureErr error
}

func (m *fakeManager) Ensure(_ context.Context, key services.InterestKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensured = append(m.ensured, key)
	return m.ensureErr
}

func (m *fakeManager) Release(_ context.Context, key services.InterestKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.released = append(m.released, key)
	return nil
}

func (m *fakeManager) Route(_ context.Context, n eventsub.Notification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routed = append(m.routed, n)
}

func (m *fakeManager) HandleRevocation(_ context.Context, twitchSubscriptionID, _ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked = append(m.revoked, twitchSubscriptionID)
}

func (m *fakeManager) ensuredKeys() []services.InterestKey {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]services.InterestKey{}, m.ensured...)
}

func (m *fakeManager) releasedKeys() []services.InterestKey {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]services.InterestKey{}, m.released...)
}

func (m *fakeManager) routedNotifications() []eventsub.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]eventsub.Notification{}, m.routed...)
}

func (m *fakeManager) revokedIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.revoked...)
}

type serverHarness struct {
	server  *Server
	client  *ent.Client
	manager *fakeManager

	accounts  *services.AccountService
	interests *services.InterestService
	stats     *services.StatsService

	account      *ent.ServiceAccount
	clientSecret string
	bot          *ent.BotAccount
}

const testWebhookSecret = "ingress-secret-0123456789"

func newServerHarness(t *testing.T) *serverHarness {
	t.Helper()
	ctx := t.Context()

	entClient, db := util.SetupTestDatabase(t)
	logger := slog.New(slog.DiscardHandler)

	accounts := services.NewAccountService(entClient)
	interests := services.NewInterestService(entClient, nil)
	subs := services.NewSubscriptionService(entClient)
	stats := services.NewStatsService(entClient)

	hub := events.NewHub(logger, stats, 2*time.Second, 1, "")
	hub.Start(ctx)
	t.Cleanup(hub.Stop)

	manager := &fakeManager{}

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
		Dedupe:    events.NewDedupeWindow(10 * time.Minute),
		Manager:   manager,
		WebhookPolicy: services.WebhookTargetPolicy{
			AllowedHosts: []string{"consumer.example.com"},
		},
	})

	account, clientSecret, err := accounts.CreateServiceAccount(ctx, "harness-service")
	require.NoError(t, err)

	bot, err := entClient.BotAccount.Create().
		SetTwitchUserID("9001").
		SetTwitchLogin("harness_bot").
		SetAccessToken("user-token").
		SetRefreshToken("refresh-token").
		SetTokenExpiresAt(time.Now().Add(time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	return &serverHarness{
		server:       server,
		client:       entClient,
		manager:      manager,
		accounts:     accounts,
		interests:    interests,
		stats:        stats,
		account:      account,
		clientSecret: clientSecret,
		bot:          bot,
	}
}

// do runs a request through the full middleware chain with the harness
// account's credentials attached.
func (h *serverHarness) do(req *http.Request) *httptest.ResponseRecorder {
	req.Header.Set("X-Client-Id", h.account.ClientID)
	req.Header.Set("X-Client-Secret", h.clientSecret)
	if req.Body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.server.echo.ServeHTTP(rec, req)
	return rec
}

// doAnon runs a request without credentials.
func (h *serverHarness) doAnon(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.server.echo.ServeHTTP(rec, req)
	return rec
}
