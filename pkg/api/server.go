// Package api exposes the service-facing HTTP surface: interest management,
// downstream websocket attachment, the Twitch webhook ingress and health.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/streamgate/streamgate/pkg/config"
	"github.com/streamgate/streamgate/pkg/database"
	"github.com/streamgate/streamgate/pkg/events"
	"github.com/streamgate/streamgate/pkg/eventsub"
	"github.com/streamgate/streamgate/pkg/services"
)

// twitchWebhookPath is fixed: it is registered with Twitch as part of every
// webhook subscription and must survive restarts and redeploys.
const twitchWebhookPath = "/webhooks/twitch/eventsub"

// SubscriptionManager is the slice of the eventsub manager the API needs.
type SubscriptionManager interface {
	Ensure(ctx context.Context, key services.InterestKey) error
	Release(ctx context.Context, key services.InterestKey) error
	Route(ctx context.Context, n eventsub.Notification)
	HandleRevocation(ctx context.Context, twitchSubscriptionID, status string)
}

// Deps carries the collaborators the server dispatches into.
type Deps struct {
	DB            *database.Client
	Accounts      *services.AccountService
	Interests     *services.InterestService
	Subs          *services.SubscriptionService
	Stats         *services.StatsService
	Hub           *events.Hub
	Tokens        *events.TokenStore
	Dedupe        *events.DedupeWindow
	Manager       SubscriptionManager
	WebhookPolicy services.WebhookTargetPolicy
}

// Server is the API server.
type Server struct {
	echo *echo.Echo
	cfg  config.Config

	dbClient      *database.Client
	accounts      *services.AccountService
	interests     *services.InterestService
	subs          *services.SubscriptionService
	stats         *services.StatsService
	hub           *events.Hub
	tokens        *events.TokenStore
	dedupe        *events.DedupeWindow
	manager       SubscriptionManager
	webhookPolicy services.WebhookTargetPolicy

	httpServer *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(cfg config.Config, deps Deps) *Server {
	s := &Server{
		echo:          echo.New(),
		cfg:           cfg,
		dbClient:      deps.DB,
		accounts:      deps.Accounts,
		interests:     deps.Interests,
		subs:          deps.Subs,
		stats:         deps.Stats,
		hub:           deps.Hub,
		tokens:        deps.Tokens,
		dedupe:        deps.Dedupe,
		manager:       deps.Manager,
		webhookPolicy: deps.WebhookPolicy,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.echo.Use(securityHeaders())
	if len(s.cfg.IPAllowlist) > 0 {
		// The Twitch ingress is exempt: Twitch's egress ranges are not stable
		// enough to allowlist.
		s.echo.Use(ipAllowlist(s.cfg.IPAllowlist, twitchWebhookPath))
	}

	s.echo.GET("/health", s.healthHandler)
	s.echo.POST(twitchWebhookPath, s.twitchWebhookHandler)
	s.echo.GET("/ws/events", s.wsEventsHandler)

	v1 := s.echo.Group("/v1")
	v1.POST("/interests", s.createInterestHandler)
	v1.GET("/interests", s.listInterestsHandler)
	v1.DELETE("/interests/:id", s.deleteInterestHandler)
	v1.POST("/interests/:id/heartbeat", s.heartbeatInterestHandler)
	v1.GET("/subscriptions", s.listSubscriptionsHandler)
	v1.GET("/eventsub/subscription-types", s.subscriptionTypesHandler)
	v1.POST("/ws-token", s.wsTokenHandler)
}

// Start begins serving on addr. Blocks until the listener fails or Shutdown
// is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
