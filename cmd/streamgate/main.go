// Streamgate bridge server. Terminates Twitch EventSub (webhook and
// websocket), fans events out to consumer services and exposes the
// interest-management HTTP API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/streamgate/streamgate/pkg/api"
	"github.com/streamgate/streamgate/pkg/cleanup"
	"github.com/streamgate/streamgate/pkg/config"
	"github.com/streamgate/streamgate/pkg/database"
	"github.com/streamgate/streamgate/pkg/events"
	"github.com/streamgate/streamgate/pkg/eventsub"
	"github.com/streamgate/streamgate/pkg/services"
	"github.com/streamgate/streamgate/pkg/twitch"
	"github.com/streamgate/streamgate/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func main() {
	// Administrative subcommands share the server's configuration but skip
	// the long-running machinery.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "create-service":
			runCreateService(os.Args[2:])
			return
		case "register-bot":
			runRegisterBot(os.Args[2:])
			return
		case "grant-bot":
			runGrantBot(os.Args[2:])
			return
		case "version":
			fmt.Println(version.Full())
			return
		}
	}

	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	loadDotEnv(*configDir)

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	slog.Info("Starting streamgate",
		"version", version.Full(),
		"listen_addr", cfg.ListenAddr,
		"webhook_enabled", cfg.WebhookEnabled())

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Twitch client and chat asset cache
	twitchClient := twitch.NewClient(twitch.Config{
		ClientID:     cfg.TwitchClientID,
		ClientSecret: cfg.TwitchClientSecret,
		HelixBaseURL: cfg.HelixBaseURL,
		OAuthBaseURL: cfg.OAuthBaseURL,
	})
	assetCache := twitch.NewAssetCache(twitchClient, slog.Default())

	// 4. Domain services
	accountService := services.NewAccountService(dbClient.Client)
	interestService := services.NewInterestService(dbClient.Client, twitchClient)
	subscriptionService := services.NewSubscriptionService(dbClient.Client)
	botService := services.NewBotService(dbClient.Client, twitchClient)
	channelService := services.NewChannelService(dbClient.Client, twitchClient)
	statsService := services.NewStatsService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. Fan-out hub and delivery primitives
	hub := events.NewHub(slog.Default(), statsService,
		cfg.OutgoingWebhookTimeout, cfg.OutgoingWebhookRetries, cfg.ServiceSigningSecret)
	hub.Start(ctx)
	defer hub.Stop()

	// One window shared by the webhook ingress and the websocket path; each
	// side dedupes on entry before routing.
	dedupe := events.NewDedupeWindow(cfg.DedupeTTL)
	tokenStore := events.NewTokenStore(cfg.WSTokenTTL)

	// 6. Subscription manager
	manager := eventsub.NewManager(slog.Default(), eventsub.Config{
		ClientID:      cfg.TwitchClientID,
		CallbackURL:   cfg.EventSubCallbackURL,
		WebhookSecret: cfg.EventSubWebhookSecret,
	}, eventsub.Deps{
		Twitch:    twitchClient,
		Interests: interestService,
		Subs:      subscriptionService,
		Bots:      botService,
		Channels:  channelService,
		Hub:       hub,
		Assets:    assetCache,
		Dedupe:    dedupe,
	})

	// 7. Reconcile persisted state against upstream Twitch
	if err := manager.ReconcileStartup(ctx); err != nil {
		slog.Error("Startup reconciliation failed", "error", err)
		// Non-fatal: interests re-ensure on their next registration or prune
		// cycle.
	}

	// 8. Upstream websocket session. Without a webhook callback every
	// subscription rides the websocket; with one, websocket is unused and
	// keeping an idle connection open only earns upstream disconnects.
	var wsSession *eventsub.WSSession
	if !cfg.WebhookEnabled() {
		wsSession = eventsub.NewWSSession(slog.Default(), cfg.EventSubWSURL, cfg.KeepaliveTimeout, manager)
		wsSession.Start(ctx)
		defer wsSession.Stop()
		slog.Info("Upstream EventSub websocket session started", "url", cfg.EventSubWSURL)
	}

	// 9. Stale interest pruning
	cleanupService := cleanup.NewService(interestService, manager, cfg.StaleInterestTTL, cfg.PruneInterval)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 10. HTTP server
	httpServer := api.NewServer(cfg, api.Deps{
		DB:        dbClient,
		Accounts:  accountService,
		Interests: interestService,
		Subs:      subscriptionService,
		Stats:     statsService,
		Hub:       hub,
		Tokens:    tokenStore,
		Dedupe:    dedupe,
		Manager:   manager,
		WebhookPolicy: services.WebhookTargetPolicy{
			AllowedHosts: cfg.WebhookHostAllowlist,
			BlockPrivate: cfg.BlockPrivateWebhookTargets,
		},
	})

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.ListenAddr)
		if err := httpServer.Start(cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Streamgate started successfully")

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown. Upstream subscriptions are deliberately left in
	// place: they survive the restart and are reconciled on next boot.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func loadDotEnv(configDir string) {
	envPath := filepath.Join(configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}
}
