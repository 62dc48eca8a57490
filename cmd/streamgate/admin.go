package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/streamgate/streamgate/pkg/database"
	"github.com/streamgate/streamgate/pkg/services"
)

// openDatabase connects using the same environment the server uses.
func openDatabase(ctx context.Context, configDir string) *database.Client {
	loadDotEnv(configDir)

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
	return dbClient
}

// runCreateService registers a consumer service account and prints its
// credentials. The secret is shown exactly once; only its hash is stored.
func runCreateService(args []string) {
	fs := flag.NewFlagSet("create-service", flag.ExitOnError)
	configDir := fs.String("config-dir", getEnv("CONFIG_DIR", "./deploy/config"), "Path to configuration directory")
	name := fs.String("name", "", "Service name (required)")
	_ = fs.Parse(args)

	if *name == "" {
		fmt.Fprintln(os.Stderr, "create-service: -name is required")
		os.Exit(2)
	}

	ctx := context.Background()
	dbClient := openDatabase(ctx, *configDir)
	defer dbClient.Close()

	account, secret, err := services.NewAccountService(dbClient.Client).CreateServiceAccount(ctx, *name)
	if err != nil {
		slog.Error("Failed to create service account", "error", err)
		os.Exit(1)
	}

	fmt.Printf("service account created\n")
	fmt.Printf("  id:            %s\n", account.ID)
	fmt.Printf("  name:          %s\n", account.Name)
	fmt.Printf("  client_id:     %s\n", account.ClientID)
	fmt.Printf("  client_secret: %s  (store this now; it is not retrievable)\n", secret)
}

// runRegisterBot stores a bot account with its user tokens. Tokens come from
// a user OAuth flow performed outside the bridge.
func runRegisterBot(args []string) {
	fs := flag.NewFlagSet("register-bot", flag.ExitOnError)
	configDir := fs.String("config-dir", getEnv("CONFIG_DIR", "./deploy/config"), "Path to configuration directory")
	twitchUserID := fs.String("twitch-user-id", "", "Bot's Twitch user id (required)")
	login := fs.String("login", "", "Bot's Twitch login (required)")
	displayName := fs.String("display-name", "", "Bot's display name")
	accessToken := fs.String("access-token", "", "User access token")
	refreshToken := fs.String("refresh-token", "", "User refresh token")
	expiresIn := fs.Duration("expires-in", time.Hour, "Access token lifetime from now")
	_ = fs.Parse(args)

	if *twitchUserID == "" || *login == "" {
		fmt.Fprintln(os.Stderr, "register-bot: -twitch-user-id and -login are required")
		os.Exit(2)
	}

	ctx := context.Background()
	dbClient := openDatabase(ctx, *configDir)
	defer dbClient.Close()

	bot, err := services.NewBotService(dbClient.Client, nil).RegisterBot(ctx,
		*twitchUserID, *login, *displayName, *accessToken, *refreshToken, time.Now().Add(*expiresIn))
	if err != nil {
		slog.Error("Failed to register bot", "error", err)
		os.Exit(1)
	}

	fmt.Printf("bot account registered\n")
	fmt.Printf("  id:             %s\n", bot.ID)
	fmt.Printf("  twitch_user_id: %s\n", bot.TwitchUserID)
	fmt.Printf("  login:          %s\n", bot.TwitchLogin)
}

// runGrantBot adds a bot to a service's allow-list. A service with no grants
// may use any bot; the first grant makes the list exhaustive.
func runGrantBot(args []string) {
	fs := flag.NewFlagSet("grant-bot", flag.ExitOnError)
	configDir := fs.String("config-dir", getEnv("CONFIG_DIR", "./deploy/config"), "Path to configuration directory")
	serviceID := fs.String("service-id", "", "Service account id (required)")
	botID := fs.String("bot-id", "", "Bot account id (required)")
	_ = fs.Parse(args)

	serviceUUID, err := uuid.Parse(*serviceID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "grant-bot: -service-id must be a UUID")
		os.Exit(2)
	}
	botUUID, err := uuid.Parse(*botID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "grant-bot: -bot-id must be a UUID")
		os.Exit(2)
	}

	ctx := context.Background()
	dbClient := openDatabase(ctx, *configDir)
	defer dbClient.Close()

	if err := services.NewAccountService(dbClient.Client).GrantBotAccess(ctx, serviceUUID, botUUID); err != nil {
		slog.Error("Failed to grant bot access", "error", err)
		os.Exit(1)
	}
	fmt.Printf("bot %s granted to service %s\n", botUUID, serviceUUID)
}
