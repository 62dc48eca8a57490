// Package config loads streamgate runtime configuration from environment
// variables. Database settings live in pkg/database and are loaded separately.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all non-database runtime settings.
type Config struct {
	// ListenAddr is the HTTP listen address, e.g. ":8080".
	ListenAddr string

	// Twitch application credentials.
	TwitchClientID     string
	TwitchClientSecret string

	// HelixBaseURL and OAuthBaseURL are overridable for tests and the Twitch CLI
	// mock server.
	HelixBaseURL string
	OAuthBaseURL string

	// EventSubWSURL is the upstream EventSub websocket endpoint.
	EventSubWSURL string

	// EventSubCallbackURL is the public HTTPS URL Twitch posts webhook
	// notifications to. Empty means webhook transport is unavailable and all
	// subscriptions ride the upstream websocket.
	EventSubCallbackURL string

	// EventSubWebhookSecret signs incoming Twitch webhook requests. Required
	// when EventSubCallbackURL is set.
	EventSubWebhookSecret string

	// KeepaliveTimeout is requested from Twitch on websocket dial. The session
	// watchdog fires at 1.5x this value.
	KeepaliveTimeout time.Duration

	// StaleInterestTTL and PruneInterval drive the cleanup loop: interests
	// without a heartbeat for StaleInterestTTL are removed every PruneInterval.
	StaleInterestTTL time.Duration
	PruneInterval    time.Duration

	// DedupeTTL is how long upstream message ids are remembered.
	DedupeTTL time.Duration

	// WSTokenTTL bounds the single-use downstream websocket ticket lifetime.
	WSTokenTTL time.Duration

	// Outgoing webhook delivery to consumer services. ServiceSigningSecret
	// signs the POST body so consumers can authenticate deliveries; empty
	// disables signing.
	OutgoingWebhookTimeout time.Duration
	OutgoingWebhookRetries int
	ServiceSigningSecret   string

	// WebhookHostAllowlist restricts consumer webhook targets; empty allows any
	// host. BlockPrivateWebhookTargets rejects URLs resolving to non-public IPs.
	WebhookHostAllowlist       []string
	BlockPrivateWebhookTargets bool

	// IPAllowlist restricts API access by client CIDR. The Twitch webhook
	// ingress is exempt: Twitch's egress ranges are not stable.
	IPAllowlist []string

	// ErrorEnvelopeCooldown rate-limits subscription.error envelopes per
	// (service, interest key, error code).
	ErrorEnvelopeCooldown time.Duration

	LogLevel string
}

// LoadFromEnv loads configuration from environment variables, applying
// defaults for everything except the Twitch credentials.
func LoadFromEnv() (Config, error) {
	cfg := Config{
		ListenAddr:                 getEnvOrDefault("LISTEN_ADDR", ":8080"),
		TwitchClientID:             os.Getenv("TWITCH_CLIENT_ID"),
		TwitchClientSecret:         os.Getenv("TWITCH_CLIENT_SECRET"),
		HelixBaseURL:               getEnvOrDefault("HELIX_BASE_URL", "https://api.twitch.tv/helix"),
		OAuthBaseURL:               getEnvOrDefault("OAUTH_BASE_URL", "https://id.twitch.tv"),
		EventSubWSURL:              getEnvOrDefault("TWITCH_EVENTSUB_WS_URL", "wss://eventsub.wss.twitch.tv/ws"),
		EventSubCallbackURL:        os.Getenv("TWITCH_EVENTSUB_WEBHOOK_CALLBACK_URL"),
		EventSubWebhookSecret:      os.Getenv("TWITCH_EVENTSUB_WEBHOOK_SECRET"),
		ServiceSigningSecret:       os.Getenv("SERVICE_SIGNING_SECRET"),
		BlockPrivateWebhookTargets: getEnvBool("BLOCK_PRIVATE_WEBHOOK_TARGETS", true),
		WebhookHostAllowlist:       splitList(os.Getenv("WEBHOOK_HOST_ALLOWLIST")),
		IPAllowlist:                splitList(os.Getenv("IP_ALLOWLIST")),
		LogLevel:                   getEnvOrDefault("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.KeepaliveTimeout, err = getEnvDuration("EVENTSUB_KEEPALIVE_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.StaleInterestTTL, err = getEnvDuration("STALE_INTEREST_TTL", 60*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.PruneInterval, err = getEnvDuration("PRUNE_INTERVAL", 5*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.DedupeTTL, err = getEnvDuration("DEDUPE_TTL", 10*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.WSTokenTTL, err = getEnvDuration("WS_TOKEN_TTL", 60*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.OutgoingWebhookTimeout, err = getEnvDuration("OUTGOING_WEBHOOK_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ErrorEnvelopeCooldown, err = getEnvDuration("ERROR_ENVELOPE_COOLDOWN", 60*time.Second); err != nil {
		return Config{}, err
	}

	retries, err := strconv.Atoi(getEnvOrDefault("OUTGOING_WEBHOOK_RETRIES", "3"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid OUTGOING_WEBHOOK_RETRIES: %w", err)
	}
	cfg.OutgoingWebhookRetries = retries

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks internal consistency of the configuration.
func (c Config) Validate() error {
	if c.TwitchClientID == "" {
		return fmt.Errorf("TWITCH_CLIENT_ID is required")
	}
	if c.TwitchClientSecret == "" {
		return fmt.Errorf("TWITCH_CLIENT_SECRET is required")
	}
	if c.EventSubCallbackURL != "" {
		u, err := url.Parse(c.EventSubCallbackURL)
		if err != nil || u.Scheme != "https" || u.Host == "" {
			return fmt.Errorf("TWITCH_EVENTSUB_WEBHOOK_CALLBACK_URL must be an absolute https URL")
		}
		if err := validateWebhookSecret(c.EventSubWebhookSecret); err != nil {
			return err
		}
	}
	if c.KeepaliveTimeout < 10*time.Second || c.KeepaliveTimeout > 600*time.Second {
		return fmt.Errorf("EVENTSUB_KEEPALIVE_TIMEOUT must be between 10s and 600s")
	}
	if c.OutgoingWebhookRetries < 0 {
		return fmt.Errorf("OUTGOING_WEBHOOK_RETRIES must not be negative")
	}
	return nil
}

// validateWebhookSecret enforces Twitch's constraints on the EventSub webhook
// secret: 10 to 100 printable ASCII characters.
func validateWebhookSecret(secret string) error {
	if len(secret) < 10 || len(secret) > 100 {
		return fmt.Errorf("TWITCH_EVENTSUB_WEBHOOK_SECRET must be 10-100 characters when TWITCH_EVENTSUB_WEBHOOK_CALLBACK_URL is set")
	}
	for _, r := range secret {
		if r < 0x21 || r > 0x7e {
			return fmt.Errorf("TWITCH_EVENTSUB_WEBHOOK_SECRET must contain only printable ASCII characters")
		}
	}
	return nil
}

// WebhookEnabled reports whether the webhook transport toward Twitch is
// available.
func (c Config) WebhookEnabled() bool {
	return c.EventSubCallbackURL != ""
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(val string) []string {
	if val == "" {
		return nil
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
