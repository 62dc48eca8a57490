package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"LISTEN_ADDR", "TWITCH_CLIENT_ID", "TWITCH_CLIENT_SECRET",
	"HELIX_BASE_URL", "OAUTH_BASE_URL", "TWITCH_EVENTSUB_WS_URL",
	"TWITCH_EVENTSUB_WEBHOOK_CALLBACK_URL", "TWITCH_EVENTSUB_WEBHOOK_SECRET",
	"EVENTSUB_KEEPALIVE_TIMEOUT", "STALE_INTEREST_TTL", "PRUNE_INTERVAL",
	"DEDUPE_TTL", "WS_TOKEN_TTL", "OUTGOING_WEBHOOK_TIMEOUT",
	"OUTGOING_WEBHOOK_RETRIES", "WEBHOOK_HOST_ALLOWLIST",
	"BLOCK_PRIVATE_WEBHOOK_TARGETS", "IP_ALLOWLIST",
	"ERROR_ENVELOPE_COOLDOWN", "LOG_LEVEL",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range configEnvKeys {
			os.Unsetenv(key)
		}
	})
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("defaults with credentials", func(t *testing.T) {
		clearConfigEnv(t)
		os.Setenv("TWITCH_CLIENT_ID", "abc")
		os.Setenv("TWITCH_CLIENT_SECRET", "def")

		cfg, err := LoadFromEnv()
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.ListenAddr)
		assert.Equal(t, "https://api.twitch.tv/helix", cfg.HelixBaseURL)
		assert.Equal(t, "wss://eventsub.wss.twitch.tv/ws", cfg.EventSubWSURL)
		assert.Equal(t, 30*time.Second, cfg.KeepaliveTimeout)
		assert.Equal(t, 60*time.Minute, cfg.StaleInterestTTL)
		assert.Equal(t, 5*time.Minute, cfg.PruneInterval)
		assert.Equal(t, 10*time.Minute, cfg.DedupeTTL)
		assert.Equal(t, 60*time.Second, cfg.WSTokenTTL)
		assert.Equal(t, 3, cfg.OutgoingWebhookRetries)
		assert.True(t, cfg.BlockPrivateWebhookTargets)
		assert.False(t, cfg.WebhookEnabled())
	})

	t.Run("missing credentials", func(t *testing.T) {
		clearConfigEnv(t)
		_, err := LoadFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TWITCH_CLIENT_ID")
	})

	t.Run("callback requires secret", func(t *testing.T) {
		clearConfigEnv(t)
		os.Setenv("TWITCH_CLIENT_ID", "abc")
		os.Setenv("TWITCH_CLIENT_SECRET", "def")
		os.Setenv("TWITCH_EVENTSUB_WEBHOOK_CALLBACK_URL", "https://bridge.example.com/webhooks/twitch/eventsub")

		_, err := LoadFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TWITCH_EVENTSUB_WEBHOOK_SECRET")
	})

	t.Run("callback must be https", func(t *testing.T) {
		clearConfigEnv(t)
		os.Setenv("TWITCH_CLIENT_ID", "abc")
		os.Setenv("TWITCH_CLIENT_SECRET", "def")
		os.Setenv("TWITCH_EVENTSUB_WEBHOOK_CALLBACK_URL", "http://bridge.example.com/hook")
		os.Setenv("TWITCH_EVENTSUB_WEBHOOK_SECRET", "0123456789abcdef")

		_, err := LoadFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "https")
	})

	t.Run("webhook secret bounds", func(t *testing.T) {
		clearConfigEnv(t)
		os.Setenv("TWITCH_CLIENT_ID", "abc")
		os.Setenv("TWITCH_CLIENT_SECRET", "def")
		os.Setenv("TWITCH_EVENTSUB_WEBHOOK_CALLBACK_URL", "https://bridge.example.com/webhooks/twitch/eventsub")
		os.Setenv("TWITCH_EVENTSUB_WEBHOOK_SECRET", strings.Repeat("x", 101))

		_, err := LoadFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "10-100")
	})

	t.Run("webhook secret must be ascii", func(t *testing.T) {
		clearConfigEnv(t)
		os.Setenv("TWITCH_CLIENT_ID", "abc")
		os.Setenv("TWITCH_CLIENT_SECRET", "def")
		os.Setenv("TWITCH_EVENTSUB_WEBHOOK_CALLBACK_URL", "https://bridge.example.com/webhooks/twitch/eventsub")
		os.Setenv("TWITCH_EVENTSUB_WEBHOOK_SECRET", "geheimnisvoll-ä-secret")

		_, err := LoadFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ASCII")
	})

	t.Run("webhook transport enabled", func(t *testing.T) {
		clearConfigEnv(t)
		os.Setenv("TWITCH_CLIENT_ID", "abc")
		os.Setenv("TWITCH_CLIENT_SECRET", "def")
		os.Setenv("TWITCH_EVENTSUB_WEBHOOK_CALLBACK_URL", "https://bridge.example.com/webhooks/twitch/eventsub")
		os.Setenv("TWITCH_EVENTSUB_WEBHOOK_SECRET", "0123456789abcdef")

		cfg, err := LoadFromEnv()
		require.NoError(t, err)
		assert.True(t, cfg.WebhookEnabled())
	})

	t.Run("keepalive bounds", func(t *testing.T) {
		clearConfigEnv(t)
		os.Setenv("TWITCH_CLIENT_ID", "abc")
		os.Setenv("TWITCH_CLIENT_SECRET", "def")
		os.Setenv("EVENTSUB_KEEPALIVE_TIMEOUT", "5s")

		_, err := LoadFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "EVENTSUB_KEEPALIVE_TIMEOUT")
	})

	t.Run("list parsing", func(t *testing.T) {
		clearConfigEnv(t)
		os.Setenv("TWITCH_CLIENT_ID", "abc")
		os.Setenv("TWITCH_CLIENT_SECRET", "def")
		os.Setenv("WEBHOOK_HOST_ALLOWLIST", "hooks.example.com, internal.example.org ,")
		os.Setenv("IP_ALLOWLIST", "10.0.0.0/8,192.168.1.0/24")

		cfg, err := LoadFromEnv()
		require.NoError(t, err)
		assert.Equal(t, []string{"hooks.example.com", "internal.example.org"}, cfg.WebhookHostAllowlist)
		assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.0/24"}, cfg.IPAllowlist)
	})

	t.Run("invalid duration", func(t *testing.T) {
		clearConfigEnv(t)
		os.Setenv("TWITCH_CLIENT_ID", "abc")
		os.Setenv("TWITCH_CLIENT_SECRET", "def")
		os.Setenv("DEDUPE_TTL", "ten minutes")

		_, err := LoadFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DEDUPE_TTL")
	})
}
