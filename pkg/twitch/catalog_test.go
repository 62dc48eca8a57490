package twitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportedTransports(t *testing.T) {
	assert.Equal(t, []string{"webhook"}, SupportedTransports("drop.entitlement.grant"))
	assert.Equal(t, []string{"webhook"}, SupportedTransports("user.authorization.revoke"))
	assert.Equal(t, []string{"webhook", "websocket"}, SupportedTransports("channel.follow"))
	assert.Equal(t, []string{"webhook", "websocket"}, SupportedTransports("  Stream.Online "))
}

func TestBestTransport(t *testing.T) {
	t.Run("authorization revoke is always webhook", func(t *testing.T) {
		transport, _ := BestTransport("user.authorization.revoke", false)
		assert.Equal(t, "webhook", transport)
	})

	t.Run("webhook preferred when callback configured", func(t *testing.T) {
		transport, _ := BestTransport("channel.follow", true)
		assert.Equal(t, "webhook", transport)
	})

	t.Run("websocket fallback without callback", func(t *testing.T) {
		transport, _ := BestTransport("channel.follow", false)
		assert.Equal(t, "websocket", transport)
	})

	t.Run("webhook-only types stay webhook without callback", func(t *testing.T) {
		transport, _ := BestTransport("drop.entitlement.grant", false)
		assert.Equal(t, "webhook", transport)
	})
}

func TestPreferredVersion(t *testing.T) {
	assert.Equal(t, "2", PreferredVersion("channel.moderate"))
	assert.Equal(t, "2", PreferredVersion("automod.message.hold"))
	assert.Equal(t, "1", PreferredVersion("channel.follow.v2-does-not-exist"))
	assert.Equal(t, "1", PreferredVersion("stream.online"))
	// Beta-only entries have no numeric version.
	assert.Equal(t, "1", PreferredVersion("channel.guest_star_session.begin"))
}

func TestRequiresConditionUserID(t *testing.T) {
	assert.True(t, RequiresConditionUserID("channel.chat.message"))
	assert.True(t, RequiresConditionUserID("channel.chat_settings.update"))
	assert.False(t, RequiresConditionUserID("channel.follow"))
	assert.False(t, RequiresConditionUserID("stream.online"))
}

func TestIsChatEventType(t *testing.T) {
	assert.True(t, IsChatEventType("channel.chat.message"))
	assert.False(t, IsChatEventType("channel.chat_settings.update"))
	assert.False(t, IsChatEventType("channel.follow"))
}

func TestHasRequiredScopes(t *testing.T) {
	t.Run("no requirements", func(t *testing.T) {
		assert.True(t, HasRequiredScopes("channel.follow", nil))
	})

	t.Run("any-of group satisfied", func(t *testing.T) {
		assert.True(t, HasRequiredScopes("channel.poll.begin", []string{"channel:manage:polls"}))
		assert.True(t, HasRequiredScopes("channel.poll.begin", []string{"channel:read:polls"}))
	})

	t.Run("missing scope", func(t *testing.T) {
		assert.False(t, HasRequiredScopes("channel.poll.begin", []string{"channel:read:goals"}))
		assert.False(t, HasRequiredScopes("channel.hype_train.begin", nil))
	})

	t.Run("redemption shares reward scopes", func(t *testing.T) {
		assert.True(t, HasRequiredScopes(
			"channel.channel_points_custom_reward_redemption.add",
			[]string{"channel:read:redemptions"},
		))
	})
}

func TestCatalogConsistency(t *testing.T) {
	assert.NotEmpty(t, Catalog)
	for _, entry := range Catalog {
		assert.True(t, IsKnownEventType(entry.EventType), entry.EventType)
		assert.NotEmpty(t, entry.Version, entry.EventType)
		assert.Contains(t, []string{"stable", "new", "beta"}, entry.Status, entry.EventType)
	}
	assert.False(t, IsKnownEventType("channel.made_up.event"))
}
