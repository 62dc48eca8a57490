package eventsub

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/streamgate/streamgate/pkg/services"
	"github.com/streamgate/streamgate/pkg/twitch"
)

// Error codes carried on subscription.error envelopes.
const (
	CodeInsufficientPermissions = "insufficient_permissions"
	CodeMissingScope            = "missing_scope"
	CodeUnauthorized            = "unauthorized"
	CodeTransient               = "transient"
	CodeCreateFailed            = "subscription_create_failed"
	CodeRevoked                 = "authorization_revoked"
	CodeUnsupportedUpstream     = "unsupported_upstream"
)

// errorCooldownTTL suppresses repeated subscription.error envelopes for the
// same (service, key, code) composite.
const errorCooldownTTL = 60 * time.Second

// ClassifyCreateFailure maps a subscription-create error from the Twitch API
// to a stable error code for consumers.
func ClassifyCreateFailure(err error) string {
	if err == nil {
		return ""
	}
	apiErr, ok := twitch.AsAPIError(err)
	if !ok {
		if twitch.IsTransient(err) {
			return CodeTransient
		}
		return CodeCreateFailed
	}

	message := strings.ToLower(apiErr.Message)
	switch {
	case strings.Contains(message, "missing proper authorization"):
		return CodeInsufficientPermissions
	case strings.Contains(message, "scope"):
		return CodeMissingScope
	case twitch.IsUnauthorized(err) || twitch.IsForbidden(err):
		return CodeUnauthorized
	case twitch.IsTransient(err):
		return CodeTransient
	default:
		return CodeCreateFailed
	}
}

// ErrorHint returns operator guidance for an error code.
func ErrorHint(code string) string {
	switch code {
	case CodeInsufficientPermissions:
		return "The bot lacks the moderator or broadcaster role required by this event type."
	case CodeMissingScope:
		return "Re-authorize the bot with the scopes this event type requires."
	case CodeUnauthorized:
		return "The bot's authorization was rejected; re-run the OAuth flow."
	case CodeRevoked:
		return "The broadcaster or bot revoked authorization; re-authorize to resume delivery."
	case CodeUnsupportedUpstream:
		return "This event type is webhook-only and no webhook callback is configured."
	default:
		return "Subscription creation failed; check the reason and retry."
	}
}

// errorCooldown rate-limits subscription.error emission per
// (service, key, code).
type errorCooldown struct {
	ttl time.Duration

	mu   sync.Mutex
	last map[string]time.Time

	// now is swappable for tests.
	now func() time.Time
}

func newErrorCooldown(ttl time.Duration) *errorCooldown {
	return &errorCooldown{
		ttl:  ttl,
		last: make(map[string]time.Time),
		now:  time.Now,
	}
}

// Allow reports whether an error envelope may be emitted now, and records the
// emission when it may.
func (c *errorCooldown) Allow(serviceAccountID uuid.UUID, key services.InterestKey, code string) bool {
	composite := fmt.Sprintf("%s|%s|%s", serviceAccountID, key.String(), code)

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if emitted, ok := c.last[composite]; ok && now.Sub(emitted) < c.ttl {
		return false
	}
	c.last[composite] = now

	// Opportunistic sweep so the map does not grow without bound.
	for k, emitted := range c.last {
		if now.Sub(emitted) >= c.ttl {
			delete(c.last, k)
		}
	}
	return true
}
