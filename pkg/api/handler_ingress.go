package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/streamgate/streamgate/pkg/eventsub"
)

// Twitch EventSub webhook delivery headers.
const (
	headerMessageID        = "Twitch-Eventsub-Message-Id"
	headerMessageTimestamp = "Twitch-Eventsub-Message-Timestamp"
	headerMessageSignature = "Twitch-Eventsub-Message-Signature"
	headerMessageType      = "Twitch-Eventsub-Message-Type"
	headerSubscriptionType = "Twitch-Eventsub-Subscription-Type"
)

const (
	messageTypeVerification = "webhook_callback_verification"
	messageTypeNotification = "notification"
	messageTypeRevocation   = "revocation"

	// maxIngressBody bounds the raw body read; Twitch notification payloads
	// are far smaller.
	maxIngressBody = 1 << 20

	// timestampTolerance rejects replayed deliveries outside the window.
	timestampTolerance = 10 * time.Minute
)

// ingressBody is the webhook delivery payload: a challenge on verification,
// a subscription plus event on notification, a subscription on revocation.
type ingressBody struct {
	Challenge    string `json:"challenge"`
	Subscription struct {
		ID        string            `json:"id"`
		Status    string            `json:"status"`
		Type      string            `json:"type"`
		Condition map[string]string `json:"condition"`
	} `json:"subscription"`
	Event json.RawMessage `json:"event"`
}

// twitchWebhookHandler handles POST /webhooks/twitch/eventsub.
// Twitch authenticates itself with an HMAC over message id, timestamp and
// the raw body; the signature must be checked against the verbatim bytes
// before any parsing.
func (s *Server) twitchWebhookHandler(c *echo.Context) error {
	if s.cfg.EventSubWebhookSecret == "" {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "webhook ingress not configured")
	}

	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, maxIngressBody))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read body")
	}

	messageID := c.Request().Header.Get(headerMessageID)
	timestamp := c.Request().Header.Get(headerMessageTimestamp)
	signature := c.Request().Header.Get(headerMessageSignature)

	if !verifyTwitchSignature(s.cfg.EventSubWebhookSecret, messageID, timestamp, raw, signature) {
		return echo.NewHTTPError(http.StatusForbidden, "invalid signature")
	}

	ts, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return echo.NewHTTPError(http.StatusForbidden, "invalid timestamp")
	}
	if age := time.Since(ts); age > timestampTolerance || age < -timestampTolerance {
		return echo.NewHTTPError(http.StatusForbidden, "stale timestamp")
	}

	// Twitch retries deliveries it considers unacknowledged; a message id
	// seen inside the window is acked without reprocessing.
	if s.dedupe.Seen(messageID) {
		return c.NoContent(http.StatusNoContent)
	}

	var body ingressBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	switch c.Request().Header.Get(headerMessageType) {
	case messageTypeVerification:
		return c.String(http.StatusOK, body.Challenge)

	case messageTypeNotification:
		eventType := c.Request().Header.Get(headerSubscriptionType)
		if eventType == "" {
			eventType = body.Subscription.Type
		}
		s.manager.Route(c.Request().Context(), eventsub.Notification{
			MessageID:      messageID,
			EventType:      eventType,
			EventTimestamp: timestamp,
			SubscriptionID: body.Subscription.ID,
			Condition:      body.Subscription.Condition,
			Event:          body.Event,
		})
		return c.NoContent(http.StatusNoContent)

	case messageTypeRevocation:
		s.manager.HandleRevocation(c.Request().Context(), body.Subscription.ID, body.Subscription.Status)
		return c.NoContent(http.StatusNoContent)

	default:
		slog.Debug("Ignoring unknown webhook message type",
			"message_type", c.Request().Header.Get(headerMessageType))
		return c.NoContent(http.StatusNoContent)
	}
}

// verifyTwitchSignature checks the sha256=<hex> HMAC header over
// message_id || timestamp || raw_body.
func verifyTwitchSignature(secret, messageID, timestamp string, body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(messageID))
	mac.Write([]byte(timestamp))
	mac.Write(body)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
