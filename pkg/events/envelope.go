// Package events holds the in-memory delivery machinery: the envelope codec,
// the upstream dedupe window, the single-use websocket ticket store and the
// fan-out hub that pushes envelopes to consumer services.
package events

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/streamgate/streamgate/pkg/twitch"
)

// Provider values stamped on outgoing envelopes.
const (
	ProviderTwitch = "twitch"
	// ProviderBridge marks envelopes synthesized by the bridge itself
	// (subscription.error).
	ProviderBridge = "twitch-service"
)

// Envelope is the uniform event shape delivered to consumer services over
// both downstream transports.
type Envelope struct {
	ID             string          `json:"id"`
	Provider       string          `json:"provider"`
	Type           string          `json:"type"`
	EventTimestamp string          `json:"event_timestamp"`
	Event          json.RawMessage `json:"event"`

	// TwitchChatAssets carries badge/emote enrichment for channel.chat.*
	// events only.
	TwitchChatAssets *twitch.Enrichment `json:"twitch_chat_assets,omitempty"`
}

// NewEnvelope builds an envelope for an upstream Twitch notification. The
// upstream message id is reused so consumers can deduplicate across bridge
// restarts; a synthetic id is generated when Twitch did not supply one.
func NewEnvelope(messageID, eventType, eventTimestamp string, event json.RawMessage) Envelope {
	id := strings.TrimSpace(messageID)
	if id == "" {
		id = strings.ReplaceAll(uuid.New().String(), "-", "")
	}
	ts := strings.TrimSpace(eventTimestamp)
	if ts == "" {
		ts = time.Now().UTC().Format(time.RFC3339Nano)
	}
	if event == nil {
		event = json.RawMessage("{}")
	}
	return Envelope{
		ID:             id,
		Provider:       ProviderTwitch,
		Type:           eventType,
		EventTimestamp: ts,
		Event:          event,
	}
}

// SubscriptionError is the event body of a subscription.error envelope.
type SubscriptionError struct {
	ErrorCode         string `json:"error_code"`
	Reason            string `json:"reason"`
	Hint              string `json:"hint"`
	EventType         string `json:"event_type"`
	BroadcasterUserID string `json:"broadcaster_user_id"`
	BotAccountID      string `json:"bot_account_id"`
	UpstreamTransport string `json:"upstream_transport"`
}

// NewSubscriptionErrorEnvelope builds the bridge-synthesized envelope that
// tells a service why its interest cannot be served upstream.
func NewSubscriptionErrorEnvelope(subErr SubscriptionError) Envelope {
	body, _ := json.Marshal(subErr)
	return Envelope{
		ID:             strings.ReplaceAll(uuid.New().String(), "-", ""),
		Provider:       ProviderBridge,
		Type:           "subscription.error",
		EventTimestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Event:          body,
	}
}
