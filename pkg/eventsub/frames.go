// Package eventsub drives the upstream side of the bridge: the single Twitch
// EventSub websocket session and the subscription manager that keeps upstream
// subscriptions aligned with registered service interests.
package eventsub

import (
	"encoding/json"
	"fmt"

	"github.com/streamgate/streamgate/pkg/twitch"
)

// EventSub websocket message types.
const (
	frameWelcome      = "session_welcome"
	frameKeepalive    = "session_keepalive"
	frameReconnect    = "session_reconnect"
	frameNotification = "notification"
	frameRevocation   = "revocation"
)

// frameMetadata is the metadata block common to every EventSub WS frame.
type frameMetadata struct {
	MessageID           string `json:"message_id"`
	MessageType         string `json:"message_type"`
	MessageTimestamp    string `json:"message_timestamp"`
	SubscriptionType    string `json:"subscription_type,omitempty"`
	SubscriptionVersion string `json:"subscription_version,omitempty"`
}

// frame is a raw EventSub WS frame with its payload left undecoded until the
// message type is known.
type frame struct {
	Metadata frameMetadata   `json:"metadata"`
	Payload  json.RawMessage `json:"payload"`
}

// sessionPayload is the payload of session_welcome and session_reconnect.
type sessionPayload struct {
	Session struct {
		ID                      string `json:"id"`
		Status                  string `json:"status"`
		KeepaliveTimeoutSeconds int    `json:"keepalive_timeout_seconds"`
		ReconnectURL            string `json:"reconnect_url"`
	} `json:"session"`
}

// notificationPayload is the payload of notification and revocation frames.
// The same shape arrives in webhook request bodies.
type notificationPayload struct {
	Subscription twitch.Subscription `json:"subscription"`
	Event        json.RawMessage     `json:"event"`
}

// Notification is one upstream event, normalized across the websocket and
// webhook ingress paths.
type Notification struct {
	MessageID      string
	EventType      string
	EventTimestamp string
	SubscriptionID string
	Condition      map[string]string
	Event          json.RawMessage
}

func decodeFrame(data []byte) (frame, error) {
	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		return frame{}, fmt.Errorf("failed to decode eventsub frame: %w", err)
	}
	if f.Metadata.MessageType == "" {
		return frame{}, fmt.Errorf("eventsub frame missing message_type")
	}
	return f, nil
}

func (f frame) sessionPayload() (sessionPayload, error) {
	var p sessionPayload
	if err := json.Unmarshal(f.Payload, &p); err != nil {
		return sessionPayload{}, fmt.Errorf("failed to decode session payload: %w", err)
	}
	return p, nil
}

func (f frame) notification() (Notification, error) {
	var p notificationPayload
	if err := json.Unmarshal(f.Payload, &p); err != nil {
		return Notification{}, fmt.Errorf("failed to decode notification payload: %w", err)
	}
	eventType := f.Metadata.SubscriptionType
	if eventType == "" {
		eventType = p.Subscription.Type
	}
	return Notification{
		MessageID:      f.Metadata.MessageID,
		EventType:      eventType,
		EventTimestamp: f.Metadata.MessageTimestamp,
		SubscriptionID: p.Subscription.ID,
		Condition:      p.Subscription.Condition,
		Event:          p.Event,
	}, nil
}
