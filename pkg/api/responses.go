package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/streamgate/streamgate/ent"
)

// HealthCheck is one component entry in the health response.
type HealthCheck struct {
	Status            string `json:"status"`
	Message           string `json:"message,omitempty"`
	ActiveConnections int    `json:"active_connections,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// InterestResponse is one registered interest.
type InterestResponse struct {
	ID                uuid.UUID `json:"id"`
	BotAccountID      uuid.UUID `json:"bot_account_id"`
	EventType         string    `json:"event_type"`
	BroadcasterUserID string    `json:"broadcaster_user_id"`
	Transport         string    `json:"transport"`
	WebhookURL        string    `json:"webhook_url,omitempty"`
	LastHeartbeatAt   time.Time `json:"last_heartbeat_at"`
	CreatedAt         time.Time `json:"created_at"`
}

func toInterestResponse(in *ent.ServiceInterest) InterestResponse {
	return InterestResponse{
		ID:                in.ID,
		BotAccountID:      in.BotAccountID,
		EventType:         in.EventType,
		BroadcasterUserID: in.BroadcasterUserID,
		Transport:         string(in.Transport),
		WebhookURL:        in.WebhookURL,
		LastHeartbeatAt:   in.LastHeartbeatAt,
		CreatedAt:         in.CreatedAt,
	}
}

// CreateInterestResponse is the body of POST /v1/interests. Companions are
// the auto-registered stream liveness interests created alongside this one.
type CreateInterestResponse struct {
	Interest   InterestResponse   `json:"interest"`
	Created    bool               `json:"created"`
	Companions []InterestResponse `json:"companions,omitempty"`
}

// DeleteInterestResponse is the body of DELETE /v1/interests/{id}.
type DeleteInterestResponse struct {
	Deleted bool `json:"deleted"`
	// Released reports whether the upstream Twitch subscription was torn down
	// because no other interest shares the key.
	Released bool `json:"released"`
}

// HeartbeatResponse is the body of POST /v1/interests/{id}/heartbeat.
type HeartbeatResponse struct {
	// Touched counts the interest rows refreshed, companions included.
	Touched int `json:"touched"`
}

// SubscriptionResponse is one enabled upstream subscription backing the
// caller's interests.
type SubscriptionResponse struct {
	BotAccountID         uuid.UUID `json:"bot_account_id"`
	EventType            string    `json:"event_type"`
	BroadcasterUserID    string    `json:"broadcaster_user_id"`
	Transport            string    `json:"transport"`
	Status               string    `json:"status"`
	TwitchSubscriptionID string    `json:"twitch_subscription_id,omitempty"`
}

// SubscriptionTypeResponse is one catalog entry of GET
// /v1/eventsub/subscription-types.
type SubscriptionTypeResponse struct {
	Title               string   `json:"title"`
	EventType           string   `json:"event_type"`
	Version             string   `json:"version"`
	Description         string   `json:"description"`
	Status              string   `json:"status"`
	SupportedTransports []string `json:"supported_transports"`
	// SelectedTransport is the upstream transport the bridge would pick for
	// this event type under the current configuration.
	SelectedTransport string `json:"selected_transport"`
	SelectionReason   string `json:"selection_reason"`
}

// WSTokenResponse is the body of POST /v1/ws-token.
type WSTokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}
