package api

// CreateInterestRequest is the body of POST /v1/interests.
type CreateInterestRequest struct {
	BotAccountID      string `json:"bot_account_id"`
	EventType         string `json:"event_type"`
	BroadcasterUserID string `json:"broadcaster_user_id"`
	// Transport selects the downstream delivery: "websocket" (default) or
	// "webhook".
	Transport  string `json:"transport"`
	WebhookURL string `json:"webhook_url,omitempty"`
}
