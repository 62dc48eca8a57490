// Package twitch implements the Helix and OAuth client used for EventSub
// subscription management, user lookups, stream state and chat assets.
package twitch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/streamgate/streamgate/pkg/version"
)

const (
	requestTimeout = 20 * time.Second

	// appTokenExpirySkew refreshes the cached app token a minute early.
	appTokenExpirySkew = 60 * time.Second

	// streamsChunkSize is the Helix Get Streams user_id limit per request.
	streamsChunkSize = 100
)

// Config holds the settings needed to talk to Twitch.
type Config struct {
	ClientID     string
	ClientSecret string
	HelixBaseURL string
	OAuthBaseURL string
}

// Client is a Twitch API client. It caches the app access token and retries
// transient failures with exponential backoff. Safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client

	mu             sync.Mutex
	appToken       string
	appTokenExpiry time.Time
}

// NewClient creates a Twitch API client.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// OAuthToken is a user access token pair with its expiry.
type OAuthToken struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// TokenInfo is the response of the OAuth validate endpoint.
type TokenInfo struct {
	ClientID string   `json:"client_id"`
	Login    string   `json:"login"`
	UserID   string   `json:"user_id"`
	Scopes   []string `json:"scopes"`
}

// User is a Helix user record.
type User struct {
	ID          string `json:"id"`
	Login       string `json:"login"`
	DisplayName string `json:"display_name"`
}

// Stream is a Helix stream record; Type is "live" for active streams.
type Stream struct {
	UserID    string `json:"user_id"`
	UserLogin string `json:"user_login"`
	Type      string `json:"type"`
	StartedAt string `json:"started_at"`
}

// Subscription is an EventSub subscription as reported by Twitch.
type Subscription struct {
	ID        string                `json:"id"`
	Status    string                `json:"status"`
	Type      string                `json:"type"`
	Version   string                `json:"version"`
	Condition map[string]string     `json:"condition"`
	Transport SubscriptionTransport `json:"transport"`
	CreatedAt string                `json:"created_at"`
}

// SubscriptionTransport describes where Twitch delivers a subscription.
type SubscriptionTransport struct {
	Method      string `json:"method"`
	Callback    string `json:"callback,omitempty"`
	Secret      string `json:"secret,omitempty"`
	SessionID   string `json:"session_id,omitempty"`
	ConnectedAt string `json:"connected_at,omitempty"`
}

// CreateSubscriptionRequest is the EventSub create payload.
type CreateSubscriptionRequest struct {
	Type      string                `json:"type"`
	Version   string                `json:"version"`
	Condition map[string]string     `json:"condition"`
	Transport SubscriptionTransport `json:"transport"`
}

// AppAccessToken returns a cached client-credentials token, fetching a new
// one when the cached token is absent or near expiry.
func (c *Client) AppAccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.appToken != "" && time.Now().Before(c.appTokenExpiry) {
		return c.appToken, nil
	}

	form := url.Values{
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
		"grant_type":    {"client_credentials"},
	}
	var resp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := c.postForm(ctx, c.cfg.OAuthBaseURL+"/oauth2/token", form, &resp); err != nil {
		return "", fmt.Errorf("failed to get app token: %w", err)
	}

	c.appToken = resp.AccessToken
	c.appTokenExpiry = time.Now().Add(time.Duration(resp.ExpiresIn)*time.Second - appTokenExpirySkew)
	return c.appToken, nil
}

// RefreshToken exchanges a refresh token for a new user token pair. Twitch
// may omit the refresh token in the response; the old one stays valid then.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (OAuthToken, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
	}
	var resp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int    `json:"expires_in"`
	}
	if err := c.postForm(ctx, c.cfg.OAuthBaseURL+"/oauth2/token", form, &resp); err != nil {
		return OAuthToken{}, fmt.Errorf("failed to refresh token: %w", err)
	}
	if resp.RefreshToken == "" {
		resp.RefreshToken = refreshToken
	}
	return OAuthToken{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}, nil
}

// ValidateUserToken returns token metadata including granted scopes.
func (c *Client) ValidateUserToken(ctx context.Context, accessToken string) (TokenInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.OAuthBaseURL+"/oauth2/validate", nil)
	if err != nil {
		return TokenInfo{}, err
	}
	req.Header.Set("Authorization", "OAuth "+accessToken)

	var info TokenInfo
	if err := c.do(req, &info); err != nil {
		return TokenInfo{}, fmt.Errorf("failed to validate token: %w", err)
	}
	return info, nil
}

// GetUsersByLogin resolves Twitch logins to user records using the app token.
func (c *Client) GetUsersByLogin(ctx context.Context, logins []string) ([]User, error) {
	if len(logins) == 0 {
		return nil, nil
	}
	q := url.Values{}
	for _, l := range logins {
		q.Add("login", strings.ToLower(l))
	}
	var resp struct {
		Data []User `json:"data"`
	}
	if err := c.getHelix(ctx, "/users?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("failed users lookup: %w", err)
	}
	return resp.Data, nil
}

// GetStreams returns live stream records for the given user ids, chunking
// requests at the Helix per-request limit.
func (c *Client) GetStreams(ctx context.Context, userIDs []string) ([]Stream, error) {
	var out []Stream
	for start := 0; start < len(userIDs); start += streamsChunkSize {
		end := start + streamsChunkSize
		if end > len(userIDs) {
			end = len(userIDs)
		}
		q := url.Values{}
		for _, id := range userIDs[start:end] {
			q.Add("user_id", id)
		}
		var resp struct {
			Data []Stream `json:"data"`
		}
		if err := c.getHelix(ctx, "/streams?"+q.Encode(), &resp); err != nil {
			return nil, fmt.Errorf("failed streams lookup: %w", err)
		}
		out = append(out, resp.Data...)
	}
	return out, nil
}

// ListEventSubSubscriptions returns all subscriptions visible to the given
// token, following pagination. An empty accessToken uses the app token;
// websocket subscriptions created with a bot's user token are only visible
// to that same token.
func (c *Client) ListEventSubSubscriptions(ctx context.Context, accessToken string) ([]Subscription, error) {
	token, err := c.resolveToken(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	var out []Subscription
	cursor := ""
	for {
		path := "/eventsub/subscriptions"
		if cursor != "" {
			path += "?after=" + url.QueryEscape(cursor)
		}
		var resp struct {
			Data       []Subscription `json:"data"`
			Pagination struct {
				Cursor string `json:"cursor"`
			} `json:"pagination"`
		}
		if err := c.getHelixWithToken(ctx, path, token, &resp); err != nil {
			return nil, fmt.Errorf("failed listing subscriptions: %w", err)
		}
		out = append(out, resp.Data...)
		cursor = resp.Pagination.Cursor
		if cursor == "" {
			break
		}
	}
	return out, nil
}

// CreateEventSubSubscription creates a subscription. An empty accessToken
// uses the app token (webhook transport); websocket transport requires the
// bot's user token.
func (c *Client) CreateEventSubSubscription(ctx context.Context, req CreateSubscriptionRequest, accessToken string) (Subscription, error) {
	token, err := c.resolveToken(ctx, accessToken)
	if err != nil {
		return Subscription{}, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return Subscription{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.HelixBaseURL+"/eventsub/subscriptions", bytes.NewReader(body))
	if err != nil {
		return Subscription{}, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Client-Id", c.cfg.ClientID)
	httpReq.Header.Set("Content-Type", "application/json")

	var resp struct {
		Data []Subscription `json:"data"`
	}
	if err := c.do(httpReq, &resp); err != nil {
		return Subscription{}, fmt.Errorf("failed creating subscription: %w", err)
	}
	if len(resp.Data) == 0 {
		return Subscription{}, fmt.Errorf("empty create subscription response")
	}
	return resp.Data[0], nil
}

// DeleteEventSubSubscription removes a subscription by id. An empty
// accessToken uses the app token.
func (c *Client) DeleteEventSubSubscription(ctx context.Context, subscriptionID, accessToken string) error {
	token, err := c.resolveToken(ctx, accessToken)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		c.cfg.HelixBaseURL+"/eventsub/subscriptions?id="+url.QueryEscape(subscriptionID), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Client-Id", c.cfg.ClientID)

	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("failed deleting subscription: %w", err)
	}
	return nil
}

// BadgeSet is a Helix chat badge set with its versions.
type BadgeSet struct {
	SetID    string         `json:"set_id"`
	Versions []BadgeVersion `json:"versions"`
}

// BadgeVersion is one renderable version of a chat badge.
type BadgeVersion struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	ImageURL1x string `json:"image_url_1x"`
	ImageURL2x string `json:"image_url_2x"`
	ImageURL4x string `json:"image_url_4x"`
}

// Emote is a Helix emote record.
type Emote struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Images    map[string]string `json:"images"`
	Format    []string          `json:"format,omitempty"`
	Scale     []string          `json:"scale,omitempty"`
	ThemeMode []string          `json:"theme_mode,omitempty"`
}

// GetGlobalChatBadges returns the global chat badge sets.
func (c *Client) GetGlobalChatBadges(ctx context.Context) ([]BadgeSet, error) {
	var resp struct {
		Data []BadgeSet `json:"data"`
	}
	if err := c.getHelix(ctx, "/chat/badges/global", &resp); err != nil {
		return nil, fmt.Errorf("failed global badges lookup: %w", err)
	}
	return resp.Data, nil
}

// GetChannelChatBadges returns the broadcaster's custom chat badge sets.
func (c *Client) GetChannelChatBadges(ctx context.Context, broadcasterID string) ([]BadgeSet, error) {
	var resp struct {
		Data []BadgeSet `json:"data"`
	}
	if err := c.getHelix(ctx, "/chat/badges?broadcaster_id="+url.QueryEscape(broadcasterID), &resp); err != nil {
		return nil, fmt.Errorf("failed channel badges lookup: %w", err)
	}
	return resp.Data, nil
}

// GetGlobalEmotes returns the global emote set.
func (c *Client) GetGlobalEmotes(ctx context.Context) ([]Emote, error) {
	var resp struct {
		Data []Emote `json:"data"`
	}
	if err := c.getHelix(ctx, "/chat/emotes/global", &resp); err != nil {
		return nil, fmt.Errorf("failed global emotes lookup: %w", err)
	}
	return resp.Data, nil
}

// GetChannelEmotes returns the broadcaster's follower/subscriber emotes.
func (c *Client) GetChannelEmotes(ctx context.Context, broadcasterID string) ([]Emote, error) {
	var resp struct {
		Data []Emote `json:"data"`
	}
	if err := c.getHelix(ctx, "/chat/emotes?broadcaster_id="+url.QueryEscape(broadcasterID), &resp); err != nil {
		return nil, fmt.Errorf("failed channel emotes lookup: %w", err)
	}
	return resp.Data, nil
}

func (c *Client) resolveToken(ctx context.Context, accessToken string) (string, error) {
	if accessToken != "" {
		return accessToken, nil
	}
	return c.AppAccessToken(ctx)
}

func (c *Client) getHelix(ctx context.Context, path string, out any) error {
	token, err := c.AppAccessToken(ctx)
	if err != nil {
		return err
	}
	return c.getHelixWithToken(ctx, path, token, out)
}

func (c *Client) getHelixWithToken(ctx context.Context, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.HelixBaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Client-Id", c.cfg.ClientID)
	return c.do(req, out)
}

func (c *Client) postForm(ctx context.Context, rawURL string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

// do executes the request with backoff on transient failures and decodes a
// JSON response into out when out is non-nil.
func (c *Client) do(req *http.Request, out any) error {
	var bodyBytes []byte
	if req.Body != nil {
		var err error
		bodyBytes, err = io.ReadAll(req.Body)
		if err != nil {
			return err
		}
	}

	operation := func() error {
		if bodyBytes != nil {
			req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		}
		req.Header.Set("User-Agent", version.Full())

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
			if IsTransient(apiErr) {
				return apiErr
			}
			return backoff.Permanent(apiErr)
		}

		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode response: %w", err))
		}
		return nil
	}

	policy := backoff.WithContext(newRetryPolicy(), req.Context())
	return backoff.Retry(operation, policy)
}

func newRetryPolicy() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = 30 * time.Second
	return b
}
