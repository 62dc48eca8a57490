package eventsub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/streamgate/streamgate/ent/twitchsubscription"
	"github.com/streamgate/streamgate/pkg/events"
	"github.com/streamgate/streamgate/pkg/services"
	"github.com/streamgate/streamgate/pkg/twitch"
)

// eventTypeAuthRevoke is the permanent webhook-managed system subscription
// that tells the bridge a user pulled the client's authorization.
const eventTypeAuthRevoke = "user.authorization.revoke"

// Config carries the deployment identity the manager stamps on upstream
// subscriptions.
type Config struct {
	// ClientID is the Twitch application client id, used in the condition of
	// the authorization-revoke system subscription.
	ClientID string
	// CallbackURL is the public webhook ingress URL. Empty disables webhook
	// upstream transport.
	CallbackURL string
	// WebhookSecret signs upstream webhook deliveries from Twitch.
	WebhookSecret string
}

// Deps are the collaborators the manager routes through.
type Deps struct {
	Twitch    *twitch.Client
	Interests *services.InterestService
	Subs      *services.SubscriptionService
	Bots      *services.BotService
	Channels  *services.ChannelService
	Hub       *events.Hub
	Assets    *twitch.AssetCache
	Dedupe    *events.DedupeWindow
}

// Manager keeps exactly one live upstream subscription per interest key,
// routes upstream notifications to interested services and reports terminal
// subscription failures back to them as subscription.error envelopes.
type Manager struct {
	logger   *slog.Logger
	cfg      Config
	deps     Deps
	cooldown *errorCooldown

	mu       sync.Mutex
	keyLocks map[string]*sync.Mutex

	sessionMu sync.Mutex
	sessionID string
}

// NewManager creates a subscription manager.
func NewManager(logger *slog.Logger, cfg Config, deps Deps) *Manager {
	return &Manager{
		logger:   logger,
		cfg:      cfg,
		deps:     deps,
		cooldown: newErrorCooldown(errorCooldownTTL),
		keyLocks: make(map[string]*sync.Mutex),
	}
}

func (m *Manager) webhookAvailable() bool {
	return m.cfg.CallbackURL != "" && m.cfg.WebhookSecret != ""
}

// lockKey returns the mutex serializing work on one interest key so
// concurrent ensures coalesce instead of racing Twitch.
func (m *Manager) lockKey(key services.InterestKey) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	composite := key.String()
	lock, ok := m.keyLocks[composite]
	if !ok {
		lock = &sync.Mutex{}
		m.keyLocks[composite] = lock
	}
	return lock
}

func (m *Manager) currentSessionID() string {
	m.sessionMu.Lock()
	defer m.sessionMu.Unlock()
	return m.sessionID
}

// Ensure guarantees one live upstream subscription for the key. Idempotent:
// an enabled subscription bound to a live transport is left alone.
func (m *Manager) Ensure(ctx context.Context, key services.InterestKey) error {
	lock := m.lockKey(key)
	lock.Lock()
	defer lock.Unlock()

	transport, reason := twitch.BestTransport(key.EventType, m.webhookAvailable())
	if transport == "webhook" && !m.webhookAvailable() {
		return m.failKey(ctx, key, CodeUnsupportedUpstream,
			fmt.Sprintf("%s is webhook-only and no webhook callback is configured", key.EventType), transport)
	}

	existing, err := m.deps.Subs.GetByKey(ctx, key)
	if err == nil && existing.Status == twitchsubscription.StatusEnabled {
		switch existing.Transport {
		case twitchsubscription.TransportWebhook:
			return nil
		case twitchsubscription.TransportWebsocket:
			if existing.SessionID != nil && *existing.SessionID == m.currentSessionID() {
				return nil
			}
			// Bound to a dead session; recreate below.
		}
	} else if err != nil && !errors.Is(err, services.ErrNotFound) {
		return err
	}

	record, err := m.deps.Subs.EnsurePending(ctx, key, transport)
	if err != nil {
		return err
	}

	bot, err := m.deps.Bots.GetBot(ctx, key.BotAccountID)
	if err != nil {
		return fmt.Errorf("failed to load bot for %s: %w", key, err)
	}
	if !bot.Enabled {
		return m.failKey(ctx, key, CodeUnauthorized,
			fmt.Sprintf("bot %s is disabled", bot.TwitchUserID), transport)
	}

	condition := map[string]string{"broadcaster_user_id": key.BroadcasterUserID}
	if twitch.RequiresConditionUserID(key.EventType) {
		condition["user_id"] = bot.TwitchUserID
	}

	var wireTransport twitch.SubscriptionTransport
	accessToken := ""
	sessionID := ""
	if transport == "webhook" {
		wireTransport = twitch.SubscriptionTransport{
			Method:   "webhook",
			Callback: m.cfg.CallbackURL,
			Secret:   m.cfg.WebhookSecret,
		}
	} else {
		sessionID = m.currentSessionID()
		if sessionID == "" {
			// No live session yet; the row stays pending and is picked up by
			// the next session_welcome.
			m.logger.Debug("Deferring websocket subscription until session welcome", "key", key.String())
			return nil
		}
		wireTransport = twitch.SubscriptionTransport{Method: "websocket", SessionID: sessionID}
		accessToken, err = m.deps.Bots.FreshUserToken(ctx, key.BotAccountID)
		if err != nil {
			return m.failKey(ctx, key, CodeUnauthorized, err.Error(), transport)
		}
		if err := m.checkTokenScopes(ctx, key, accessToken, transport); err != nil {
			return err
		}
	}

	created, err := m.deps.Twitch.CreateEventSubSubscription(ctx, twitch.CreateSubscriptionRequest{
		Type:      key.EventType,
		Version:   twitch.PreferredVersion(key.EventType),
		Condition: condition,
		Transport: wireTransport,
	}, accessToken)
	if err != nil {
		if twitch.IsConflict(err) {
			return m.adoptExisting(ctx, key, accessToken, sessionID)
		}
		code := ClassifyCreateFailure(err)
		return m.failKey(ctx, key, code, err.Error(), transport)
	}

	if err := m.deps.Subs.MarkEnabled(ctx, record.ID, created.ID, sessionID); err != nil {
		return err
	}
	m.logger.Info("Created upstream subscription",
		"key", key.String(),
		"transport", transport,
		"twitch_subscription_id", created.ID,
		"selection_reason", reason)
	return nil
}

// checkTokenScopes verifies the bot token carries the scopes the event type
// needs before the create call goes out, so a missing broadcaster
// authorization surfaces as a precise terminal error instead of an opaque 403
// from Twitch.
func (m *Manager) checkTokenScopes(ctx context.Context, key services.InterestKey, accessToken, transport string) error {
	if len(twitch.RequiredScopeGroups(key.EventType)) == 0 {
		return nil
	}
	info, err := m.deps.Twitch.ValidateUserToken(ctx, accessToken)
	if err != nil {
		// A validate outage must not block the create; Twitch rejects the
		// request itself when scopes are missing.
		m.logger.Warn("Failed to validate bot token scopes", "key", key.String(), "error", err)
		return nil
	}
	if !twitch.HasRequiredScopes(key.EventType, info.Scopes) {
		return m.failKey(ctx, key, CodeMissingScope,
			fmt.Sprintf("bot token lacks a required scope for %s", key.EventType), transport)
	}
	return nil
}

// adoptExisting resolves a 409 on create by finding the upstream row Twitch
// already holds for the key and recording its id.
func (m *Manager) adoptExisting(ctx context.Context, key services.InterestKey, accessToken, sessionID string) error {
	remote, err := m.deps.Twitch.ListEventSubSubscriptions(ctx, accessToken)
	if err != nil {
		return fmt.Errorf("failed to resolve duplicate subscription for %s: %w", key, err)
	}
	for _, sub := range remote {
		if sub.Type == key.EventType && sub.Condition["broadcaster_user_id"] == key.BroadcasterUserID {
			record, err := m.deps.Subs.GetByKey(ctx, key)
			if err != nil {
				return err
			}
			return m.deps.Subs.MarkEnabled(ctx, record.ID, sub.ID, sessionID)
		}
	}
	return m.failKey(ctx, key, CodeCreateFailed, "twitch reported a duplicate subscription that could not be found", "")
}

// failKey marks the subscription row failed and notifies interested services.
func (m *Manager) failKey(ctx context.Context, key services.InterestKey, code, reason, upstreamTransport string) error {
	if record, err := m.deps.Subs.GetByKey(ctx, key); err == nil {
		if err := m.deps.Subs.MarkFailed(ctx, record.ID, reason); err != nil {
			m.logger.Error("Failed to mark subscription failed", "key", key.String(), "error", err)
		}
	}
	m.EmitSubscriptionError(ctx, key, code, reason, upstreamTransport)
	return fmt.Errorf("subscription for %s failed: %s: %s", key, code, reason)
}

// Release deletes the upstream subscription for a key once no interest
// remains. Idempotent; the authorization-revoke system subscription is never
// released.
func (m *Manager) Release(ctx context.Context, key services.InterestKey) error {
	if key.EventType == eventTypeAuthRevoke {
		return nil
	}

	lock := m.lockKey(key)
	lock.Lock()
	defer lock.Unlock()

	remaining, err := m.deps.Interests.ListForKey(ctx, key)
	if err != nil {
		return err
	}
	if len(remaining) > 0 {
		return nil
	}

	record, err := m.deps.Subs.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil
		}
		return err
	}

	accessToken := ""
	if record.Transport == twitchsubscription.TransportWebsocket {
		// Websocket subscriptions are only deletable with the creating bot's
		// user token.
		accessToken, err = m.deps.Bots.FreshUserToken(ctx, key.BotAccountID)
		if err != nil {
			m.logger.Warn("No usable bot token for subscription delete, trying app token",
				"key", key.String(), "error", err)
			accessToken = ""
		}
	}

	if record.TwitchSubscriptionID != nil {
		err := m.deps.Twitch.DeleteEventSubSubscription(ctx, *record.TwitchSubscriptionID, accessToken)
		if err != nil && !twitch.IsNotFound(err) {
			m.logger.Warn("Failed to delete upstream subscription",
				"key", key.String(),
				"twitch_subscription_id", *record.TwitchSubscriptionID,
				"error", err)
		}
	}

	if _, err := m.deps.Subs.DeleteByKey(ctx, key); err != nil && !errors.Is(err, services.ErrNotFound) {
		return err
	}
	m.logger.Info("Released upstream subscription", "key", key.String())
	return nil
}

// HandleSessionWelcome records the new websocket session id and re-ensures
// every websocket-bound subscription under it. Called on every
// session_welcome, including after reconnects and session_reconnect
// handovers.
func (m *Manager) HandleSessionWelcome(ctx context.Context, sessionID string) {
	m.sessionMu.Lock()
	previous := m.sessionID
	m.sessionID = sessionID
	m.sessionMu.Unlock()

	if previous == sessionID {
		return
	}

	rows, err := m.deps.Subs.ListWebsocketBound(ctx)
	if err != nil {
		m.logger.Error("Failed to list websocket subscriptions after welcome", "error", err)
		return
	}
	for _, row := range rows {
		key := services.KeyOf(row)
		if err := m.Ensure(ctx, key); err != nil {
			m.logger.Warn("Failed to re-ensure subscription after session rotation",
				"key", key.String(), "error", err)
		}
	}
}

// HandleRevocation marks the local row revoked and tells interested services.
func (m *Manager) HandleRevocation(ctx context.Context, twitchSubscriptionID, status string) {
	record, err := m.deps.Subs.GetByTwitchID(ctx, twitchSubscriptionID)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			m.logger.Error("Failed to look up revoked subscription",
				"twitch_subscription_id", twitchSubscriptionID, "error", err)
		}
		return
	}
	if err := m.deps.Subs.MarkRevokedByTwitchID(ctx, twitchSubscriptionID, status); err != nil {
		m.logger.Error("Failed to mark subscription revoked",
			"twitch_subscription_id", twitchSubscriptionID, "error", err)
	}

	key := services.KeyOf(record)
	m.logger.Warn("Upstream subscription revoked",
		"key", key.String(),
		"twitch_subscription_id", twitchSubscriptionID,
		"status", status)
	m.EmitSubscriptionError(ctx, key, CodeRevoked, status, string(record.Transport))
}

// notificationActor is the slice of an event body the bridge itself acts on.
type notificationActor struct {
	BroadcasterUserID string `json:"broadcaster_user_id"`
	UserID            string `json:"user_id"`
}

// HandleNotification receives notifications from the upstream websocket
// session, deduplicating message ids before routing. The webhook ingress
// dedupes on its own side of the shared window and calls Route directly.
func (m *Manager) HandleNotification(ctx context.Context, n Notification) {
	if m.deps.Dedupe.Seen(n.MessageID) {
		m.logger.Debug("Dropping duplicate notification", "message_id", n.MessageID)
		return
	}
	m.Route(ctx, n)
}

// Route fans an upstream notification out to every interested service,
// applying side effects (channel liveness, authorization revokes) and chat
// asset enrichment on the way. Callers are expected to have deduplicated the
// message id already.
func (m *Manager) Route(ctx context.Context, n Notification) {
	var actor notificationActor
	if len(n.Event) > 0 {
		if err := json.Unmarshal(n.Event, &actor); err != nil {
			m.logger.Debug("Notification event body not an object", "type", n.EventType)
		}
	}

	switch n.EventType {
	case "stream.online", "stream.offline":
		if actor.BroadcasterUserID != "" {
			if err := m.deps.Channels.ApplyStreamEvent(ctx, n.EventType, actor.BroadcasterUserID); err != nil {
				m.logger.Warn("Failed to update channel state", "error", err)
			}
		}
	case eventTypeAuthRevoke:
		if actor.UserID != "" {
			if err := m.deps.Bots.DisableOnRevoke(ctx, actor.UserID); err != nil {
				m.logger.Error("Failed to disable bot after revoke", "twitch_user_id", actor.UserID, "error", err)
			}
		}
	}

	key, ok := m.resolveKey(ctx, n)
	if !ok {
		m.logger.Debug("No interest for notification",
			"type", n.EventType,
			"subscription_id", n.SubscriptionID)
		return
	}

	env := events.NewEnvelope(n.MessageID, n.EventType, n.EventTimestamp, n.Event)
	if twitch.IsChatEventType(n.EventType) && m.deps.Assets != nil {
		env.TwitchChatAssets = m.deps.Assets.EnrichChatEvent(ctx, key.BroadcasterUserID, n.Event)
	}

	targets, err := m.targetsForKey(ctx, key)
	if err != nil {
		m.logger.Error("Failed to load delivery targets", "key", key.String(), "error", err)
		return
	}
	if len(targets) == 0 {
		return
	}
	m.deps.Hub.Deliver(ctx, env, targets)
}

// resolveKey maps a notification to its interest key, preferring the recorded
// subscription id and falling back to condition matching for legacy rows.
func (m *Manager) resolveKey(ctx context.Context, n Notification) (services.InterestKey, bool) {
	if n.SubscriptionID != "" {
		if record, err := m.deps.Subs.GetByTwitchID(ctx, n.SubscriptionID); err == nil {
			return services.KeyOf(record), true
		}
	}

	broadcaster := n.Condition["broadcaster_user_id"]
	if broadcaster == "" {
		var actor notificationActor
		_ = json.Unmarshal(n.Event, &actor)
		broadcaster = actor.BroadcasterUserID
	}
	if broadcaster == "" {
		return services.InterestKey{}, false
	}

	// Chat conditions carry the bot's user id, which pins the key exactly.
	if twitch.IsChatEventType(n.EventType) {
		if botUserID := n.Condition["user_id"]; botUserID != "" {
			if bot, err := m.deps.Bots.GetBotByTwitchUserID(ctx, botUserID); err == nil {
				return services.InterestKey{
					BotAccountID:      bot.ID,
					EventType:         n.EventType,
					BroadcasterUserID: broadcaster,
				}, true
			}
		}
	}

	keys, err := m.deps.Interests.Keys(ctx)
	if err != nil {
		m.logger.Error("Failed to list interest keys", "error", err)
		return services.InterestKey{}, false
	}
	for _, key := range keys {
		if key.EventType == n.EventType && key.BroadcasterUserID == broadcaster {
			return key, true
		}
	}
	return services.InterestKey{}, false
}

func (m *Manager) targetsForKey(ctx context.Context, key services.InterestKey) ([]events.DeliveryTarget, error) {
	rows, err := m.deps.Interests.ListForKey(ctx, key)
	if err != nil {
		return nil, err
	}
	targets := make([]events.DeliveryTarget, 0, len(rows))
	for _, row := range rows {
		targets = append(targets, events.DeliveryTarget{
			ServiceAccountID: row.ServiceAccountID,
			Transport:        string(row.Transport),
			WebhookURL:       row.WebhookURL,
		})
	}
	return targets, nil
}

// EmitSubscriptionError synthesizes a subscription.error envelope for every
// service interested in the key, rate-limited per (service, key, code).
func (m *Manager) EmitSubscriptionError(ctx context.Context, key services.InterestKey, code, reason, upstreamTransport string) {
	rows, err := m.deps.Interests.ListForKey(ctx, key)
	if err != nil {
		m.logger.Error("Failed to load interests for error emission", "key", key.String(), "error", err)
		return
	}
	for _, row := range rows {
		if !m.cooldown.Allow(row.ServiceAccountID, key, code) {
			continue
		}
		env := events.NewSubscriptionErrorEnvelope(events.SubscriptionError{
			ErrorCode:         code,
			Reason:            reason,
			Hint:              ErrorHint(code),
			EventType:         key.EventType,
			BroadcasterUserID: key.BroadcasterUserID,
			BotAccountID:      key.BotAccountID.String(),
			UpstreamTransport: upstreamTransport,
		})
		m.deps.Hub.Deliver(ctx, env, []events.DeliveryTarget{{
			ServiceAccountID: row.ServiceAccountID,
			Transport:        string(row.Transport),
			WebhookURL:       row.WebhookURL,
		}})
	}
}

// remoteSub pairs a Twitch-side subscription with the token that can see and
// delete it.
type remoteSub struct {
	sub   twitch.Subscription
	token string
}

// ReconcileStartup aligns local state with Twitch at boot: adopt matching
// upstream rows, delete orphans, create what is missing, install the
// authorization-revoke guard and refresh channel liveness.
func (m *Manager) ReconcileStartup(ctx context.Context) error {
	keys, err := m.deps.Interests.Keys(ctx)
	if err != nil {
		return fmt.Errorf("failed to load interest keys: %w", err)
	}

	remote, err := m.listAllUpstream(ctx)
	if err != nil {
		return err
	}

	if err := m.deps.Subs.DeleteAll(ctx); err != nil {
		return err
	}

	wanted := make(map[string][]services.InterestKey)
	for _, key := range keys {
		composite := key.EventType + "|" + key.BroadcasterUserID
		wanted[composite] = append(wanted[composite], key)
	}

	// Group remote rows by (type, broadcaster) to rank duplicates.
	grouped := make(map[string][]remoteSub)
	var system []remoteSub
	for _, r := range remote {
		if m.isRevokeGuard(r.sub) {
			system = append(system, r)
			continue
		}
		composite := r.sub.Type + "|" + r.sub.Condition["broadcaster_user_id"]
		grouped[composite] = append(grouped[composite], r)
	}

	adopted := make(map[string]bool)
	for composite, group := range grouped {
		sortRemoteSubs(group)
		keep := group[0]
		for _, extra := range group[1:] {
			m.deleteRemote(ctx, extra)
		}

		matches, isWanted := wanted[composite]
		if !isWanted {
			m.deleteRemote(ctx, keep)
			continue
		}
		// Websocket rows from dead sessions cannot be adopted; a fresh
		// ensure recreates them under the next session.
		if keep.sub.Transport.Method == "websocket" || keep.sub.Status != "enabled" {
			m.deleteRemote(ctx, keep)
			continue
		}
		for _, key := range matches {
			if _, err := m.deps.Subs.Insert(ctx, key, keep.sub.Transport.Method, keep.sub.ID, "enabled", ""); err != nil {
				m.logger.Error("Failed to adopt upstream subscription", "key", key.String(), "error", err)
				continue
			}
			adopted[key.String()] = true
			m.logger.Info("Adopted upstream subscription",
				"key", key.String(),
				"twitch_subscription_id", keep.sub.ID)
		}
	}

	for _, key := range keys {
		if adopted[key.String()] {
			continue
		}
		if err := m.Ensure(ctx, key); err != nil {
			m.logger.Warn("Failed to ensure subscription at startup", "key", key.String(), "error", err)
		}
	}

	if err := m.ensureRevokeGuard(ctx, system); err != nil {
		m.logger.Error("Failed to install authorization-revoke guard", "error", err)
	}

	broadcasters := make([]string, 0, len(wanted))
	seen := make(map[string]bool)
	for _, key := range keys {
		if !seen[key.BroadcasterUserID] {
			seen[key.BroadcasterUserID] = true
			broadcasters = append(broadcasters, key.BroadcasterUserID)
		}
	}
	if err := m.deps.Channels.RefreshFromHelix(ctx, broadcasters); err != nil {
		m.logger.Warn("Failed to refresh channel liveness at startup", "error", err)
	}
	return nil
}

// listAllUpstream lists subscriptions visible to the app token and to every
// enabled bot's user token, deduplicated by subscription id.
func (m *Manager) listAllUpstream(ctx context.Context) ([]remoteSub, error) {
	var out []remoteSub
	seen := make(map[string]bool)

	appSubs, err := m.deps.Twitch.ListEventSubSubscriptions(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions under app token: %w", err)
	}
	for _, sub := range appSubs {
		seen[sub.ID] = true
		out = append(out, remoteSub{sub: sub})
	}

	bots, err := m.deps.Bots.ListEnabledBots(ctx)
	if err != nil {
		return nil, err
	}
	for _, bot := range bots {
		token, err := m.deps.Bots.FreshUserToken(ctx, bot.ID)
		if err != nil {
			m.logger.Warn("Skipping bot during reconcile, no usable token",
				"twitch_user_id", bot.TwitchUserID, "error", err)
			continue
		}
		botSubs, err := m.deps.Twitch.ListEventSubSubscriptions(ctx, token)
		if err != nil {
			m.logger.Warn("Failed to list subscriptions under bot token",
				"twitch_user_id", bot.TwitchUserID, "error", err)
			continue
		}
		for _, sub := range botSubs {
			if seen[sub.ID] {
				continue
			}
			seen[sub.ID] = true
			out = append(out, remoteSub{sub: sub, token: token})
		}
	}
	return out, nil
}

func (m *Manager) isRevokeGuard(sub twitch.Subscription) bool {
	return sub.Type == eventTypeAuthRevoke &&
		sub.Transport.Method == "webhook" &&
		sub.Transport.Callback == m.cfg.CallbackURL
}

// ensureRevokeGuard keeps the permanent user.authorization.revoke system
// subscription in place when webhook transport is available.
func (m *Manager) ensureRevokeGuard(ctx context.Context, existing []remoteSub) error {
	if !m.webhookAvailable() {
		return nil
	}
	for _, r := range existing {
		if r.sub.Status == "enabled" || r.sub.Status == "webhook_callback_verification_pending" {
			return nil
		}
		m.deleteRemote(ctx, r)
	}

	_, err := m.deps.Twitch.CreateEventSubSubscription(ctx, twitch.CreateSubscriptionRequest{
		Type:      eventTypeAuthRevoke,
		Version:   twitch.PreferredVersion(eventTypeAuthRevoke),
		Condition: map[string]string{"client_id": m.cfg.ClientID},
		Transport: twitch.SubscriptionTransport{
			Method:   "webhook",
			Callback: m.cfg.CallbackURL,
			Secret:   m.cfg.WebhookSecret,
		},
	}, "")
	if err != nil && !twitch.IsConflict(err) {
		return err
	}
	m.logger.Info("Installed authorization-revoke system subscription")
	return nil
}

func (m *Manager) deleteRemote(ctx context.Context, r remoteSub) {
	err := m.deps.Twitch.DeleteEventSubSubscription(ctx, r.sub.ID, r.token)
	if err != nil && !twitch.IsNotFound(err) {
		m.logger.Warn("Failed to delete orphaned upstream subscription",
			"twitch_subscription_id", r.sub.ID,
			"type", r.sub.Type,
			"error", err)
		return
	}
	m.logger.Info("Deleted orphaned upstream subscription",
		"twitch_subscription_id", r.sub.ID,
		"type", r.sub.Type)
}

// sortRemoteSubs ranks duplicates: enabled first, then most recently
// connected, then lexical id for determinism.
func sortRemoteSubs(group []remoteSub) {
	sort.Slice(group, func(i, j int) bool {
		a, b := group[i].sub, group[j].sub
		if (a.Status == "enabled") != (b.Status == "enabled") {
			return a.Status == "enabled"
		}
		if a.Transport.ConnectedAt != b.Transport.ConnectedAt {
			return a.Transport.ConnectedAt > b.Transport.ConnectedAt
		}
		return a.ID < b.ID
	})
}
