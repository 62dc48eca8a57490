package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/streamgate/streamgate/ent"
	"github.com/streamgate/streamgate/ent/botaccount"
	"github.com/streamgate/streamgate/ent/serviceinterest"
	"github.com/streamgate/streamgate/ent/twitchsubscription"
	"github.com/streamgate/streamgate/pkg/twitch"
)

// InterestKey is the fan-in dimension: every interest sharing a key shares
// one upstream Twitch subscription.
type InterestKey struct {
	BotAccountID      uuid.UUID
	EventType         string
	BroadcasterUserID string
}

func (k InterestKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.BotAccountID, k.EventType, k.BroadcasterUserID)
}

// companionEventTypes are auto-registered alongside every interest so
// consumers always learn about stream liveness for channels they watch.
var companionEventTypes = []string{"stream.online", "stream.offline"}

// InterestService manages the persistent interest registry.
type InterestService struct {
	client *ent.Client
	twitch *twitch.Client
}

// NewInterestService creates a new InterestService
func NewInterestService(client *ent.Client, twitchClient *twitch.Client) *InterestService {
	return &InterestService{client: client, twitch: twitchClient}
}

// UpsertResult describes the outcome of an interest upsert.
type UpsertResult struct {
	Interest *ent.ServiceInterest
	Created  bool
	// Companions are the auto-created stream.online/stream.offline interests,
	// nil when they already existed.
	Companions []*ent.ServiceInterest
}

// Upsert registers an interest, normalizing the broadcaster reference and
// auto-creating companion liveness interests. Re-registering an identical
// tuple touches the heartbeat and returns the existing row.
func (s *InterestService) Upsert(httpCtx context.Context, serviceAccountID, botAccountID uuid.UUID, eventType, broadcaster, transport, webhookURL string) (*UpsertResult, error) {
	eventType = strings.TrimSpace(eventType)
	if !twitch.IsKnownEventType(eventType) {
		return nil, NewValidationError("event_type", fmt.Sprintf("unknown event type %q", eventType))
	}
	var tr serviceinterest.Transport
	switch transport {
	case "", "websocket":
		tr = serviceinterest.TransportWebsocket
		webhookURL = ""
	case "webhook":
		tr = serviceinterest.TransportWebhook
		if strings.TrimSpace(webhookURL) == "" {
			return nil, NewValidationError("webhook_url", "required when transport is webhook")
		}
	default:
		return nil, NewValidationError("transport", "must be websocket or webhook")
	}

	broadcasterID, err := s.ResolveBroadcaster(httpCtx, broadcaster)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := s.client.BotAccount.Query().
		Where(botaccount.IDEQ(botAccountID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check bot account: %w", err)
	}
	if !exists {
		return nil, NewValidationError("bot_account_id", "unknown bot account")
	}

	interest, created, err := s.upsertRow(ctx, serviceAccountID, botAccountID, eventType, broadcasterID, tr, webhookURL)
	if err != nil {
		return nil, err
	}

	result := &UpsertResult{Interest: interest, Created: created}
	for _, companionType := range companionEventTypes {
		if companionType == eventType {
			continue
		}
		companion, companionCreated, err := s.upsertRow(ctx, serviceAccountID, botAccountID, companionType, broadcasterID, serviceinterest.TransportWebsocket, "")
		if err != nil {
			return nil, fmt.Errorf("failed to ensure companion interest %s: %w", companionType, err)
		}
		if companionCreated {
			result.Companions = append(result.Companions, companion)
		}
	}
	return result, nil
}

// upsertRow inserts one interest row, resolving unique-tuple races by
// re-reading and touching the heartbeat of the surviving row.
func (s *InterestService) upsertRow(ctx context.Context, serviceAccountID, botAccountID uuid.UUID, eventType, broadcasterID string, transport serviceinterest.Transport, webhookURL string) (*ent.ServiceInterest, bool, error) {
	existing, err := s.client.ServiceInterest.Query().
		Where(
			serviceinterest.ServiceAccountIDEQ(serviceAccountID),
			serviceinterest.BotAccountIDEQ(botAccountID),
			serviceinterest.EventTypeEQ(eventType),
			serviceinterest.BroadcasterUserIDEQ(broadcasterID),
			serviceinterest.TransportEQ(transport),
			serviceinterest.WebhookURLEQ(webhookURL),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to query interest: %w", err)
	}
	if existing != nil {
		touched, err := existing.Update().
			SetLastHeartbeatAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, false, fmt.Errorf("failed to touch interest: %w", err)
		}
		return touched, false, nil
	}

	interest, err := s.client.ServiceInterest.Create().
		SetServiceAccountID(serviceAccountID).
		SetBotAccountID(botAccountID).
		SetEventType(eventType).
		SetBroadcasterUserID(broadcasterID).
		SetTransport(transport).
		SetWebhookURL(webhookURL).
		Save(ctx)
	if err == nil {
		return interest, true, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, false, fmt.Errorf("failed to create interest: %w", err)
	}

	// Lost the insert race: the unique tuple now exists, re-read it.
	raced, err := s.client.ServiceInterest.Query().
		Where(
			serviceinterest.ServiceAccountIDEQ(serviceAccountID),
			serviceinterest.BotAccountIDEQ(botAccountID),
			serviceinterest.EventTypeEQ(eventType),
			serviceinterest.BroadcasterUserIDEQ(broadcasterID),
			serviceinterest.TransportEQ(transport),
			serviceinterest.WebhookURLEQ(webhookURL),
		).
		Only(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to re-read interest after conflict: %w", err)
	}
	return raced, false, nil
}

// Delete removes one interest owned by the calling service. lastForKey
// reports whether the key has no remaining interests across all services,
// signalling the caller to tear down the upstream subscription.
func (s *InterestService) Delete(httpCtx context.Context, serviceAccountID, interestID uuid.UUID) (InterestKey, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	interest, err := s.client.ServiceInterest.Query().
		Where(
			serviceinterest.IDEQ(interestID),
			serviceinterest.ServiceAccountIDEQ(serviceAccountID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return InterestKey{}, false, ErrNotFound
		}
		return InterestKey{}, false, fmt.Errorf("failed to look up interest: %w", err)
	}

	key := keyOf(interest)
	if err := s.client.ServiceInterest.DeleteOne(interest).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return InterestKey{}, false, ErrNotFound
		}
		return InterestKey{}, false, fmt.Errorf("failed to delete interest: %w", err)
	}

	remaining, err := s.countForKey(ctx, key)
	if err != nil {
		return InterestKey{}, false, err
	}
	return key, remaining == 0, nil
}

// Heartbeat touches every interest sharing (service, bot, broadcaster) with
// the target. Keeping one interest of a cluster alive keeps the whole
// cluster alive, companions included.
func (s *InterestService) Heartbeat(httpCtx context.Context, serviceAccountID, interestID uuid.UUID) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	interest, err := s.client.ServiceInterest.Query().
		Where(
			serviceinterest.IDEQ(interestID),
			serviceinterest.ServiceAccountIDEQ(serviceAccountID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to look up interest: %w", err)
	}

	n, err := s.client.ServiceInterest.Update().
		Where(
			serviceinterest.ServiceAccountIDEQ(serviceAccountID),
			serviceinterest.BotAccountIDEQ(interest.BotAccountID),
			serviceinterest.BroadcasterUserIDEQ(interest.BroadcasterUserID),
		).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to heartbeat interests: %w", err)
	}
	return n, nil
}

// ListByService returns all interests owned by a service.
func (s *InterestService) ListByService(ctx context.Context, serviceAccountID uuid.UUID) ([]*ent.ServiceInterest, error) {
	interests, err := s.client.ServiceInterest.Query().
		Where(serviceinterest.ServiceAccountIDEQ(serviceAccountID)).
		Order(ent.Asc(serviceinterest.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list interests: %w", err)
	}
	return interests, nil
}

// ListForKey returns every interest (across services) matching a key.
func (s *InterestService) ListForKey(ctx context.Context, key InterestKey) ([]*ent.ServiceInterest, error) {
	interests, err := s.client.ServiceInterest.Query().
		Where(
			serviceinterest.BotAccountIDEQ(key.BotAccountID),
			serviceinterest.EventTypeEQ(key.EventType),
			serviceinterest.BroadcasterUserIDEQ(key.BroadcasterUserID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list interests for key: %w", err)
	}
	return interests, nil
}

// Keys returns the distinct interest keys currently registered.
func (s *InterestService) Keys(ctx context.Context) ([]InterestKey, error) {
	interests, err := s.client.ServiceInterest.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list interests: %w", err)
	}
	seen := make(map[InterestKey]struct{}, len(interests))
	keys := make([]InterestKey, 0, len(interests))
	for _, interest := range interests {
		key := keyOf(interest)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys, nil
}

// PruneStale deletes interests without a heartbeat for ttl and returns the
// keys left with zero remaining interests.
func (s *InterestService) PruneStale(httpCtx context.Context, ttl time.Duration) ([]InterestKey, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-ttl)
	stale, err := s.client.ServiceInterest.Query().
		Where(serviceinterest.LastHeartbeatAtLT(cutoff)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query stale interests: %w", err)
	}
	if len(stale) == 0 {
		return nil, 0, nil
	}

	affected := make(map[InterestKey]struct{})
	ids := make([]uuid.UUID, 0, len(stale))
	for _, interest := range stale {
		affected[keyOf(interest)] = struct{}{}
		ids = append(ids, interest.ID)
	}

	removed, err := s.client.ServiceInterest.Delete().
		Where(serviceinterest.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to delete stale interests: %w", err)
	}

	var orphaned []InterestKey
	for key := range affected {
		remaining, err := s.countForKey(ctx, key)
		if err != nil {
			return nil, removed, err
		}
		if remaining == 0 {
			orphaned = append(orphaned, key)
		}
	}
	return orphaned, removed, nil
}

// ResolveBroadcaster normalizes a broadcaster reference (numeric id, login,
// or channel URL) to the numeric Twitch user id, migrating any legacy rows
// recorded under the login.
func (s *InterestService) ResolveBroadcaster(ctx context.Context, raw string) (string, error) {
	ref := strings.TrimSpace(raw)
	if ref == "" {
		return "", NewValidationError("broadcaster_user_id", "must not be empty")
	}
	if isNumeric(ref) {
		return ref, nil
	}

	login := strings.ToLower(ref)
	if idx := strings.Index(login, "twitch.tv/"); idx >= 0 {
		login = strings.Trim(login[idx+len("twitch.tv/"):], "/")
		if slash := strings.IndexByte(login, '/'); slash >= 0 {
			login = login[:slash]
		}
	}
	if login == "" {
		return "", NewValidationError("broadcaster_user_id", "could not extract login from channel URL")
	}

	users, err := s.twitch.GetUsersByLogin(ctx, []string{login})
	if err != nil {
		return "", fmt.Errorf("failed to resolve broadcaster login %q: %w", login, err)
	}
	if len(users) == 0 {
		return "", NewValidationError("broadcaster_user_id", fmt.Sprintf("unknown Twitch login %q", login))
	}
	resolved := users[0].ID

	if err := s.migrateLegacyBroadcaster(ctx, login, resolved); err != nil {
		slog.Warn("Failed to migrate legacy broadcaster rows", "login", login, "user_id", resolved, "error", err)
	}
	return resolved, nil
}

// migrateLegacyBroadcaster rewrites rows persisted under a login to the
// numeric id. A rewrite that collides with an existing id-keyed row means
// the legacy row is a duplicate and is dropped.
func (s *InterestService) migrateLegacyBroadcaster(httpCtx context.Context, login, userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	legacy, err := s.client.ServiceInterest.Query().
		Where(serviceinterest.BroadcasterUserIDEQ(login)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query legacy interests: %w", err)
	}
	for _, interest := range legacy {
		err := interest.Update().
			SetBroadcasterUserID(userID).
			Exec(ctx)
		if err == nil {
			continue
		}
		if !ent.IsConstraintError(err) {
			return fmt.Errorf("failed to migrate interest %s: %w", interest.ID, err)
		}
		if err := s.client.ServiceInterest.DeleteOne(interest).Exec(ctx); err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to drop duplicate legacy interest %s: %w", interest.ID, err)
		}
	}

	legacySubs, err := s.client.TwitchSubscription.Query().
		Where(twitchsubscription.BroadcasterUserIDEQ(login)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query legacy subscriptions: %w", err)
	}
	for _, sub := range legacySubs {
		err := sub.Update().
			SetBroadcasterUserID(userID).
			Exec(ctx)
		if err == nil {
			continue
		}
		if !ent.IsConstraintError(err) {
			return fmt.Errorf("failed to migrate subscription %s: %w", sub.ID, err)
		}
		if err := s.client.TwitchSubscription.DeleteOne(sub).Exec(ctx); err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to drop duplicate legacy subscription %s: %w", sub.ID, err)
		}
	}
	if len(legacy) > 0 || len(legacySubs) > 0 {
		slog.Info("Migrated legacy broadcaster rows",
			"login", login,
			"user_id", userID,
			"interests", len(legacy),
			"subscriptions", len(legacySubs))
	}
	return nil
}

func (s *InterestService) countForKey(ctx context.Context, key InterestKey) (int, error) {
	n, err := s.client.ServiceInterest.Query().
		Where(
			serviceinterest.BotAccountIDEQ(key.BotAccountID),
			serviceinterest.EventTypeEQ(key.EventType),
			serviceinterest.BroadcasterUserIDEQ(key.BroadcasterUserID),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count interests for key: %w", err)
	}
	return n, nil
}

func keyOf(interest *ent.ServiceInterest) InterestKey {
	return InterestKey{
		BotAccountID:      interest.BotAccountID,
		EventType:         interest.EventType,
		BroadcasterUserID: interest.BroadcasterUserID,
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
