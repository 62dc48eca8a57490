package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/streamgate/streamgate/ent"
	"github.com/streamgate/streamgate/ent/twitchsubscription"
)

// SubscriptionService manages the persistent mirror of upstream Twitch
// EventSub subscriptions. At most one row exists per interest key.
type SubscriptionService struct {
	client *ent.Client
}

// NewSubscriptionService creates a new SubscriptionService
func NewSubscriptionService(client *ent.Client) *SubscriptionService {
	return &SubscriptionService{client: client}
}

// GetByKey retrieves the subscription row for a key.
func (s *SubscriptionService) GetByKey(ctx context.Context, key InterestKey) (*ent.TwitchSubscription, error) {
	sub, err := s.client.TwitchSubscription.Query().
		Where(
			twitchsubscription.BotAccountIDEQ(key.BotAccountID),
			twitchsubscription.EventTypeEQ(key.EventType),
			twitchsubscription.BroadcasterUserIDEQ(key.BroadcasterUserID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return sub, nil
}

// GetByTwitchID retrieves the subscription row carrying a Twitch-assigned id.
func (s *SubscriptionService) GetByTwitchID(ctx context.Context, twitchSubscriptionID string) (*ent.TwitchSubscription, error) {
	sub, err := s.client.TwitchSubscription.Query().
		Where(twitchsubscription.TwitchSubscriptionIDEQ(twitchSubscriptionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get subscription by twitch id: %w", err)
	}
	return sub, nil
}

// EnsurePending creates the row for a key in status pending, or resets an
// existing row to pending under the given transport. Insert races on the
// unique key resolve to the surviving row.
func (s *SubscriptionService) EnsurePending(httpCtx context.Context, key InterestKey, transport string) (*ent.TwitchSubscription, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tr := twitchsubscription.Transport(transport)
	if err := twitchsubscription.TransportValidator(tr); err != nil {
		return nil, NewValidationError("transport", err.Error())
	}

	existing, err := s.client.TwitchSubscription.Query().
		Where(
			twitchsubscription.BotAccountIDEQ(key.BotAccountID),
			twitchsubscription.EventTypeEQ(key.EventType),
			twitchsubscription.BroadcasterUserIDEQ(key.BroadcasterUserID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query subscription: %w", err)
	}
	if existing != nil {
		sub, err := existing.Update().
			SetTransport(tr).
			SetStatus(twitchsubscription.StatusPending).
			ClearTwitchSubscriptionID().
			ClearSessionID().
			ClearLastError().
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to reset subscription to pending: %w", err)
		}
		return sub, nil
	}

	sub, err := s.client.TwitchSubscription.Create().
		SetBotAccountID(key.BotAccountID).
		SetEventType(key.EventType).
		SetBroadcasterUserID(key.BroadcasterUserID).
		SetTransport(tr).
		Save(ctx)
	if err == nil {
		return sub, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	raced, err := s.client.TwitchSubscription.Query().
		Where(
			twitchsubscription.BotAccountIDEQ(key.BotAccountID),
			twitchsubscription.EventTypeEQ(key.EventType),
			twitchsubscription.BroadcasterUserIDEQ(key.BroadcasterUserID),
		).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read subscription after conflict: %w", err)
	}
	return raced, nil
}

// MarkEnabled records a successful upstream creation.
func (s *SubscriptionService) MarkEnabled(httpCtx context.Context, id uuid.UUID, twitchSubscriptionID, sessionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.TwitchSubscription.UpdateOneID(id).
		SetStatus(twitchsubscription.StatusEnabled).
		SetTwitchSubscriptionID(twitchSubscriptionID).
		ClearLastError()
	if sessionID != "" {
		update.SetSessionID(sessionID)
	} else {
		update.ClearSessionID()
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark subscription enabled: %w", err)
	}
	return nil
}

// MarkFailed records a terminal upstream creation failure.
func (s *SubscriptionService) MarkFailed(httpCtx context.Context, id uuid.UUID, reason string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.TwitchSubscription.UpdateOneID(id).
		SetStatus(twitchsubscription.StatusFailed).
		SetLastError(reason).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark subscription failed: %w", err)
	}
	return nil
}

// MarkRevokedByTwitchID flags the row for a Twitch subscription id as
// revoked. Unknown ids are a no-op.
func (s *SubscriptionService) MarkRevokedByTwitchID(httpCtx context.Context, twitchSubscriptionID, reason string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.TwitchSubscription.Update().
		Where(twitchsubscription.TwitchSubscriptionIDEQ(twitchSubscriptionID)).
		SetStatus(twitchsubscription.StatusRevoked).
		SetLastError(reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark subscription revoked: %w", err)
	}
	return nil
}

// DeleteByKey removes the row for a key, returning the Twitch subscription
// id it carried (empty if none).
func (s *SubscriptionService) DeleteByKey(httpCtx context.Context, key InterestKey) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sub, err := s.GetByKey(ctx, key)
	if err != nil {
		return "", err
	}
	twitchID := ""
	if sub.TwitchSubscriptionID != nil {
		twitchID = *sub.TwitchSubscriptionID
	}
	if err := s.client.TwitchSubscription.DeleteOne(sub).Exec(ctx); err != nil && !ent.IsNotFound(err) {
		return "", fmt.Errorf("failed to delete subscription: %w", err)
	}
	return twitchID, nil
}

// DeleteAll clears the mirror. Used before a full resync from Twitch.
func (s *SubscriptionService) DeleteAll(httpCtx context.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := s.client.TwitchSubscription.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear subscriptions: %w", err)
	}
	return nil
}

// Insert records a subscription row observed at Twitch during resync.
func (s *SubscriptionService) Insert(httpCtx context.Context, key InterestKey, transport, twitchSubscriptionID, status, sessionID string) (*ent.TwitchSubscription, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	st := twitchsubscription.StatusPending
	switch status {
	case "enabled":
		st = twitchsubscription.StatusEnabled
	case "failed":
		st = twitchsubscription.StatusFailed
	case "revoked":
		st = twitchsubscription.StatusRevoked
	}

	create := s.client.TwitchSubscription.Create().
		SetBotAccountID(key.BotAccountID).
		SetEventType(key.EventType).
		SetBroadcasterUserID(key.BroadcasterUserID).
		SetTransport(twitchsubscription.Transport(transport)).
		SetTwitchSubscriptionID(twitchSubscriptionID).
		SetStatus(st)
	if sessionID != "" {
		create.SetSessionID(sessionID)
	}
	sub, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert subscription: %w", err)
	}
	return sub, nil
}

// ListAll returns every subscription row.
func (s *SubscriptionService) ListAll(ctx context.Context) ([]*ent.TwitchSubscription, error) {
	subs, err := s.client.TwitchSubscription.Query().
		Order(ent.Asc(twitchsubscription.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}

// ListEnabledByKeys returns the keys among the given set that currently hold
// an enabled upstream subscription.
func (s *SubscriptionService) ListEnabledByKeys(ctx context.Context, keys []InterestKey) (map[InterestKey]*ent.TwitchSubscription, error) {
	subs, err := s.client.TwitchSubscription.Query().
		Where(twitchsubscription.StatusEQ(twitchsubscription.StatusEnabled)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled subscriptions: %w", err)
	}
	want := make(map[InterestKey]struct{}, len(keys))
	for _, key := range keys {
		want[key] = struct{}{}
	}
	out := make(map[InterestKey]*ent.TwitchSubscription)
	for _, sub := range subs {
		key := InterestKey{
			BotAccountID:      sub.BotAccountID,
			EventType:         sub.EventType,
			BroadcasterUserID: sub.BroadcasterUserID,
		}
		if _, ok := want[key]; ok {
			out[key] = sub
		}
	}
	return out, nil
}

// ListWebsocketBound returns WS-transport rows in enabled or pending status.
// Used during session rotation to find rows needing re-creation.
func (s *SubscriptionService) ListWebsocketBound(ctx context.Context) ([]*ent.TwitchSubscription, error) {
	subs, err := s.client.TwitchSubscription.Query().
		Where(
			twitchsubscription.TransportEQ(twitchsubscription.TransportWebsocket),
			twitchsubscription.StatusIn(twitchsubscription.StatusEnabled, twitchsubscription.StatusPending),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list websocket subscriptions: %w", err)
	}
	return subs, nil
}

// KeyOf returns the interest key of a subscription row.
func KeyOf(sub *ent.TwitchSubscription) InterestKey {
	return InterestKey{
		BotAccountID:      sub.BotAccountID,
		EventType:         sub.EventType,
		BroadcasterUserID: sub.BroadcasterUserID,
	}
}
