package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/streamgate/streamgate/ent"
	"github.com/streamgate/streamgate/ent/channelstate"
	"github.com/streamgate/streamgate/pkg/twitch"
)

// helixStreamsChunk is the maximum user_id count per Get Streams request.
const helixStreamsChunk = 100

// ChannelService maintains the cached liveness state of broadcaster
// channels.
type ChannelService struct {
	client *ent.Client
	twitch *twitch.Client
}

// NewChannelService creates a new ChannelService
func NewChannelService(client *ent.Client, twitchClient *twitch.Client) *ChannelService {
	return &ChannelService{client: client, twitch: twitchClient}
}

// GetState retrieves the cached state for a broadcaster.
func (s *ChannelService) GetState(ctx context.Context, broadcasterUserID string) (*ent.ChannelState, error) {
	state, err := s.client.ChannelState.Query().
		Where(channelstate.BroadcasterUserIDEQ(broadcasterUserID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get channel state: %w", err)
	}
	return state, nil
}

// ApplyStreamEvent updates liveness from a stream.online or stream.offline
// notification. Other event types are ignored.
func (s *ChannelService) ApplyStreamEvent(httpCtx context.Context, eventType, broadcasterUserID string) error {
	var live bool
	switch eventType {
	case "stream.online":
		live = true
	case "stream.offline":
		live = false
	default:
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.setLive(ctx, broadcasterUserID, live)
}

// RefreshFromHelix reconciles cached liveness against Twitch's Get Streams
// for the given broadcasters, querying with the app token in chunks.
func (s *ChannelService) RefreshFromHelix(ctx context.Context, broadcasterUserIDs []string) error {
	if len(broadcasterUserIDs) == 0 {
		return nil
	}

	live := make(map[string]bool, len(broadcasterUserIDs))
	for start := 0; start < len(broadcasterUserIDs); start += helixStreamsChunk {
		end := min(start+helixStreamsChunk, len(broadcasterUserIDs))
		streams, err := s.twitch.GetStreams(ctx, broadcasterUserIDs[start:end])
		if err != nil {
			return fmt.Errorf("failed to query streams: %w", err)
		}
		for _, stream := range streams {
			live[stream.UserID] = true
		}
	}

	for _, broadcasterID := range broadcasterUserIDs {
		if err := s.setLive(ctx, broadcasterID, live[broadcasterID]); err != nil {
			slog.Warn("Failed to update channel state", "broadcaster_user_id", broadcasterID, "error", err)
		}
	}
	slog.Info("Refreshed channel states from Helix",
		"channels", len(broadcasterUserIDs),
		"live", len(live))
	return nil
}

func (s *ChannelService) setLive(ctx context.Context, broadcasterUserID string, live bool) error {
	now := time.Now()
	state, err := s.client.ChannelState.Query().
		Where(channelstate.BroadcasterUserIDEQ(broadcasterUserID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to query channel state: %w", err)
	}

	if state == nil {
		create := s.client.ChannelState.Create().
			SetBroadcasterUserID(broadcasterUserID).
			SetIsLive(live)
		if live {
			create.SetLastOnlineAt(now)
		} else {
			create.SetLastOfflineAt(now)
		}
		if err := create.Exec(ctx); err != nil && !ent.IsConstraintError(err) {
			return fmt.Errorf("failed to create channel state: %w", err)
		}
		return nil
	}

	update := state.Update().SetIsLive(live)
	if live && !state.IsLive {
		update.SetLastOnlineAt(now)
	}
	if !live && state.IsLive {
		update.SetLastOfflineAt(now)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update channel state: %w", err)
	}
	return nil
}
