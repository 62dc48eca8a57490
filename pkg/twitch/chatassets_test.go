package twitch

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAssetFetcher struct {
	globalBadgeCalls  atomic.Int64
	channelBadgeCalls atomic.Int64
	fail              bool
}

func (f *fakeAssetFetcher) GetGlobalChatBadges(ctx context.Context) ([]BadgeSet, error) {
	f.globalBadgeCalls.Add(1)
	if f.fail {
		return nil, errors.New("helix unavailable")
	}
	return []BadgeSet{{
		SetID: "moderator",
		Versions: []BadgeVersion{{
			ID: "1", Title: "Moderator", ImageURL1x: "https://cdn/moderator1x.png",
		}},
	}}, nil
}

func (f *fakeAssetFetcher) GetChannelChatBadges(ctx context.Context, broadcasterID string) ([]BadgeSet, error) {
	f.channelBadgeCalls.Add(1)
	if f.fail {
		return nil, errors.New("helix unavailable")
	}
	return []BadgeSet{{
		SetID: "subscriber",
		Versions: []BadgeVersion{{
			ID: "3", Title: "3-Month Subscriber", ImageURL4x: "https://cdn/sub4x.png",
		}},
	}}, nil
}

func (f *fakeAssetFetcher) GetGlobalEmotes(ctx context.Context) ([]Emote, error) {
	if f.fail {
		return nil, errors.New("helix unavailable")
	}
	return []Emote{{ID: "25", Name: "Kappa"}}, nil
}

func (f *fakeAssetFetcher) GetChannelEmotes(ctx context.Context, broadcasterID string) ([]Emote, error) {
	if f.fail {
		return nil, errors.New("helix unavailable")
	}
	return []Emote{{ID: "900", Name: "chanEmote"}}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestEnrichChatEvent(t *testing.T) {
	fetcher := &fakeAssetFetcher{}
	cache := NewAssetCache(fetcher, testLogger())
	ctx := context.Background()
	require.NoError(t, cache.Refresh(ctx, "123"))

	event := json.RawMessage(`{
		"badges": [{"set_id": "moderator", "id": "1"}, {"set_id": "subscriber", "id": "3"}],
		"message": {"fragments": [
			{"type": "text", "text": "hello"},
			{"type": "emote", "emote": {"id": "25"}},
			{"type": "emote", "emote": {"id": "unknown-emote"}}
		]}
	}`)

	enrichment := cache.EnrichChatEvent(ctx, "123", event)
	require.NotNil(t, enrichment)
	require.Len(t, enrichment.Badges, 2)
	assert.Equal(t, "moderator", enrichment.Badges[0].SetID)
	assert.Equal(t, "subscriber", enrichment.Badges[1].SetID)
	require.Len(t, enrichment.Emotes, 1)
	assert.Equal(t, "Kappa", enrichment.Emotes[0].Name)
	assert.Equal(t, []string{"unknown-emote"}, enrichment.Missing.Emotes)
}

func TestEnrichChatEvent_NothingResolved(t *testing.T) {
	cache := NewAssetCache(&fakeAssetFetcher{fail: true}, testLogger())

	event := json.RawMessage(`{"message": {"fragments": [{"type": "text", "text": "plain"}]}}`)
	assert.Nil(t, cache.EnrichChatEvent(context.Background(), "123", event))
}

func TestEnrichChatEvent_InvalidJSON(t *testing.T) {
	cache := NewAssetCache(&fakeAssetFetcher{}, testLogger())
	assert.Nil(t, cache.EnrichChatEvent(context.Background(), "123", json.RawMessage(`{`)))
}

func TestEnrichChatEvent_MissingBadgeTriggersRefresh(t *testing.T) {
	fetcher := &fakeAssetFetcher{}
	cache := NewAssetCache(fetcher, testLogger())

	event := json.RawMessage(`{"badges": [{"set_id": "moderator", "id": "1"}]}`)
	enrichment := cache.EnrichChatEvent(context.Background(), "123", event)
	require.NotNil(t, enrichment)
	require.Len(t, enrichment.Badges, 1)
	assert.GreaterOrEqual(t, fetcher.globalBadgeCalls.Load(), int64(1))
	assert.GreaterOrEqual(t, fetcher.channelBadgeCalls.Load(), int64(1))
}
