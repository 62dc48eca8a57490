package twitch

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

const (
	assetTTL          = 6 * time.Hour
	assetStaleIfError = 24 * time.Hour
)

// assetFetcher is the subset of Client used by the asset cache.
type assetFetcher interface {
	GetGlobalChatBadges(ctx context.Context) ([]BadgeSet, error)
	GetChannelChatBadges(ctx context.Context, broadcasterID string) ([]BadgeSet, error)
	GetGlobalEmotes(ctx context.Context) ([]Emote, error)
	GetChannelEmotes(ctx context.Context, broadcasterID string) ([]Emote, error)
}

type badgeEntry struct {
	sets      []BadgeSet
	expiresAt time.Time
}

type emoteEntry struct {
	emotes    []Emote
	expiresAt time.Time
}

// AssetCache is an in-memory cache for Twitch chat badges and emotes, global
// and per broadcaster. It exists to avoid per-message Helix calls while
// keeping enrichment best-effort: delivery never blocks on a refresh.
type AssetCache struct {
	fetcher assetFetcher
	logger  *slog.Logger

	mu            sync.Mutex
	globalBadges  *badgeEntry
	globalEmotes  *emoteEntry
	channelBadges map[string]*badgeEntry
	channelEmotes map[string]*emoteEntry
	inflight      map[string]bool
}

// NewAssetCache creates an asset cache backed by the given Twitch client.
func NewAssetCache(fetcher assetFetcher, logger *slog.Logger) *AssetCache {
	return &AssetCache{
		fetcher:       fetcher,
		logger:        logger,
		channelBadges: make(map[string]*badgeEntry),
		channelEmotes: make(map[string]*emoteEntry),
		inflight:      make(map[string]bool),
	}
}

// Prefetch refreshes any missing or stale entries for the broadcaster in the
// background. Used on interest creation so the first chat message already
// has assets available.
func (c *AssetCache) Prefetch(ctx context.Context, broadcasterID string) {
	for _, kind := range []string{"global_badges", "global_emotes", "channel_badges", "channel_emotes"} {
		go c.ensureFresh(ctx, kind, broadcasterID)
	}
}

// Refresh force-refreshes all four asset kinds synchronously.
func (c *AssetCache) Refresh(ctx context.Context, broadcasterID string) error {
	if err := c.refreshKind(ctx, "global_badges", broadcasterID); err != nil {
		return err
	}
	if err := c.refreshKind(ctx, "global_emotes", broadcasterID); err != nil {
		return err
	}
	if err := c.refreshKind(ctx, "channel_badges", broadcasterID); err != nil {
		return err
	}
	return c.refreshKind(ctx, "channel_emotes", broadcasterID)
}

// ChatEvent is the subset of a channel.chat.* event payload the enricher
// inspects.
type chatEvent struct {
	Badges []struct {
		SetID string `json:"set_id"`
		ID    string `json:"id"`
	} `json:"badges"`
	Message struct {
		Fragments []struct {
			Type  string `json:"type"`
			Emote struct {
				ID string `json:"id"`
			} `json:"emote"`
		} `json:"fragments"`
	} `json:"message"`
}

// ResolvedBadge is a badge referenced by a chat event with its image URLs.
type ResolvedBadge struct {
	SetID      string `json:"set_id"`
	ID         string `json:"id"`
	Title      string `json:"title"`
	ImageURL1x string `json:"image_url_1x,omitempty"`
	ImageURL2x string `json:"image_url_2x,omitempty"`
	ImageURL4x string `json:"image_url_4x,omitempty"`
}

// Enrichment is the twitch_chat_assets payload attached to chat envelopes.
type Enrichment struct {
	Badges  []ResolvedBadge `json:"badges"`
	Emotes  []Emote         `json:"emotes"`
	Missing struct {
		Badges []string `json:"badges"`
		Emotes []string `json:"emotes"`
	} `json:"missing"`
}

// EnrichChatEvent resolves the badges and emotes referenced by a chat event
// against the cache. Returns nil when nothing resolved; never returns an
// error, enrichment is strictly best-effort.
func (c *AssetCache) EnrichChatEvent(ctx context.Context, broadcasterID string, event json.RawMessage) *Enrichment {
	var ev chatEvent
	if err := json.Unmarshal(event, &ev); err != nil {
		return nil
	}

	c.Prefetch(ctx, broadcasterID)

	badgeLookup := c.badgeLookup(broadcasterID)
	emoteLookup := c.emoteLookup(broadcasterID)

	var neededBadges []string
	for _, b := range ev.Badges {
		if b.SetID != "" && b.ID != "" {
			neededBadges = append(neededBadges, b.SetID+"/"+b.ID)
		}
	}
	var neededEmotes []string
	for _, frag := range ev.Message.Fragments {
		if frag.Type == "emote" && frag.Emote.ID != "" {
			neededEmotes = append(neededEmotes, frag.Emote.ID)
		}
	}

	// First-message safety: refresh once synchronously when a referenced badge
	// is missing so clients can render Twitch-native badge images reliably.
	if anyMissing(neededBadges, badgeLookup) {
		_ = c.refreshKind(ctx, "global_badges", broadcasterID)
		_ = c.refreshKind(ctx, "channel_badges", broadcasterID)
		badgeLookup = c.badgeLookup(broadcasterID)
	}

	enrichment := &Enrichment{}
	seenBadge := make(map[string]bool)
	for _, key := range neededBadges {
		if seenBadge[key] {
			continue
		}
		seenBadge[key] = true
		if badge, ok := badgeLookup[key]; ok {
			enrichment.Badges = append(enrichment.Badges, badge)
		} else {
			enrichment.Missing.Badges = append(enrichment.Missing.Badges, key)
		}
	}
	seenEmote := make(map[string]bool)
	for _, id := range neededEmotes {
		if seenEmote[id] {
			continue
		}
		seenEmote[id] = true
		if emote, ok := emoteLookup[id]; ok {
			enrichment.Emotes = append(enrichment.Emotes, emote)
		} else {
			enrichment.Missing.Emotes = append(enrichment.Missing.Emotes, id)
		}
	}

	if len(enrichment.Badges) == 0 && len(enrichment.Emotes) == 0 {
		return nil
	}
	return enrichment
}

func anyMissing(keys []string, lookup map[string]ResolvedBadge) bool {
	for _, key := range keys {
		if _, ok := lookup[key]; !ok {
			return true
		}
	}
	return len(keys) > 0 && len(lookup) == 0
}

func (c *AssetCache) badgeLookup(broadcasterID string) map[string]ResolvedBadge {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]ResolvedBadge)
	addSets := func(entry *badgeEntry) {
		if entry == nil {
			return
		}
		for _, set := range entry.sets {
			for _, v := range set.Versions {
				out[set.SetID+"/"+v.ID] = ResolvedBadge{
					SetID:      set.SetID,
					ID:         v.ID,
					Title:      v.Title,
					ImageURL1x: v.ImageURL1x,
					ImageURL2x: v.ImageURL2x,
					ImageURL4x: v.ImageURL4x,
				}
			}
		}
	}
	addSets(c.globalBadges)
	addSets(c.channelBadges[broadcasterID])
	return out
}

func (c *AssetCache) emoteLookup(broadcasterID string) map[string]Emote {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]Emote)
	addEmotes := func(entry *emoteEntry) {
		if entry == nil {
			return
		}
		for _, e := range entry.emotes {
			out[e.ID] = e
		}
	}
	addEmotes(c.globalEmotes)
	addEmotes(c.channelEmotes[broadcasterID])
	return out
}

func (c *AssetCache) ensureFresh(ctx context.Context, kind, broadcasterID string) {
	c.mu.Lock()
	if c.isFreshLocked(kind, broadcasterID) {
		c.mu.Unlock()
		return
	}
	inflightKey := kind + ":" + broadcasterID
	if c.inflight[inflightKey] {
		c.mu.Unlock()
		return
	}
	c.inflight[inflightKey] = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.inflight, inflightKey)
		c.mu.Unlock()
	}()

	if err := c.refreshKind(ctx, kind, broadcasterID); err != nil {
		// Keep any old value around a bit longer to avoid repeated retries.
		c.logger.Info("failed refreshing chat assets",
			slog.String("kind", kind),
			slog.String("broadcaster_user_id", broadcasterID),
			slog.Any("error", err))
		c.extendStale(kind, broadcasterID)
	}
}

func (c *AssetCache) isFreshLocked(kind, broadcasterID string) bool {
	now := time.Now()
	switch kind {
	case "global_badges":
		return c.globalBadges != nil && now.Before(c.globalBadges.expiresAt)
	case "global_emotes":
		return c.globalEmotes != nil && now.Before(c.globalEmotes.expiresAt)
	case "channel_badges":
		e := c.channelBadges[broadcasterID]
		return e != nil && now.Before(e.expiresAt)
	case "channel_emotes":
		e := c.channelEmotes[broadcasterID]
		return e != nil && now.Before(e.expiresAt)
	}
	return false
}

func (c *AssetCache) refreshKind(ctx context.Context, kind, broadcasterID string) error {
	expiry := time.Now().Add(assetTTL)
	switch kind {
	case "global_badges":
		sets, err := c.fetcher.GetGlobalChatBadges(ctx)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.globalBadges = &badgeEntry{sets: sets, expiresAt: expiry}
		c.mu.Unlock()
	case "global_emotes":
		emotes, err := c.fetcher.GetGlobalEmotes(ctx)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.globalEmotes = &emoteEntry{emotes: emotes, expiresAt: expiry}
		c.mu.Unlock()
	case "channel_badges":
		sets, err := c.fetcher.GetChannelChatBadges(ctx, broadcasterID)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.channelBadges[broadcasterID] = &badgeEntry{sets: sets, expiresAt: expiry}
		c.mu.Unlock()
	case "channel_emotes":
		emotes, err := c.fetcher.GetChannelEmotes(ctx, broadcasterID)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.channelEmotes[broadcasterID] = &emoteEntry{emotes: emotes, expiresAt: expiry}
		c.mu.Unlock()
	}
	return nil
}

func (c *AssetCache) extendStale(kind, broadcasterID string) {
	expiry := time.Now().Add(assetStaleIfError)
	c.mu.Lock()
	defer c.mu.Unlock()
	switch kind {
	case "global_badges":
		if c.globalBadges != nil {
			c.globalBadges.expiresAt = expiry
		}
	case "global_emotes":
		if c.globalEmotes != nil {
			c.globalEmotes.expiresAt = expiry
		}
	case "channel_badges":
		if e := c.channelBadges[broadcasterID]; e != nil {
			e.expiresAt = expiry
		}
	case "channel_emotes":
		if e := c.channelEmotes[broadcasterID]; e != nil {
			e.expiresAt = expiry
		}
	}
}
