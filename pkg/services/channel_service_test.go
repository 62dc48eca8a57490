package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelService_ApplyStreamEvent(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewChannelService(client, newFakeTwitchClient(t, &fakeTwitch{}))
	ctx := t.Context()

	require.NoError(t, svc.ApplyStreamEvent(ctx, "stream.online", "12345"))

	state, err := svc.GetState(ctx, "12345")
	require.NoError(t, err)
	assert.True(t, state.IsLive)
	assert.NotNil(t, state.LastOnlineAt)
	assert.Nil(t, state.LastOfflineAt)

	require.NoError(t, svc.ApplyStreamEvent(ctx, "stream.offline", "12345"))

	state, err = svc.GetState(ctx, "12345")
	require.NoError(t, err)
	assert.False(t, state.IsLive)
	assert.NotNil(t, state.LastOfflineAt)
}

func TestChannelService_ApplyStreamEvent_IgnoresOtherTypes(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewChannelService(client, newFakeTwitchClient(t, &fakeTwitch{}))
	ctx := t.Context()

	require.NoError(t, svc.ApplyStreamEvent(ctx, "channel.follow", "12345"))

	_, err := svc.GetState(ctx, "12345")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChannelService_RefreshFromHelix(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewChannelService(client, newFakeTwitchClient(t, &fakeTwitch{
		liveUserIDs: []string{"111"},
	}))
	ctx := t.Context()

	// Stale state claims 222 is live; Helix says only 111 is.
	require.NoError(t, svc.ApplyStreamEvent(ctx, "stream.online", "222"))

	require.NoError(t, svc.RefreshFromHelix(ctx, []string{"111", "222"}))

	live, err := svc.GetState(ctx, "111")
	require.NoError(t, err)
	assert.True(t, live.IsLive)

	offline, err := svc.GetState(ctx, "222")
	require.NoError(t, err)
	assert.False(t, offline.IsLive)
}

func TestChannelService_RefreshFromHelix_Empty(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewChannelService(client, newFakeTwitchClient(t, &fakeTwitch{}))

	assert.NoError(t, svc.RefreshFromHelix(t.Context(), nil))
}
