package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_Counters(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewStatsService(client)
	ctx := t.Context()

	account, _ := createTestServiceAccount(t, client, "counted")

	svc.RecordAPIRequest(ctx, account.ID)
	svc.RecordAPIRequest(ctx, account.ID)
	svc.RecordWSConnect(ctx, account.ID)
	svc.RecordEventSent(ctx, account.ID, "websocket")
	svc.RecordEventSent(ctx, account.ID, "webhook")
	svc.RecordWebhookFailure(ctx, account.ID)
	svc.RecordWSDisconnect(ctx, account.ID)

	stats, err := svc.GetStats(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalAPIRequests)
	assert.Equal(t, int64(1), stats.WsConnects)
	assert.Equal(t, int64(1), stats.WsDisconnects)
	assert.Equal(t, int64(0), stats.ActiveWsConnections)
	assert.Equal(t, int64(1), stats.EventsSentWs)
	assert.Equal(t, int64(1), stats.EventsSentWebhook)
	assert.Equal(t, int64(1), stats.WebhookFailures)
	assert.NotNil(t, stats.LastConnectAt)
	assert.NotNil(t, stats.LastDisconnectAt)
	assert.NotNil(t, stats.LastEventAt)
}

func TestStatsService_GetStats_NotFound(t *testing.T) {
	client := newTestEntClient(t)
	svc := NewStatsService(client)

	account, _ := createTestServiceAccount(t, client, "untouched")
	_, err := svc.GetStats(t.Context(), account.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
