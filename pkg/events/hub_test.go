package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStats struct {
	wsConnects      atomic.Int64
	wsDisconnects   atomic.Int64
	eventsWS        atomic.Int64
	eventsWebhook   atomic.Int64
	webhookFailures atomic.Int64
}

func (r *recordingStats) RecordWSConnect(context.Context, uuid.UUID)    { r.wsConnects.Add(1) }
func (r *recordingStats) RecordWSDisconnect(context.Context, uuid.UUID) { r.wsDisconnects.Add(1) }
func (r *recordingStats) RecordEventSent(_ context.Context, _ uuid.UUID, transport string) {
	if transport == "webhook" {
		r.eventsWebhook.Add(1)
		return
	}
	r.eventsWS.Add(1)
}
func (r *recordingStats) RecordWebhookFailure(context.Context, uuid.UUID) {
	r.webhookFailures.Add(1)
}

func newTestHub(t *testing.T, stats StatsRecorder) *Hub {
	t.Helper()
	hub := NewHub(slog.New(slog.DiscardHandler), stats, 2*time.Second, 2, "test-signing-secret")
	hub.Start(context.Background())
	t.Cleanup(hub.Stop)
	return hub
}

// dialHub spins up a websocket endpoint backed by hub.HandleConnection and
// returns the client side of the connection.
func dialHub(t *testing.T, hub *Hub, serviceID uuid.UUID) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		hub.HandleConnection(r.Context(), serviceID, conn)
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+srv.URL[len("http"):], nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestHub_WebSocketDelivery(t *testing.T) {
	stats := &recordingStats{}
	hub := newTestHub(t, stats)
	serviceID := uuid.New()

	conn := dialHub(t, hub, serviceID)

	welcome := readMessage(t, conn)
	assert.Equal(t, "connection.established", welcome["type"])
	assert.NotEmpty(t, welcome["connection_id"])

	env := NewEnvelope("msg-1", "stream.online", "2026-01-02T03:04:05Z", json.RawMessage(`{"broadcaster_user_id":"42"}`))
	hub.Deliver(context.Background(), env, []DeliveryTarget{
		{ServiceAccountID: serviceID, Transport: "websocket"},
	})

	msg := readMessage(t, conn)
	assert.Equal(t, "msg-1", msg["id"])
	assert.Equal(t, "twitch", msg["provider"])
	assert.Equal(t, "stream.online", msg["type"])

	assert.Equal(t, int64(1), stats.wsConnects.Load())
	assert.Equal(t, int64(1), stats.eventsWS.Load())
}

func TestHub_DeliveryScopedToService(t *testing.T) {
	hub := newTestHub(t, &recordingStats{})
	targetService := uuid.New()
	otherService := uuid.New()

	targetConn := dialHub(t, hub, targetService)
	otherConn := dialHub(t, hub, otherService)
	readMessage(t, targetConn)
	readMessage(t, otherConn)

	env := NewEnvelope("msg-1", "channel.follow", "", json.RawMessage(`{}`))
	hub.Deliver(context.Background(), env, []DeliveryTarget{
		{ServiceAccountID: targetService, Transport: "websocket"},
	})

	msg := readMessage(t, targetConn)
	assert.Equal(t, "msg-1", msg["id"])

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	_, _, err := otherConn.Read(ctx)
	assert.Error(t, err, "connection of the other service must stay silent")
}

func TestHub_Ping(t *testing.T) {
	hub := newTestHub(t, &recordingStats{})
	conn := dialHub(t, hub, uuid.New())
	readMessage(t, conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(`{"action":"ping"}`)))

	msg := readMessage(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestHub_DisconnectUnregisters(t *testing.T) {
	stats := &recordingStats{}
	hub := newTestHub(t, stats)
	serviceID := uuid.New()

	conn := dialHub(t, hub, serviceID)
	readMessage(t, conn)
	require.Equal(t, 1, hub.ActiveConnections())

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))

	require.Eventually(t, func() bool {
		return hub.ActiveConnections() == 0
	}, 5*time.Second, 20*time.Millisecond)

	require.Eventually(t, func() bool {
		return stats.wsDisconnects.Load() == 1
	}, 5*time.Second, 20*time.Millisecond)
}

func TestHub_WebhookDelivery(t *testing.T) {
	stats := &recordingStats{}
	hub := newTestHub(t, stats)
	serviceID := uuid.New()

	received := make(chan Envelope, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "msg-1", r.Header.Get("X-Streamgate-Event-Id"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, SignPayload("test-signing-secret", body), r.Header.Get("X-Streamgate-Signature"))

		var env Envelope
		require.NoError(t, json.Unmarshal(body, &env))
		received <- env
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	env := NewEnvelope("msg-1", "stream.online", "", json.RawMessage(`{}`))
	hub.Deliver(context.Background(), env, []DeliveryTarget{
		{ServiceAccountID: serviceID, Transport: "webhook", WebhookURL: srv.URL},
	})

	select {
	case got := <-received:
		assert.Equal(t, "msg-1", got.ID)
		assert.Equal(t, "stream.online", got.Type)
	case <-time.After(5 * time.Second):
		t.Fatal("webhook was not delivered")
	}

	require.Eventually(t, func() bool {
		return stats.eventsWebhook.Load() == 1
	}, 5*time.Second, 20*time.Millisecond)
}

func TestHub_WebhookRetriesTransientFailure(t *testing.T) {
	stats := &recordingStats{}
	hub := newTestHub(t, stats)

	var attempts atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	env := NewEnvelope("msg-1", "stream.online", "", json.RawMessage(`{}`))
	hub.Deliver(context.Background(), env, []DeliveryTarget{
		{ServiceAccountID: uuid.New(), Transport: "webhook", WebhookURL: srv.URL},
	})

	require.Eventually(t, func() bool {
		return stats.eventsWebhook.Load() == 1
	}, 10*time.Second, 20*time.Millisecond)
	assert.Equal(t, int64(2), attempts.Load())
	assert.Equal(t, int64(0), stats.webhookFailures.Load())
}

func TestHub_WebhookClientErrorIsTerminal(t *testing.T) {
	stats := &recordingStats{}
	hub := newTestHub(t, stats)

	var attempts atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	env := NewEnvelope("msg-1", "stream.online", "", json.RawMessage(`{}`))
	hub.Deliver(context.Background(), env, []DeliveryTarget{
		{ServiceAccountID: uuid.New(), Transport: "webhook", WebhookURL: srv.URL},
	})

	require.Eventually(t, func() bool {
		return stats.webhookFailures.Load() == 1
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, int64(1), attempts.Load(), "4xx responses must not be retried")
}

func TestHub_WebhookQueueFullDropsOldest(t *testing.T) {
	stats := &recordingStats{}
	// Not started: no workers drain the queue, so it fills deterministically.
	hub := NewHub(slog.New(slog.DiscardHandler), stats, time.Second, 0, "")
	target := DeliveryTarget{ServiceAccountID: uuid.New(), Transport: "webhook", WebhookURL: "http://consumer.example.com/hook"}

	for i := 0; i <= webhookQueueSize; i++ {
		env := Envelope{ID: "env-" + strconv.Itoa(i), Type: "channel.follow"}
		hub.deliverWebhook(context.Background(), target, []byte("{}"), env)
	}

	// The oldest pending delivery made room for the newest one.
	require.Len(t, hub.jobs, webhookQueueSize)
	assert.Equal(t, int64(1), stats.webhookFailures.Load())

	first := <-hub.jobs
	assert.Equal(t, "env-1", first.envelopeID)
	var last webhookJob
	for len(hub.jobs) > 0 {
		last = <-hub.jobs
	}
	assert.Equal(t, "env-"+strconv.Itoa(webhookQueueSize), last.envelopeID)
}

func TestHub_SlowConsumerDropsOldest(t *testing.T) {
	hub := NewHub(slog.New(slog.DiscardHandler), &recordingStats{}, time.Second, 0, "")

	c := &ServiceConn{
		ID:               "test",
		ServiceAccountID: uuid.New(),
		queue:            make(chan []byte, 2),
	}

	hub.enqueue(c, []byte("a"))
	hub.enqueue(c, []byte("b"))
	hub.enqueue(c, []byte("c"))

	assert.Equal(t, []byte("b"), <-c.queue)
	assert.Equal(t, []byte("c"), <-c.queue)
	assert.Equal(t, int64(1), c.dropped)
}
