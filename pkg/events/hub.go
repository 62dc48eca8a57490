package events

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/streamgate/streamgate/pkg/version"
)

const (
	// sendQueueSize bounds the per-connection outbound queue. A slow consumer
	// loses its oldest events rather than stalling fan-out for everyone else.
	sendQueueSize = 256

	// webhookWorkers is the size of the outgoing webhook delivery pool.
	webhookWorkers = 32

	// webhookQueueSize bounds pending webhook deliveries across all services.
	webhookQueueSize = 1024

	// writeTimeout bounds a single websocket write.
	writeTimeout = 10 * time.Second
)

// StatsRecorder receives delivery accounting callbacks. Implemented by the
// stats service; a no-op implementation is fine for tests.
type StatsRecorder interface {
	RecordWSConnect(ctx context.Context, serviceAccountID uuid.UUID)
	RecordWSDisconnect(ctx context.Context, serviceAccountID uuid.UUID)
	RecordEventSent(ctx context.Context, serviceAccountID uuid.UUID, transport string)
	RecordWebhookFailure(ctx context.Context, serviceAccountID uuid.UUID)
}

// DeliveryTarget names one service-side destination for an envelope.
type DeliveryTarget struct {
	ServiceAccountID uuid.UUID
	Transport        string // "websocket" or "webhook"
	WebhookURL       string
}

// ServiceConn is one downstream websocket connection owned by a service.
type ServiceConn struct {
	ID               string
	ServiceAccountID uuid.UUID

	conn   *websocket.Conn
	queue  chan []byte
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	dropped int64
}

// Hub fans envelopes out to consumer services: websocket connections get the
// envelope pushed onto a bounded per-connection queue, webhook interests get
// a delivery job on the shared worker pool.
type Hub struct {
	logger        *slog.Logger
	stats         StatsRecorder
	httpClient    *http.Client
	retries       int
	signingSecret string

	mu          sync.RWMutex
	connections map[string]*ServiceConn
	byService   map[uuid.UUID]map[string]*ServiceConn

	jobs chan webhookJob
	wg   sync.WaitGroup

	stopOnce sync.Once
	stopped  chan struct{}
}

type webhookJob struct {
	serviceAccountID uuid.UUID
	url              string
	payload          []byte
	envelopeID       string
	eventType        string
}

// NewHub creates a fan-out hub. webhookTimeout bounds a single delivery
// attempt; retries is the number of re-attempts after a transient failure.
// signingSecret, when non-empty, signs webhook bodies so consumers can verify
// the sender.
func NewHub(logger *slog.Logger, stats StatsRecorder, webhookTimeout time.Duration, retries int, signingSecret string) *Hub {
	return &Hub{
		logger:        logger,
		stats:         stats,
		httpClient:    &http.Client{Timeout: webhookTimeout},
		retries:       retries,
		signingSecret: signingSecret,
		connections: make(map[string]*ServiceConn),
		byService:   make(map[uuid.UUID]map[string]*ServiceConn),
		jobs:        make(chan webhookJob, webhookQueueSize),
		stopped:     make(chan struct{}),
	}
}

// Start launches the webhook delivery workers.
func (h *Hub) Start(ctx context.Context) {
	for i := 0; i < webhookWorkers; i++ {
		h.wg.Add(1)
		go h.webhookWorker(ctx)
	}
	h.logger.Info("fanout hub started", slog.Int("webhook_workers", webhookWorkers))
}

// Stop drains the webhook workers and closes every websocket connection.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stopped)
		close(h.jobs)
	})
	h.wg.Wait()

	h.mu.Lock()
	conns := make([]*ServiceConn, 0, len(h.connections))
	for _, c := range h.connections {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		c.cancel()
		_ = c.conn.Close(websocket.StatusGoingAway, "server shutting down")
	}
	h.logger.Info("fanout hub stopped")
}

// HandleConnection manages the lifecycle of a single downstream websocket
// connection. Called by the websocket HTTP handler after upgrade and ticket
// consumption. Blocks until the connection closes.
func (h *Hub) HandleConnection(parentCtx context.Context, serviceAccountID uuid.UUID, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &ServiceConn{
		ID:               uuid.New().String(),
		ServiceAccountID: serviceAccountID,
		conn:             conn,
		queue:            make(chan []byte, sendQueueSize),
		ctx:              ctx,
		cancel:           cancel,
	}

	h.register(c)
	h.stats.RecordWSConnect(ctx, serviceAccountID)
	defer func() {
		h.unregister(c)
		h.stats.RecordWSDisconnect(context.WithoutCancel(ctx), serviceAccountID)
	}()

	go h.writeLoop(c)

	h.enqueue(c, mustJSON(map[string]string{
		"type":          "connection.established",
		"connection_id": c.ID,
	}))

	// Read loop. Consumers only send pings; anything else is ignored. The
	// loop's real job is noticing the close.
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var msg struct {
			Action string `json:"action"`
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		if msg.Action == "ping" {
			h.enqueue(c, mustJSON(map[string]string{"type": "pong"}))
		}
	}
}

// Deliver fans one envelope out to every target. The envelope is marshaled
// once; per-target failures never affect other targets.
func (h *Hub) Deliver(ctx context.Context, env Envelope, targets []DeliveryTarget) {
	if len(targets) == 0 {
		return
	}
	payload, err := json.Marshal(env)
	if err != nil {
		h.logger.Error("failed to marshal envelope", slog.String("envelope_id", env.ID), slog.Any("error", err))
		return
	}

	for _, target := range targets {
		switch target.Transport {
		case "webhook":
			h.deliverWebhook(ctx, target, payload, env)
		default:
			h.deliverWS(ctx, target.ServiceAccountID, payload, env)
		}
	}
}

// ActiveConnections returns the number of open downstream connections.
func (h *Hub) ActiveConnections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

func (h *Hub) deliverWS(ctx context.Context, serviceAccountID uuid.UUID, payload []byte, env Envelope) {
	// Snapshot connection pointers under the lock, then release before
	// enqueueing, so slow consumers cannot stall register/unregister.
	h.mu.RLock()
	conns := make([]*ServiceConn, 0, len(h.byService[serviceAccountID]))
	for _, c := range h.byService[serviceAccountID] {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	if len(conns) == 0 {
		return
	}
	for _, c := range conns {
		h.enqueue(c, payload)
	}
	h.stats.RecordEventSent(ctx, serviceAccountID, "websocket")
}

func (h *Hub) deliverWebhook(ctx context.Context, target DeliveryTarget, payload []byte, env Envelope) {
	job := webhookJob{
		serviceAccountID: target.ServiceAccountID,
		url:              target.WebhookURL,
		payload:          payload,
		envelopeID:       env.ID,
		eventType:        env.Type,
	}
	select {
	case <-h.stopped:
		return
	case h.jobs <- job:
		return
	default:
	}

	// Queue full: evict the oldest pending delivery so fresh events keep
	// flowing, then try once more. The eviction counts against the evicted
	// job's service, not the new one.
	select {
	case dropped := <-h.jobs:
		h.logger.Warn("webhook queue full, dropping oldest delivery",
			slog.String("service_account_id", dropped.serviceAccountID.String()),
			slog.String("envelope_id", dropped.envelopeID))
		h.stats.RecordWebhookFailure(ctx, dropped.serviceAccountID)
	default:
	}
	select {
	case <-h.stopped:
	case h.jobs <- job:
	default:
		h.stats.RecordWebhookFailure(ctx, target.ServiceAccountID)
	}
}

func (h *Hub) webhookWorker(ctx context.Context) {
	defer h.wg.Done()
	for job := range h.jobs {
		h.postWebhook(ctx, job)
	}
}

func (h *Hub) postWebhook(ctx context.Context, job webhookJob) {
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, job.url, bytes.NewReader(job.payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", version.Full())
		req.Header.Set("X-Streamgate-Event-Id", job.envelopeID)
		req.Header.Set("X-Streamgate-Event-Type", job.eventType)
		if h.signingSecret != "" {
			req.Header.Set("X-Streamgate-Signature", SignPayload(h.signingSecret, job.payload))
		}

		resp, err := h.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() {
			_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
		}()

		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("webhook target returned %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			// 4xx is terminal: the target rejected the event, retrying won't help.
			return backoff.Permanent(fmt.Errorf("webhook target returned %d", resp.StatusCode))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(newWebhookBackoff(), uint64(h.retries)), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		h.logger.Warn("webhook delivery failed",
			slog.String("service_account_id", job.serviceAccountID.String()),
			slog.String("envelope_id", job.envelopeID),
			slog.String("event_type", job.eventType),
			slog.Any("error", err))
		h.stats.RecordWebhookFailure(ctx, job.serviceAccountID)
		return
	}
	h.stats.RecordEventSent(ctx, job.serviceAccountID, "webhook")
}

func newWebhookBackoff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 3 * time.Second
	b.MaxElapsedTime = 0
	return b
}

// enqueue pushes payload onto the connection queue, evicting the oldest
// pending message when the queue is full.
func (h *Hub) enqueue(c *ServiceConn, payload []byte) {
	select {
	case c.queue <- payload:
		return
	default:
	}

	// Full: drop the oldest entry, then try once more. The writer may have
	// drained concurrently, so the second send can still succeed cleanly.
	select {
	case <-c.queue:
		c.mu.Lock()
		c.dropped++
		dropped := c.dropped
		c.mu.Unlock()
		if dropped == 1 || dropped%100 == 0 {
			h.logger.Warn("slow websocket consumer, dropping oldest event",
				slog.String("connection_id", c.ID),
				slog.String("service_account_id", c.ServiceAccountID.String()),
				slog.Int64("dropped_total", dropped))
		}
	default:
	}
	select {
	case c.queue <- payload:
	default:
	}
}

func (h *Hub) writeLoop(c *ServiceConn) {
	for {
		select {
		case <-c.ctx.Done():
			return
		case payload := <-c.queue:
			writeCtx, cancel := context.WithTimeout(c.ctx, writeTimeout)
			err := c.conn.Write(writeCtx, websocket.MessageText, payload)
			cancel()
			if err != nil {
				h.logger.Warn("failed to send to websocket client",
					slog.String("connection_id", c.ID), slog.Any("error", err))
				c.cancel()
				return
			}
		}
	}
}

func (h *Hub) register(c *ServiceConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c.ID] = c
	if h.byService[c.ServiceAccountID] == nil {
		h.byService[c.ServiceAccountID] = make(map[string]*ServiceConn)
	}
	h.byService[c.ServiceAccountID][c.ID] = c
}

func (h *Hub) unregister(c *ServiceConn) {
	h.mu.Lock()
	delete(h.connections, c.ID)
	if conns := h.byService[c.ServiceAccountID]; conns != nil {
		delete(conns, c.ID)
		if len(conns) == 0 {
			delete(h.byService, c.ServiceAccountID)
		}
	}
	h.mu.Unlock()

	c.cancel()
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
}

// SignPayload computes the signature header value for an outgoing webhook
// body: sha256=<hex HMAC-SHA256 of the body>.
func SignPayload(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func mustJSON(v any) []byte {
	data, _ := json.Marshal(v)
	return data
}
