package eventsub

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/coder/websocket"
)

const (
	// welcomeTimeout bounds how long a freshly dialed connection may take to
	// produce session_welcome.
	welcomeTimeout = 15 * time.Second

	// keepaliveGrace is the multiplier over the server-advertised keepalive
	// interval before the connection is declared dead.
	keepaliveGrace = 1.5

	sessionReadLimit = 1 << 20
)

// sessionSink receives decoded upstream traffic. Implemented by the
// subscription manager.
type sessionSink interface {
	HandleSessionWelcome(ctx context.Context, sessionID string)
	HandleNotification(ctx context.Context, n Notification)
	HandleRevocation(ctx context.Context, twitchSubscriptionID, status string)
}

// WSSession maintains the single EventSub websocket connection to Twitch,
// reconnecting with capped backoff and following session_reconnect handovers.
type WSSession struct {
	logger    *slog.Logger
	baseURL   string
	keepalive time.Duration
	sink      sessionSink

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewWSSession creates a session against the given EventSub websocket URL.
// keepalive is the interval requested from Twitch via the dial query string.
func NewWSSession(logger *slog.Logger, wsURL string, keepalive time.Duration, sink sessionSink) *WSSession {
	return &WSSession{
		logger:    logger,
		baseURL:   wsURL,
		keepalive: keepalive,
		sink:      sink,
	}
}

// Start begins the connect/read loop in the background.
func (s *WSSession) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(runCtx)
}

// Stop unwinds the connection and waits for the loop to exit. WS-bound
// subscriptions are left in place upstream; Twitch drops them when the
// session dies.
func (s *WSSession) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *WSSession) run(ctx context.Context) {
	defer close(s.done)

	policy := newSessionBackoff()
	dialURL := s.dialURL()

	for ctx.Err() == nil {
		nextURL, err := s.runConnection(ctx, dialURL, policy)
		if ctx.Err() != nil {
			return
		}

		if nextURL != "" {
			// session_reconnect handover: dial the provided URL immediately.
			dialURL = nextURL
			continue
		}

		dialURL = s.dialURL()
		wait := policy.NextBackOff()
		s.logger.Warn("EventSub websocket connection ended, reconnecting",
			"error", err,
			"retry_in", wait)
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

// runConnection dials and reads until the connection breaks. A non-empty
// return URL requests an immediate reconnect to that address.
func (s *WSSession) runConnection(ctx context.Context, dialURL string, policy backoff.BackOff) (string, error) {
	conn, _, err := websocket.Dial(ctx, dialURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to dial eventsub websocket: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")
	conn.SetReadLimit(sessionReadLimit)

	// Twitch sends session_welcome first; nothing may be subscribed before
	// the session id is known.
	welcome, err := s.readFrame(ctx, conn, welcomeTimeout)
	if err != nil {
		return "", fmt.Errorf("failed waiting for session welcome: %w", err)
	}
	if welcome.Metadata.MessageType != frameWelcome {
		return "", fmt.Errorf("expected session_welcome, got %q", welcome.Metadata.MessageType)
	}
	payload, err := welcome.sessionPayload()
	if err != nil {
		return "", err
	}

	watchdog := s.keepalive
	if payload.Session.KeepaliveTimeoutSeconds > 0 {
		watchdog = time.Duration(payload.Session.KeepaliveTimeoutSeconds) * time.Second
	}
	watchdog = time.Duration(float64(watchdog) * keepaliveGrace)

	s.logger.Info("EventSub websocket session established",
		"session_id", payload.Session.ID,
		"keepalive_timeout", watchdog)
	policy.Reset()
	s.sink.HandleSessionWelcome(ctx, payload.Session.ID)

	for {
		f, err := s.readFrame(ctx, conn, watchdog)
		if err != nil {
			return "", fmt.Errorf("eventsub read failed (keepalive watchdog %s): %w", watchdog, err)
		}

		switch f.Metadata.MessageType {
		case frameKeepalive:
			// Read deadline already reset; nothing to do.
		case frameNotification:
			n, err := f.notification()
			if err != nil {
				s.logger.Error("Dropping undecodable notification", "error", err)
				continue
			}
			s.sink.HandleNotification(ctx, n)
		case frameRevocation:
			n, err := f.notification()
			if err != nil {
				s.logger.Error("Dropping undecodable revocation", "error", err)
				continue
			}
			s.sink.HandleRevocation(ctx, n.SubscriptionID, "revoked")
		case frameReconnect:
			p, err := f.sessionPayload()
			if err != nil || p.Session.ReconnectURL == "" {
				return "", fmt.Errorf("session_reconnect without usable url: %w", err)
			}
			s.logger.Info("Following EventSub session_reconnect", "url", p.Session.ReconnectURL)
			return p.Session.ReconnectURL, nil
		default:
			s.logger.Debug("Ignoring unknown eventsub frame",
				"message_type", f.Metadata.MessageType)
		}
	}
}

func (s *WSSession) readFrame(ctx context.Context, conn *websocket.Conn, timeout time.Duration) (frame, error) {
	readCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	_, data, err := conn.Read(readCtx)
	if err != nil {
		return frame{}, err
	}
	return decodeFrame(data)
}

func (s *WSSession) dialURL() string {
	seconds := int(s.keepalive.Seconds())
	if seconds <= 0 {
		return s.baseURL
	}
	return s.baseURL + "?keepalive_timeout_seconds=" + url.QueryEscape(strconv.Itoa(seconds))
}

func newSessionBackoff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 0
	return b
}
