// Package cleanup prunes interests whose services stopped heartbeating.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/streamgate/streamgate/pkg/services"
)

// releaser lets the pruner drop upstream subscriptions for orphaned keys.
// Implemented by the eventsub manager.
type releaser interface {
	Release(ctx context.Context, key services.InterestKey) error
}

// Service periodically removes interests with stale heartbeats and releases
// upstream subscriptions left without any interest. All operations are
// idempotent.
type Service struct {
	interests *services.InterestService
	manager   releaser
	ttl       time.Duration
	interval  time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service. ttl is the heartbeat age after
// which an interest is considered abandoned; interval is the prune cycle.
func NewService(interests *services.InterestService, manager releaser, ttl, interval time.Duration) *Service {
	return &Service{
		interests: interests,
		manager:   manager,
		ttl:       ttl,
		interval:  interval,
	}
}

// Start launches the background prune loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"stale_interest_ttl", s.ttl,
		"interval", s.interval)
}

// Stop signals the prune loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.pruneStaleInterests(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.pruneStaleInterests(ctx)
		}
	}
}

func (s *Service) pruneStaleInterests(ctx context.Context) {
	orphaned, removed, err := s.interests.PruneStale(context.Background(), s.ttl)
	if err != nil {
		slog.Error("Retention: stale interest prune failed", "error", err)
		return
	}
	if removed == 0 {
		return
	}
	slog.Info("Retention: pruned stale interests",
		"removed", removed,
		"orphaned_keys", len(orphaned))

	for _, key := range orphaned {
		if err := s.manager.Release(ctx, key); err != nil {
			slog.Warn("Retention: failed to release orphaned subscription",
				"key", key.String(), "error", err)
		}
	}
}
