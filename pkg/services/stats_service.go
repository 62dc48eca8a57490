package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/streamgate/streamgate/ent"
	"github.com/streamgate/streamgate/ent/serviceruntimestats"
)

// StatsService maintains per-service delivery counters. It implements the
// fan-out hub's StatsRecorder callbacks; counter updates are best-effort and
// never fail a delivery.
type StatsService struct {
	client *ent.Client
}

// NewStatsService creates a new StatsService
func NewStatsService(client *ent.Client) *StatsService {
	return &StatsService{client: client}
}

// GetStats retrieves the counters for a service, if any exist yet.
func (s *StatsService) GetStats(ctx context.Context, serviceAccountID uuid.UUID) (*ent.ServiceRuntimeStats, error) {
	stats, err := s.client.ServiceRuntimeStats.Query().
		Where(serviceruntimestats.ServiceAccountIDEQ(serviceAccountID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get runtime stats: %w", err)
	}
	return stats, nil
}

// RecordAPIRequest bumps the request counter for an authenticated call.
func (s *StatsService) RecordAPIRequest(ctx context.Context, serviceAccountID uuid.UUID) {
	s.update(ctx, serviceAccountID, func(u *ent.ServiceRuntimeStatsUpdate) {
		u.AddTotalAPIRequests(1)
	})
}

// RecordWSConnect implements events.StatsRecorder.
func (s *StatsService) RecordWSConnect(ctx context.Context, serviceAccountID uuid.UUID) {
	now := time.Now()
	s.update(ctx, serviceAccountID, func(u *ent.ServiceRuntimeStatsUpdate) {
		u.AddWsConnects(1)
		u.AddActiveWsConnections(1)
		u.SetLastConnectAt(now)
	})
}

// RecordWSDisconnect implements events.StatsRecorder.
func (s *StatsService) RecordWSDisconnect(ctx context.Context, serviceAccountID uuid.UUID) {
	now := time.Now()
	s.update(ctx, serviceAccountID, func(u *ent.ServiceRuntimeStatsUpdate) {
		u.AddWsDisconnects(1)
		u.AddActiveWsConnections(-1)
		u.SetLastDisconnectAt(now)
	})
}

// RecordEventSent implements events.StatsRecorder.
func (s *StatsService) RecordEventSent(ctx context.Context, serviceAccountID uuid.UUID, transport string) {
	now := time.Now()
	s.update(ctx, serviceAccountID, func(u *ent.ServiceRuntimeStatsUpdate) {
		if transport == "webhook" {
			u.AddEventsSentWebhook(1)
		} else {
			u.AddEventsSentWs(1)
		}
		u.SetLastEventAt(now)
	})
}

// RecordWebhookFailure implements events.StatsRecorder.
func (s *StatsService) RecordWebhookFailure(ctx context.Context, serviceAccountID uuid.UUID) {
	s.update(ctx, serviceAccountID, func(u *ent.ServiceRuntimeStatsUpdate) {
		u.AddWebhookFailures(1)
	})
}

// update applies mutate to the service's counter row, creating the row on
// first touch. Counter writes never propagate errors to callers.
func (s *StatsService) update(callerCtx context.Context, serviceAccountID uuid.UUID, mutate func(*ent.ServiceRuntimeStatsUpdate)) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(callerCtx), 5*time.Second)
	defer cancel()

	if err := s.ensureRow(ctx, serviceAccountID); err != nil {
		slog.Debug("Skipping runtime stats update", "service_account_id", serviceAccountID, "error", err)
		return
	}

	update := s.client.ServiceRuntimeStats.Update().
		Where(serviceruntimestats.ServiceAccountIDEQ(serviceAccountID))
	mutate(update)
	if _, err := update.Save(ctx); err != nil {
		slog.Debug("Skipping runtime stats update", "service_account_id", serviceAccountID, "error", err)
	}
}

func (s *StatsService) ensureRow(ctx context.Context, serviceAccountID uuid.UUID) error {
	exists, err := s.client.ServiceRuntimeStats.Query().
		Where(serviceruntimestats.ServiceAccountIDEQ(serviceAccountID)).
		Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	err = s.client.ServiceRuntimeStats.Create().
		SetServiceAccountID(serviceAccountID).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return err
	}
	return nil
}
