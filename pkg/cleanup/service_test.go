package cleanup

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamgate/streamgate/ent"
	"github.com/streamgate/streamgate/pkg/services"
	"github.com/streamgate/streamgate/test/util"
)

type recordingReleaser struct {
	mu       sync.Mutex
	released []services.InterestKey
}

func (r *recordingReleaser) Release(_ context.Context, key services.InterestKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.released = append(r.released, key)
	return nil
}

func (r *recordingReleaser) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.released)
}

func setupPruner(t *testing.T) (*ent.Client, *services.InterestService, *recordingReleaser, *Service) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	interests := services.NewInterestService(client, nil)
	releaser := &recordingReleaser{}
	svc := NewService(interests, releaser, time.Hour, time.Hour)
	return client, interests, releaser, svc
}

func createInterest(t *testing.T, client *ent.Client, interests *services.InterestService, eventType, broadcaster string) *services.UpsertResult {
	t.Helper()
	account, err := client.ServiceAccount.Create().
		SetName("pruned-" + broadcaster).
		SetClientID("client-" + eventType + "-" + broadcaster).
		SetClientSecretHash("unused").
		Save(t.Context())
	require.NoError(t, err)
	bot, err := client.BotAccount.Create().
		SetTwitchUserID("bot-" + eventType + "-" + broadcaster).
		SetTwitchLogin("bot_" + broadcaster).
		Save(t.Context())
	require.NoError(t, err)

	result, err := interests.Upsert(t.Context(), account.ID, bot.ID, eventType, broadcaster, "websocket", "")
	require.NoError(t, err)
	return result
}

func TestService_PrunesStaleInterestsAndReleasesKeys(t *testing.T) {
	client, interests, releaser, svc := setupPruner(t)
	ctx := t.Context()

	stale := createInterest(t, client, interests, "channel.follow", "12345")
	fresh := createInterest(t, client, interests, "channel.subscribe", "67890")

	// Age the stale cluster past the TTL.
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, client.ServiceInterest.UpdateOneID(stale.Interest.ID).
		SetLastHeartbeatAt(old).
		Exec(ctx))
	for _, companion := range stale.Companions {
		require.NoError(t, client.ServiceInterest.UpdateOneID(companion.ID).
			SetLastHeartbeatAt(old).
			Exec(ctx))
	}

	svc.pruneStaleInterests(ctx)

	// Interest plus its two companions released; the fresh cluster survives.
	assert.Equal(t, 3, releaser.count())

	remaining, err := client.ServiceInterest.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, remaining)

	_ = fresh
}

func TestService_NoopWhenNothingStale(t *testing.T) {
	client, interests, releaser, svc := setupPruner(t)
	ctx := t.Context()

	createInterest(t, client, interests, "channel.follow", "12345")

	svc.pruneStaleInterests(ctx)

	assert.Equal(t, 0, releaser.count())
	n, err := client.ServiceInterest.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestService_StartStop(t *testing.T) {
	_, interests, _, _ := setupPruner(t)
	svc := NewService(interests, &recordingReleaser{}, time.Hour, time.Hour)

	svc.Start(t.Context())
	svc.Stop()

	// Stop is idempotent once stopped.
	svc.Stop()
}
