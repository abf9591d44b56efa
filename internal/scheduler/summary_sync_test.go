package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-sales-api/internal/config"
)

type fakeRefresher struct {
	updated int
	err     error
	release chan struct{}
	calls   int
}

func (f *fakeRefresher) RefreshSummaries(_ context.Context) (int, error) {
	f.calls++
	if f.release != nil {
		<-f.release
	}
	return f.updated, f.err
}

func newTestConfig(enabled bool, cron string) *config.Config {
	return &config.Config{SummarySync: config.SummarySync{CronSchedule: cron, Enabled: enabled}}
}

func TestSummarySyncService_Sync(t *testing.T) {
	refresher := &fakeRefresher{updated: 3}
	service := NewSummarySyncService(refresher, newTestConfig(true, "0 2 * * *"))

	assert.True(t, service.Sync(context.Background()))

	status := service.GetStatus()
	assert.Equal(t, 3, status["last_sync_updated"])
	assert.Equal(t, "", status["last_sync_error"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
	assert.Equal(t, 1, refresher.calls)
}

func TestSummarySyncService_SyncKeepsLastError(t *testing.T) {
	refresher := &fakeRefresher{err: errors.New("banco indisponível")}
	service := NewSummarySyncService(refresher, newTestConfig(true, "0 2 * * *"))

	service.Sync(context.Background())

	status := service.GetStatus()
	assert.Equal(t, "banco indisponível", status["last_sync_error"])
	assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestSummarySyncService_IgnoresOverlappingRuns(t *testing.T) {
	refresher := &fakeRefresher{updated: 1, release: make(chan struct{})}
	service := NewSummarySyncService(refresher, newTestConfig(true, "0 2 * * *"))

	done := make(chan bool)
	go func() {
		done <- service.Sync(context.Background())
	}()

	require.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"].(bool)
	}, time.Second, 5*time.Millisecond)

	assert.False(t, service.Sync(context.Background()))

	close(refresher.release)
	assert.True(t, <-done)
	assert.False(t, service.GetStatus()["sync_running"].(bool))
}

func TestSummarySyncService_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	disabled := NewSummarySyncService(&fakeRefresher{}, newTestConfig(false, "expressão inválida"))
	assert.NoError(t, disabled.Start(ctx))

	invalid := NewSummarySyncService(&fakeRefresher{}, newTestConfig(true, "expressão inválida"))
	assert.Error(t, invalid.Start(ctx))

	valid := NewSummarySyncService(&fakeRefresher{}, newTestConfig(true, "0 2 * * *"))
	assert.NoError(t, valid.Start(ctx))
}
