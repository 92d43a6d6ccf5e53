package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmurov/reqdesk/internal/logger"
	"github.com/tmurov/reqdesk/models"
)

func newJobFixture() (*fakeSource, SyncJob) {
	src := &fakeSource{snapshot: models.Snapshot{rec("1", models.StatusPending)}}
	o := NewSyncOrchestrator(src, NewRecordStore(), NewDiffEngine(), &spyDispatcher{}, logger.Nop())
	return src, NewSyncJob(o)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestSyncJob_Start_PollsOnInterval(t *testing.T) {
	src, job := newJobFixture()

	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	require.Eventually(t, func() bool { return src.calls() >= 3 },
		time.Second, 5*time.Millisecond, "ticker should drive repeated polls")
}

func TestSyncJob_Stop_HaltsPolling(t *testing.T) {
	src, job := newJobFixture()

	job.Start(context.Background(), 10*time.Millisecond)
	require.Eventually(t, func() bool { return src.calls() >= 1 }, time.Second, 5*time.Millisecond)
	job.Stop()

	after := src.calls()
	time.Sleep(40 * time.Millisecond)

	assert.Equal(t, after, src.calls(), "no polls after Stop")
}

func TestSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	_, job := newJobFixture()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_Restart_ReplacesPreviousJob(t *testing.T) {
	src, job := newJobFixture()

	job.Start(context.Background(), time.Hour) // first job will never tick
	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	require.Eventually(t, func() bool { return src.calls() >= 2 },
		time.Second, 5*time.Millisecond)
}

func TestSyncJob_ContextCancel_StopsGoroutine(t *testing.T) {
	src, job := newJobFixture()

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 10*time.Millisecond)
	require.Eventually(t, func() bool { return src.calls() >= 1 }, time.Second, 5*time.Millisecond)

	cancel()
	time.Sleep(30 * time.Millisecond)
	after := src.calls()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, after, src.calls())
}
