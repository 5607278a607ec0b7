package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelichko/spellsync/internal/logger"
	"github.com/avelichko/spellsync/models"
)

type countingSyncService struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (s *countingSyncService) SyncAll(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.err
}

func (s *countingSyncService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestSyncJob_RunsOnTicker(t *testing.T) {
	svc := &countingSyncService{}
	job := NewSyncJob(svc, logger.Nop())

	job.Start(context.Background(), 20*time.Millisecond)
	defer job.Stop()

	require.Eventually(t, func() bool {
		return svc.count() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestSyncJob_StopHaltsTheLoop(t *testing.T) {
	svc := &countingSyncService{}
	job := NewSyncJob(svc, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	require.Eventually(t, func() bool {
		return svc.count() >= 1
	}, time.Second, 5*time.Millisecond)

	job.Stop()
	settled := svc.count()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, svc.count())
}

func TestSyncJob_ToleratesRoutineErrors(t *testing.T) {
	svc := &countingSyncService{err: ErrOffline}
	job := NewSyncJob(svc, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	require.Eventually(t, func() bool {
		return svc.count() >= 2
	}, time.Second, 5*time.Millisecond, "an offline tick must not stop the loop")
}

func TestSyncJob_RestartReplacesPreviousLoop(t *testing.T) {
	svc := &countingSyncService{}
	job := NewSyncJob(svc, logger.Nop())

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	require.Eventually(t, func() bool {
		return svc.count() >= 1
	}, time.Second, 5*time.Millisecond)
}

type stubStatusService struct {
	mu     sync.Mutex
	calls  int
	status models.SyncStatus
}

func (s *stubStatusService) GetStatus(context.Context) models.SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.status
}

func (s *stubStatusService) ManualSync(context.Context) error { return nil }
func (s *stubStatusService) RetryItem(context.Context, models.QueueKind, int64) error {
	return nil
}
func (s *stubStatusService) ClearFailed(context.Context) (int64, error) { return 0, nil }

func TestStatusRefreshJob_DeliversImmediatelyThenOnTicker(t *testing.T) {
	svc := &stubStatusService{status: models.SyncStatus{Online: true, SyncInProgress: true}}

	var mu sync.Mutex
	var received []models.SyncStatus
	job := NewStatusRefreshJob(svc, func(s models.SyncStatus) {
		mu.Lock()
		received = append(received, s)
		mu.Unlock()
	})

	job.Start(context.Background(), 20*time.Millisecond)
	defer job.Stop()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) >= 3
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, received[0].Online)
}

func TestStatusRefreshJob_SlowsDownWhileOnlineAndIdle(t *testing.T) {
	svc := &stubStatusService{status: models.SyncStatus{Online: true}}

	var mu sync.Mutex
	delivered := 0
	job := NewStatusRefreshJob(svc, func(models.SyncStatus) {
		mu.Lock()
		delivered++
		mu.Unlock()
	})

	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	// At full rate four ticks fit in this window; idle gating must hold the
	// loop to the immediate snapshot plus at most one stretched refresh.
	time.Sleep(45 * time.Millisecond)
	mu.Lock()
	early := delivered
	mu.Unlock()
	assert.LessOrEqual(t, early, 2, "online-and-idle polling must run at the stretched interval")

	// The loop keeps refreshing, just less often.
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return delivered >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestStatusRefreshJob_StopHaltsDelivery(t *testing.T) {
	svc := &stubStatusService{status: models.SyncStatus{SyncInProgress: true}}

	var mu sync.Mutex
	delivered := 0
	job := NewStatusRefreshJob(svc, func(models.SyncStatus) {
		mu.Lock()
		delivered++
		mu.Unlock()
	})

	job.Start(context.Background(), 10*time.Millisecond)
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return delivered >= 1
	}, time.Second, 5*time.Millisecond)

	job.Stop()
	mu.Lock()
	settled := delivered
	mu.Unlock()

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, settled, delivered)
}
