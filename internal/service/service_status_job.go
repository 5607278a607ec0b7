package service

import (
	"context"
	"sync"
	"time"

	"github.com/avelichko/spellsync/models"
)

// idleRefreshMultiplier stretches the refresh interval while the device is
// online with no sync pass running. Fast polling only matters when the view
// is actually changing: while syncing or offline.
const idleRefreshMultiplier = 6

type statusRefreshJob struct {
	statusService StatusService
	onStatus      func(models.SyncStatus)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewStatusRefreshJob creates a statusRefreshJob that rebuilds the status
// snapshot on a ticker and hands each snapshot to onStatus. The job is idle
// until Start is called.
func NewStatusRefreshJob(statusService StatusService, onStatus func(models.SyncStatus)) StatusRefreshJob {
	return &statusRefreshJob{statusService: statusService, onStatus: onStatus}
}

// Start implements [StatusRefreshJob]. A non-positive interval defaults to
// 10 seconds. One snapshot is delivered immediately on start so the consumer
// does not wait a full tick for its first view. While the last snapshot shows
// the device online and no sync pass running, most ticks are skipped; full-rate
// polling resumes as soon as a pass starts or connectivity drops.
func (j *statusRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		last := j.statusService.GetStatus(jobCtx)
		j.onStatus(last)

		skipped := 0
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if last.Online && !last.SyncInProgress && skipped < idleRefreshMultiplier-1 {
					skipped++
					continue
				}
				skipped = 0
				last = j.statusService.GetStatus(jobCtx)
				j.onStatus(last)
			}
		}
	}()
}

// Stop implements [StatusRefreshJob].
func (j *statusRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
