// Package service holds the client business logic: the queue producers the
// practice UI writes through, the sync orchestrator that drains the queues
// against the remote backend, the read-only status facade, and the
// background jobs that drive both on tickers.
package service

import (
	"context"
	"time"

	"github.com/avelichko/spellsync/models"
)

// QueueService is the write surface the practice layer uses while offline.
// Every enqueue lands in the durable local store and bumps the corresponding
// telemetry counter; nothing talks to the network here.
type QueueService interface {
	// EnqueueAttempt stores one finished practice attempt for later replay
	// and returns its queue row id.
	EnqueueAttempt(ctx context.Context, attempt models.QueuedAttempt) (int64, error)

	// EnqueueRecording stores a practice recording for later upload and
	// returns its queue row id. The remote object key is derived from the
	// token owner, listID, wordID and recordedAt; ext is the container
	// extension without the dot (e.g. "webm").
	EnqueueRecording(ctx context.Context, listID, wordID string, data []byte, recordedAt time.Time, ext string) (int64, error)

	// EnqueueSrsUpdate stores one scheduler-update intent for later replay
	// and returns its queue row id.
	EnqueueSrsUpdate(ctx context.Context, update models.QueuedSrsUpdate) (int64, error)

	// EnqueueStarTransaction stores one reward-point delta for later replay
	// and returns its queue row id.
	EnqueueStarTransaction(ctx context.Context, tx models.QueuedStarTransaction) (int64, error)
}

// SyncService drains the pending queues against the remote backend.
type SyncService interface {
	// SyncAll runs one full sync pass: audio first, then attempts, then
	// scheduler updates, then star transactions. Returns [ErrOffline] when
	// the device has no connectivity, [ErrSyncInProgress] when another pass
	// already holds the sync slot, or a store error if reading a queue
	// snapshot fails. Per-item replay failures never abort the pass; they
	// are recorded against the item and in the telemetry error log.
	SyncAll(ctx context.Context) error
}

// StatusService is the read-mostly facade the status surface talks to.
type StatusService interface {
	// GetStatus assembles the current queue counts, telemetry view, and
	// connectivity into one snapshot. Count reads never fail the call: on a
	// store error the counts degrade to zeros and the error is logged.
	GetStatus(ctx context.Context) models.SyncStatus

	// ManualSync triggers an immediate sync pass, re-checking connectivity
	// at call time. Returns [ErrOffline] or [ErrSyncInProgress] without
	// starting a pass.
	ManualSync(ctx context.Context) error

	// RetryItem moves one failed item of the given kind back to pending
	// with a reset retry budget so the next pass picks it up again.
	RetryItem(ctx context.Context, kind models.QueueKind, id int64) error

	// ClearFailed bulk-deletes all failed rows across every queue and
	// returns the number of rows removed.
	ClearFailed(ctx context.Context) (int64, error)
}

// Connectivity reports whether the remote backend is reachable.
// The production implementation lives in internal/client and polls the
// remote health endpoint; the orchestrator only ever asks, never probes.
type Connectivity interface {
	// Online returns the last observed reachability state.
	Online() bool

	// Subscribe registers fn to be called on every reachability change and
	// returns an unsubscribe func.
	Subscribe(fn func(online bool)) func()
}

// SyncJob periodically triggers sync passes. Idle until Start is called.
type SyncJob interface {
	// Start launches the background ticker goroutine. Stops any previously
	// running instance first. A non-positive interval defaults to 5 minutes.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and blocks until it exits.
	// Safe to call when the job is not running.
	Stop()
}

// StatusRefreshJob periodically rebuilds the status snapshot and hands it to
// a consumer callback, so a display surface sees fresh counts while a sync
// pass is running or the device is offline.
type StatusRefreshJob interface {
	// Start launches the background ticker goroutine. Stops any previously
	// running instance first. A non-positive interval defaults to 10 seconds.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and blocks until it exits.
	Stop()
}
