package service

import (
	"context"
	"fmt"

	"github.com/avelichko/spellsync/internal/logger"
	"github.com/avelichko/spellsync/internal/store"
	"github.com/avelichko/spellsync/internal/telemetry"
	"github.com/avelichko/spellsync/models"
)

type statusService struct {
	storages     *store.ClientStorages
	hub          *telemetry.Hub
	connectivity Connectivity
	sync         SyncService

	logger *logger.Logger
}

func NewStatusService(
	storages *store.ClientStorages,
	hub *telemetry.Hub,
	connectivity Connectivity,
	sync SyncService,
	logger *logger.Logger,
) StatusService {
	return &statusService{
		storages:     storages,
		hub:          hub,
		connectivity: connectivity,
		sync:         sync,
		logger:       logger,
	}
}

// GetStatus implements [StatusService]. A failing count read never fails the
// snapshot: the affected view degrades to zeros so a display surface keeps
// rendering while the store is briefly unavailable.
func (s *statusService) GetStatus(ctx context.Context) models.SyncStatus {
	snap := s.hub.Snapshot()

	status := models.SyncStatus{
		SyncInProgress:     snap.SyncInProgress,
		Online:             s.connectivity.Online(),
		LastSyncAt:         snap.LastSyncAt,
		LastSyncDurationMs: snap.LastSyncDuration.Milliseconds(),
		RecentErrors:       snap.Errors,
	}

	status.Counts.Pending = s.countKind(ctx, models.SyncStatePending)
	status.Counts.Failed = s.countKind(ctx, models.SyncStateFailed)

	return status
}

func (s *statusService) countKind(ctx context.Context, state models.SyncState) models.KindCounts {
	log := logger.FromContext(ctx)

	var counts models.KindCounts
	reads := []struct {
		name string
		dest *int
		read func(context.Context, models.SyncState) (int, error)
	}{
		{"attempts", &counts.Attempts, s.storages.Attempts.CountByState},
		{"audio", &counts.Audio, s.storages.Audio.CountByState},
		{"srs_updates", &counts.SrsUpdates, s.storages.SrsUpdates.CountByState},
		{"star_transactions", &counts.StarTransactions, s.storages.StarTransactions.CountByState},
	}

	for _, r := range reads {
		n, err := r.read(ctx, state)
		if err != nil {
			log.Err(err).
				Str("queue", r.name).
				Str("sync_state", string(state)).
				Msg("count read failed, degrading to zeros")
			return models.KindCounts{}
		}
		*r.dest = n
	}

	counts.Total = counts.Attempts + counts.Audio + counts.SrsUpdates + counts.StarTransactions
	return counts
}

// ManualSync implements [StatusService]. Connectivity is re-checked at call
// time so a user tap while offline gets an immediate answer instead of a
// silently skipped pass.
func (s *statusService) ManualSync(ctx context.Context) error {
	if !s.connectivity.Online() {
		return ErrOffline
	}

	return s.sync.SyncAll(ctx)
}

// RetryItem implements [StatusService]. The item returns to pending with a
// fresh retry budget and a cleared error.
func (s *statusService) RetryItem(ctx context.Context, kind models.QueueKind, id int64) error {
	pendingState := models.SyncStatePending
	zero := 0

	var err error
	switch kind {
	case models.QueueAttempts:
		err = s.storages.Attempts.Patch(ctx, id, models.AttemptPatch{
			SyncState: &pendingState, RetryCount: &zero, ClearLastError: true,
		})
	case models.QueueAudio:
		err = s.storages.Audio.Patch(ctx, id, models.AudioPatch{
			SyncState: &pendingState, RetryCount: &zero, ClearLastError: true,
		})
	case models.QueueSrsUpdates:
		err = s.storages.SrsUpdates.Patch(ctx, id, models.SrsUpdatePatch{
			SyncState: &pendingState, RetryCount: &zero, ClearLastError: true,
		})
	case models.QueueStarTransactions:
		err = s.storages.StarTransactions.Patch(ctx, id, models.StarTransactionPatch{
			SyncState: &pendingState, RetryCount: &zero, ClearLastError: true,
		})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownQueueKind, kind)
	}

	if err != nil {
		return fmt.Errorf("retry %s item %d: %w", kind, id, err)
	}

	return nil
}

// ClearFailed implements [StatusService].
func (s *statusService) ClearFailed(ctx context.Context) (int64, error) {
	var total int64

	deletes := []struct {
		name string
		del  func(context.Context, models.SyncState) (int64, error)
	}{
		{"attempts", s.storages.Attempts.DeleteByState},
		{"audio", s.storages.Audio.DeleteByState},
		{"srs_updates", s.storages.SrsUpdates.DeleteByState},
		{"star_transactions", s.storages.StarTransactions.DeleteByState},
	}

	for _, d := range deletes {
		n, err := d.del(ctx, models.SyncStateFailed)
		if err != nil {
			return total, fmt.Errorf("clear failed %s: %w", d.name, err)
		}
		total += n
	}

	return total, nil
}
