package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/avelichko/spellsync/internal/adapter"
	"github.com/avelichko/spellsync/internal/backoff"
	"github.com/avelichko/spellsync/internal/config"
	"github.com/avelichko/spellsync/internal/logger"
	"github.com/avelichko/spellsync/internal/srs"
	"github.com/avelichko/spellsync/internal/store"
	"github.com/avelichko/spellsync/internal/telemetry"
	"github.com/avelichko/spellsync/internal/utils"
	"github.com/avelichko/spellsync/models"
)

type syncOrchestrator struct {
	storages     *store.ClientStorages
	remote       adapter.RemoteService
	hub          *telemetry.Hub
	connectivity Connectivity
	cfg          config.ClientSync

	uuid *utils.UUIDGenerator

	// sleep is injected so tests run the backoff schedule without waiting.
	sleep func(ctx context.Context, d time.Duration) error

	logger *logger.Logger
}

func NewSyncOrchestrator(
	storages *store.ClientStorages,
	remote adapter.RemoteService,
	hub *telemetry.Hub,
	connectivity Connectivity,
	cfg config.ClientSync,
	logger *logger.Logger,
) SyncService {
	return &syncOrchestrator{
		storages:     storages,
		remote:       remote,
		hub:          hub,
		connectivity: connectivity,
		cfg:          cfg,
		uuid:         utils.NewUUIDGenerator(),
		sleep:        sleepCtx,
		logger:       logger,
	}
}

// SyncAll implements [SyncService]. Queue kinds drain in dependency order:
// recordings must reach remote storage before the attempts referencing them,
// and scheduler/reward replay only runs after the attempt log is pushed.
func (s *syncOrchestrator) SyncAll(ctx context.Context) error {
	if !s.connectivity.Online() {
		return ErrOffline
	}
	if !s.hub.TryBeginSync() {
		return ErrSyncInProgress
	}

	started := time.Now()
	defer s.hub.EndSync(started)

	runLog := &logger.Logger{Logger: s.logger.With().Str("sync_run_id", s.uuid.Generate()).Logger()}
	ctx = runLog.WithContext(ctx)

	runLog.Info().Msg("sync pass started")

	phases := []struct {
		name string
		run  func(context.Context) error
	}{
		{"audio", s.syncAudio},
		{"attempts", s.syncAttempts},
		{"srs_updates", s.syncSrsUpdates},
		{"star_transactions", s.syncStarTransactions},
	}

	for _, phase := range phases {
		if err := phase.run(ctx); err != nil {
			runLog.Err(err).Str("phase", phase.name).Msg("sync pass aborted")
			return fmt.Errorf("sync %s: %w", phase.name, err)
		}
	}

	runLog.Info().Dur("elapsed", time.Since(started)).Msg("sync pass finished")
	return nil
}

// syncAudio drains the recording queue. Before uploading, the remote listing
// is consulted so a recording that reached storage on an interrupted pass is
// not uploaded twice.
func (s *syncOrchestrator) syncAudio(ctx context.Context) error {
	pending, err := s.storages.Audio.ListByState(ctx, models.SyncStatePending)
	if err != nil {
		return fmt.Errorf("list pending audio: %w", err)
	}

	for _, audio := range pending {
		audio := audio
		err := s.replayItem(ctx, audio.RetryCount, func(ctx context.Context) error {
			ref, uploadErr := s.uploadRecording(ctx, audio)
			if uploadErr != nil {
				return uploadErr
			}
			return s.markAudioSynced(ctx, audio.ID, ref)
		}, func(ctx context.Context, tries int, itemErr error) error {
			return s.storages.Audio.Patch(ctx, audio.ID, retryAudioPatch(tries, itemErr))
		})
		if err != nil {
			// Cancellation is not exhaustion: the row keeps its pending
			// state and persisted retry count for the next pass.
			if isCancellation(err) {
				return err
			}
			s.failAudio(ctx, audio.ID, err)
		}
	}

	return nil
}

// uploadRecording returns the remote storage path for one queued recording,
// either by finding it in the remote listing or by uploading it.
func (s *syncOrchestrator) uploadRecording(ctx context.Context, audio models.QueuedAudio) (string, error) {
	prefix := path.Dir(audio.Filename)
	base := path.Base(audio.Filename)

	entries, err := s.remote.ListRecordings(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("list recordings %s: %w", prefix, err)
	}
	for _, entry := range entries {
		if entry.Name == base {
			return audio.Filename, nil
		}
	}

	ref, err := s.remote.UploadRecording(ctx, audio.Filename, audio.Data)
	if err != nil {
		if errors.Is(err, adapter.ErrConflict) {
			// Raced with an earlier upload of the same key.
			return audio.Filename, nil
		}
		return "", fmt.Errorf("upload recording %s: %w", audio.Filename, err)
	}

	return ref, nil
}

func (s *syncOrchestrator) markAudioSynced(ctx context.Context, id int64, ref string) error {
	synced := models.SyncStateSynced
	if err := s.storages.Audio.Patch(ctx, id, models.AudioPatch{
		SyncState:      &synced,
		StorageRef:     &ref,
		ClearLastError: true,
	}); err != nil {
		return fmt.Errorf("mark audio %d synced: %w", id, err)
	}

	s.hub.IncSynced(telemetry.KindAudio)
	return nil
}

func (s *syncOrchestrator) failAudio(ctx context.Context, id int64, cause error) {
	failed := models.SyncStateFailed
	msg := cause.Error()
	if err := s.storages.Audio.Patch(ctx, id, models.AudioPatch{
		SyncState: &failed,
		LastError: &msg,
	}); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("failed to mark audio failed")
	}

	s.hub.IncFailed(telemetry.KindAudio)
	s.hub.RecordError(string(telemetry.KindAudio), msg)
}

// syncAttempts drains the attempt queue. An attempt that references a queued
// recording resolves the reference first:
//   - no reference: replay immediately;
//   - recording synced with a storage ref: replay with the remote path;
//   - recording still pending: leave the attempt for a later pass;
//   - recording row missing entirely: log the referential anomaly and leave
//     the attempt for a later pass;
//   - recording failed: fail the attempt with a derived error;
//   - recording claims synced but has no storage ref: reset the recording to
//     pending (crash-interrupted update) and leave the attempt for later.
func (s *syncOrchestrator) syncAttempts(ctx context.Context) error {
	pending, err := s.storages.Attempts.ListByState(ctx, models.SyncStatePending)
	if err != nil {
		return fmt.Errorf("list pending attempts: %w", err)
	}

	for _, attempt := range pending {
		attempt := attempt
		audioPath, ready, depErr := s.resolveAudioRef(ctx, attempt)
		if depErr != nil {
			s.failAttempt(ctx, attempt.ID, depErr)
			continue
		}
		if !ready {
			continue
		}

		err := s.replayItem(ctx, attempt.RetryCount, func(ctx context.Context) error {
			if replayErr := s.replayAttempt(ctx, attempt, audioPath); replayErr != nil {
				return replayErr
			}
			return s.markAttemptSynced(ctx, attempt.ID)
		}, func(ctx context.Context, tries int, itemErr error) error {
			return s.storages.Attempts.Patch(ctx, attempt.ID, retryAttemptPatch(tries, itemErr))
		})
		if err != nil {
			if isCancellation(err) {
				return err
			}
			s.failAttempt(ctx, attempt.ID, err)
		}
	}

	return nil
}

// resolveAudioRef inspects the attempt's recording dependency. It returns
// the remote audio path (nil when the attempt has none), whether the attempt
// may replay this pass, and a non-nil error when the dependency has failed
// permanently.
func (s *syncOrchestrator) resolveAudioRef(ctx context.Context, attempt models.QueuedAttempt) (*string, bool, error) {
	if attempt.AudioRef == nil {
		return nil, true, nil
	}

	audio, err := s.storages.Audio.Get(ctx, *attempt.AudioRef)
	if err != nil {
		if errors.Is(err, store.ErrAudioNotFound) {
			// Referential anomaly. The attempt stays pending instead of
			// failing on a possibly recoverable inconsistency.
			logger.FromContext(ctx).Error().
				Int64("audio_ref", *attempt.AudioRef).
				Int64("attempt_id", attempt.ID).
				Msg("referenced audio row is missing, deferring attempt")
			return nil, false, nil
		}
		// Transient store error: keep the attempt pending rather than
		// deciding its fate on bad information.
		logger.FromContext(ctx).Err(err).Int64("audio_ref", *attempt.AudioRef).Msg("failed to load referenced audio")
		return nil, false, nil
	}

	switch audio.SyncState {
	case models.SyncStateSynced:
		if audio.StorageRef == nil || strings.TrimSpace(*audio.StorageRef) == "" {
			s.healAudioRow(ctx, audio.ID)
			return nil, false, nil
		}
		return audio.StorageRef, true, nil
	case models.SyncStateFailed:
		return nil, false, fmt.Errorf("referenced audio row %d failed to upload", audio.ID)
	default:
		// Still pending; the audio phase of a later pass will settle it.
		return nil, false, nil
	}
}

// healAudioRow resets a synced-without-ref recording back to pending. Such a
// row can only come from an update interrupted between upload and patch, so
// the upload phase re-checks the remote listing next pass.
func (s *syncOrchestrator) healAudioRow(ctx context.Context, id int64) {
	pendingState := models.SyncStatePending
	if err := s.storages.Audio.Patch(ctx, id, models.AudioPatch{
		SyncState:      &pendingState,
		ClearLastError: true,
	}); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("failed to reset inconsistent audio row")
		return
	}

	logger.FromContext(ctx).Warn().Int64("id", id).Msg("reset synced audio row without storage ref back to pending")
}

// replayAttempt pushes one attempt remotely, guarded by the remote dedupe
// check so a crash between insert and local patch does not double-record.
func (s *syncOrchestrator) replayAttempt(ctx context.Context, attempt models.QueuedAttempt, audioPath *string) error {
	exists, err := s.remote.AttemptExists(ctx, attempt.ChildID, attempt.WordID, attempt.StartedAt)
	if err != nil {
		return fmt.Errorf("check attempt existence: %w", err)
	}
	if exists {
		return nil
	}

	err = s.remote.InsertAttempt(ctx, models.RemoteAttempt{
		ChildID:     attempt.ChildID,
		WordID:      attempt.WordID,
		ListID:      attempt.ListID,
		Mode:        attempt.Mode,
		Correct:     attempt.Correct,
		TypedAnswer: attempt.TypedAnswer,
		AudioPath:   audioPath,
		StartedAt:   attempt.StartedAt,
	})
	if err != nil && !errors.Is(err, adapter.ErrConflict) {
		return fmt.Errorf("insert attempt: %w", err)
	}

	return nil
}

func (s *syncOrchestrator) markAttemptSynced(ctx context.Context, id int64) error {
	synced := models.SyncStateSynced
	if err := s.storages.Attempts.Patch(ctx, id, models.AttemptPatch{
		SyncState:      &synced,
		ClearLastError: true,
	}); err != nil {
		return fmt.Errorf("mark attempt %d synced: %w", id, err)
	}

	s.hub.IncSynced(telemetry.KindAttempts)
	return nil
}

func (s *syncOrchestrator) failAttempt(ctx context.Context, id int64, cause error) {
	failed := models.SyncStateFailed
	msg := cause.Error()
	if err := s.storages.Attempts.Patch(ctx, id, models.AttemptPatch{
		SyncState: &failed,
		LastError: &msg,
	}); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("failed to mark attempt failed")
	}

	s.hub.IncFailed(telemetry.KindAttempts)
	s.hub.RecordError(string(telemetry.KindAttempts), msg)
}

// syncSrsUpdates drains the scheduler-update queue. Each update fetches the
// current remote record, applies the review arithmetic locally, and upserts
// the result; the upsert is keyed on (child, word) so replaying the same
// update is harmless.
func (s *syncOrchestrator) syncSrsUpdates(ctx context.Context) error {
	pending, err := s.storages.SrsUpdates.ListByState(ctx, models.SyncStatePending)
	if err != nil {
		return fmt.Errorf("list pending srs updates: %w", err)
	}

	for _, update := range pending {
		update := update
		err := s.replayItem(ctx, update.RetryCount, func(ctx context.Context) error {
			if replayErr := s.replaySrsUpdate(ctx, update); replayErr != nil {
				return replayErr
			}
			return s.markSrsUpdateSynced(ctx, update.ID)
		}, func(ctx context.Context, tries int, itemErr error) error {
			return s.storages.SrsUpdates.Patch(ctx, update.ID, retrySrsPatch(tries, itemErr))
		})
		if err != nil {
			if isCancellation(err) {
				return err
			}
			s.failSrsUpdate(ctx, update.ID, err)
		}
	}

	return nil
}

func (s *syncOrchestrator) replaySrsUpdate(ctx context.Context, update models.QueuedSrsUpdate) error {
	remoteState, err := s.remote.GetSchedulerState(ctx, update.ChildID, update.WordID)
	if err != nil {
		return fmt.Errorf("get scheduler state: %w", err)
	}

	state := srs.DefaultState()
	if remoteState != nil {
		state = srs.State{
			Ease:         remoteState.Ease,
			IntervalDays: remoteState.IntervalDays,
			Reps:         remoteState.Reps,
			Lapses:       remoteState.Lapses,
		}
	}

	if update.WasCorrectFirstTry {
		state = srs.OnSuccess(state)
	} else {
		state = srs.OnMiss(state)
	}

	err = s.remote.UpsertSchedulerState(ctx, models.SchedulerState{
		ChildID:      update.ChildID,
		WordID:       update.WordID,
		Ease:         state.Ease,
		IntervalDays: state.IntervalDays,
		DueDate:      srs.Due(state, update.CreatedAt),
		Reps:         state.Reps,
		Lapses:       state.Lapses,
	})
	if err != nil {
		return fmt.Errorf("upsert scheduler state: %w", err)
	}

	return nil
}

func (s *syncOrchestrator) markSrsUpdateSynced(ctx context.Context, id int64) error {
	synced := models.SyncStateSynced
	if err := s.storages.SrsUpdates.Patch(ctx, id, models.SrsUpdatePatch{
		SyncState:      &synced,
		ClearLastError: true,
	}); err != nil {
		return fmt.Errorf("mark srs update %d synced: %w", id, err)
	}

	s.hub.IncSynced(telemetry.KindSrsUpdates)
	return nil
}

func (s *syncOrchestrator) failSrsUpdate(ctx context.Context, id int64, cause error) {
	failed := models.SyncStateFailed
	msg := cause.Error()
	if err := s.storages.SrsUpdates.Patch(ctx, id, models.SrsUpdatePatch{
		SyncState: &failed,
		LastError: &msg,
	}); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("failed to mark srs update failed")
	}

	s.hub.IncFailed(telemetry.KindSrsUpdates)
	s.hub.RecordError(string(telemetry.KindSrsUpdates), msg)
}

// syncStarTransactions drains the reward queue through the remote rpc.
func (s *syncOrchestrator) syncStarTransactions(ctx context.Context) error {
	pending, err := s.storages.StarTransactions.ListByState(ctx, models.SyncStatePending)
	if err != nil {
		return fmt.Errorf("list pending star transactions: %w", err)
	}

	for _, tx := range pending {
		tx := tx
		err := s.replayItem(ctx, tx.RetryCount, func(ctx context.Context) error {
			if rpcErr := s.remote.ApplyStarTransaction(ctx, models.StarTransaction{
				UserID: tx.UserID,
				Amount: tx.Amount,
				Reason: tx.Reason,
			}); rpcErr != nil {
				return fmt.Errorf("apply star transaction: %w", rpcErr)
			}
			return s.markStarTransactionSynced(ctx, tx.ID)
		}, func(ctx context.Context, tries int, itemErr error) error {
			return s.storages.StarTransactions.Patch(ctx, tx.ID, retryStarPatch(tries, itemErr))
		})
		if err != nil {
			if isCancellation(err) {
				return err
			}
			s.failStarTransaction(ctx, tx.ID, err)
		}
	}

	return nil
}

func (s *syncOrchestrator) markStarTransactionSynced(ctx context.Context, id int64) error {
	synced := models.SyncStateSynced
	if err := s.storages.StarTransactions.Patch(ctx, id, models.StarTransactionPatch{
		SyncState:      &synced,
		ClearLastError: true,
	}); err != nil {
		return fmt.Errorf("mark star transaction %d synced: %w", id, err)
	}

	s.hub.IncSynced(telemetry.KindStarTransactions)
	return nil
}

func (s *syncOrchestrator) failStarTransaction(ctx context.Context, id int64, cause error) {
	failed := models.SyncStateFailed
	msg := cause.Error()
	if err := s.storages.StarTransactions.Patch(ctx, id, models.StarTransactionPatch{
		SyncState: &failed,
		LastError: &msg,
	}); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("failed to mark star transaction failed")
	}

	s.hub.IncFailed(telemetry.KindStarTransactions)
	s.hub.RecordError(string(telemetry.KindStarTransactions), msg)
}

// replayItem runs fn with the per-item retry budget. usedTries is the number
// of tries already consumed on previous passes; each additional failed try is
// persisted through recordTry so the budget survives a crash. The returned
// error is nil on success, the last replay error once the budget is spent,
// or ctx.Err() if the context is cancelled while backing off.
func (s *syncOrchestrator) replayItem(
	ctx context.Context,
	usedTries int,
	fn func(context.Context) error,
	recordTry func(ctx context.Context, tries int, itemErr error) error,
) error {
	if usedTries >= s.cfg.MaxRetryAttempts {
		return fmt.Errorf("retry budget exhausted after %d tries", usedTries)
	}

	var lastErr error
	for try := usedTries + 1; try <= s.cfg.MaxRetryAttempts; try++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		if err := recordTry(ctx, try, lastErr); err != nil {
			logger.FromContext(ctx).Err(err).Msg("failed to persist retry state")
		}

		if try == s.cfg.MaxRetryAttempts {
			break
		}
		if err := s.sleep(ctx, backoff.Delay(s.cfg.BackoffBase, try-1)); err != nil {
			return err
		}
	}

	return lastErr
}

func retryAudioPatch(tries int, itemErr error) models.AudioPatch {
	msg := itemErr.Error()
	return models.AudioPatch{RetryCount: &tries, LastError: &msg}
}

func retryAttemptPatch(tries int, itemErr error) models.AttemptPatch {
	msg := itemErr.Error()
	return models.AttemptPatch{RetryCount: &tries, LastError: &msg}
}

func retrySrsPatch(tries int, itemErr error) models.SrsUpdatePatch {
	msg := itemErr.Error()
	return models.SrsUpdatePatch{RetryCount: &tries, LastError: &msg}
}

func retryStarPatch(tries int, itemErr error) models.StarTransactionPatch {
	msg := itemErr.Error()
	return models.StarTransactionPatch{RetryCount: &tries, LastError: &msg}
}

// isCancellation reports whether err came from the pass context being
// cancelled rather than from the item itself. Cancelled items keep their
// pending state so the next pass resumes the persisted retry budget.
func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
